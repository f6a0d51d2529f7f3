package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the single-date recommendation HTTP handler
	PricingRecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_recommend_latency_seconds",
		Help:    "Latency of the pricing recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Pricing requests by kind (single, range) and outcome
	PricingRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_requests_total",
		Help: "Total number of pricing recommendation requests",
	}, []string{"kind", "outcome"})
)

func Init() {
	prometheus.MustRegister(
		PricingRecommendLatency,
		PricingRequests,
	)
}
