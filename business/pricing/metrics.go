package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_recommendations_total",
			Help: "Count of pricing recommendations produced, by market position and direction.",
		},
		[]string{"market_position", "direction"},
	)

	RoomTypeFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_room_type_failures_total",
			Help: "Count of room type analyses dropped after a failure.",
		},
	)

	StoreFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_store_fallbacks_total",
			Help: "Count of store reads that failed and fell back to a default, by store.",
		},
		[]string{"store"},
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_analysis_duration_seconds",
			Help:    "Duration of a single (hotel, date) pricing analysis.",
			Buckets: prometheus.DefBuckets,
		},
	)

	BatchDatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_batch_dates_total",
			Help: "Count of dates processed by multi-day analysis, by status.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsTotal,
		RoomTypeFailuresTotal,
		StoreFallbacksTotal,
		AnalysisDuration,
		BatchDatesTotal,
	)
}
