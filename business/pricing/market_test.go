package pricing

import (
	"hotelPricing/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func competitorsWithTrends(trends ...domain.PriceTrend) []domain.CompetitorIntelligence {
	out := make([]domain.CompetitorIntelligence, 0, len(trends))
	for _, tr := range trends {
		out = append(out, domain.CompetitorIntelligence{PriceTrend: tr})
	}
	return out
}

func TestMarketAggregator_Aggregate(t *testing.T) {
	events := []domain.EventIntelligence{{ExpectedAttendance: 25000}, {ExpectedAttendance: 3000}}
	competitors := competitorsWithTrends(domain.TrendIncreasing, domain.TrendIncreasing, domain.TrendStable)

	got := NewMarketAggregator().Aggregate(events, competitors)

	assert.Equal(t, 28000, got.TotalExpectedAttendance)
	assert.Equal(t, domain.DemandExtreme, got.MarketDemand)
	assert.Equal(t, domain.SupplyScarce, got.SupplyAvailability)
	assert.Equal(t, domain.TrendIncreasing, got.PriceTrends)
	assert.Equal(t, 3, got.CompetitorCount)
	// 0.5 + 0.3 + 0.2 + 0.1, capped
	assert.InDelta(t, 1.0, got.MarketOpportunity, 0.001)
}

func TestMarketAggregator_Empty(t *testing.T) {
	got := NewMarketAggregator().Aggregate(nil, nil)

	assert.Equal(t, domain.DemandLow, got.MarketDemand)
	assert.Equal(t, domain.SupplyScarce, got.SupplyAvailability)
	assert.Equal(t, domain.TrendVolatile, got.PriceTrends)
	assert.InDelta(t, 0.7, got.MarketOpportunity, 0.001)
}

func TestMarketDemandAndSupply(t *testing.T) {
	assert.Equal(t, domain.DemandLow, marketDemand(1000))
	assert.Equal(t, domain.DemandMedium, marketDemand(1001))
	assert.Equal(t, domain.DemandHigh, marketDemand(5001))
	assert.Equal(t, domain.DemandExtreme, marketDemand(10001))

	assert.Equal(t, domain.SupplyScarce, supplyAvailability(5))
	assert.Equal(t, domain.SupplyLimited, supplyAvailability(6))
	assert.Equal(t, domain.SupplyModerate, supplyAvailability(11))
	assert.Equal(t, domain.SupplyAbundant, supplyAvailability(21))
}

func TestMajorityTrend(t *testing.T) {
	tests := []struct {
		name   string
		trends []domain.PriceTrend
		want   domain.PriceTrend
	}{
		{"none", nil, domain.TrendVolatile},
		{"clear majority", []domain.PriceTrend{domain.TrendDecreasing, domain.TrendDecreasing, domain.TrendStable}, domain.TrendDecreasing},
		{"plurality", []domain.PriceTrend{domain.TrendStable, domain.TrendStable, domain.TrendIncreasing, domain.TrendDecreasing}, domain.TrendStable},
		{"tie", []domain.PriceTrend{domain.TrendIncreasing, domain.TrendDecreasing}, domain.TrendVolatile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, majorityTrend(competitorsWithTrends(tt.trends...)))
		})
	}
}

func TestMarketOpportunity_StaysInUnitRange(t *testing.T) {
	demands := []domain.DemandLevel{domain.DemandLow, domain.DemandMedium, domain.DemandHigh, domain.DemandExtreme}
	supplies := []domain.SupplyLevel{domain.SupplyAbundant, domain.SupplyModerate, domain.SupplyLimited, domain.SupplyScarce}
	trends := []domain.PriceTrend{domain.TrendIncreasing, domain.TrendDecreasing, domain.TrendStable, domain.TrendVolatile}

	for _, d := range demands {
		for _, s := range supplies {
			for _, tr := range trends {
				got := marketOpportunity(d, s, tr)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 1.0)
			}
		}
	}

	assert.InDelta(t, 0.3, marketOpportunity(domain.DemandLow, domain.SupplyAbundant, domain.TrendDecreasing), 0.001)
}
