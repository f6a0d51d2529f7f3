package pricing

import (
	"hotelPricing/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationComposer_NoEvents(t *testing.T) {
	cfg := DefaultConfig()
	competitors := []domain.CompetitorIntelligence{mainIntel("Grand Hotel", 1700), mainIntel("Riverside Inn", 1900)}
	market := NewMarketAggregator().Aggregate(nil, competitors)
	opt := NewPriceOptimizer(cfg).Optimize(2000, nil, competitors, market, "standard")

	got := NewRecommendationComposer(cfg).Compose(nil, competitors, market, opt)

	assert.Equal(t, "standard", got.RoomType)
	assert.Equal(t, 2000.0, got.CurrentPrice)
	assert.Equal(t, 1944.0, got.RecommendedPrice)
	assert.InDelta(t, -56, got.PriceChange, 0.001)
	assert.InDelta(t, -2.8, got.PriceChangePercent, 0.001)

	require.Len(t, got.Reasoning, 5)
	assert.Contains(t, got.Reasoning[0], "Based on 2 main competitor(s) averaging 1800.00 TWD")
	assert.Contains(t, got.Reasoning[1], "above the competitor average")
	assert.Contains(t, got.Reasoning[2], "premium")
	assert.Equal(t, "No significant events detected; no event adjustment applied", got.Reasoning[3])
	assert.Equal(t, "Recommending a minor decrease of 2.8%", got.Reasoning[4])

	assert.Contains(t, got.RiskFactors, RiskNoEvents)
	assert.Equal(t, domain.OutcomeIncrease, got.ExpectedOutcomes.Occupancy)

	assert.Equal(t, []string{"Grand Hotel", "Riverside Inn"}, got.CompetitorAnalysis.MainCompetitors)
	assert.InDelta(t, 200, got.CompetitorAnalysis.PriceGap, 0.001)
	assert.Equal(t, domain.PositionPremium, got.CompetitorAnalysis.MarketPosition)
}

func TestRecommendationComposer_FallbackAndEvents(t *testing.T) {
	cfg := DefaultConfig()
	concert, err := NewEventClassifier(cfg).Classify(domain.Event{Name: "Stadium Concert", Date: day("2026-10-15")})
	require.NoError(t, err)
	events := []domain.EventIntelligence{concert}

	market := NewMarketAggregator().Aggregate(events, nil)
	opt := NewPriceOptimizer(cfg).Optimize(1000, events, nil, market, "standard")

	got := NewRecommendationComposer(cfg).Compose(events, nil, market, opt)

	assert.Equal(t, 3278.0, got.RecommendedPrice)
	assert.Contains(t, got.Reasoning[0], "No main competitors matched")
	assert.Contains(t, got.Reasoning[3], "Stadium Concert (concert)")
	assert.Contains(t, got.Reasoning[4], "significant increase")
	assert.NotContains(t, got.RiskFactors, RiskNoEvents)
	assert.Contains(t, got.RiskFactors, RiskVolatileMarket)
	assert.Equal(t, domain.OutcomeIncrease, got.ExpectedOutcomes.Revenue)
	assert.InDelta(t, 25, got.ExpectedOutcomes.ImpactPercent, 0.001)
}

func TestRecommendationComposer_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	concert, err := NewEventClassifier(cfg).Classify(domain.Event{Name: "Stadium Concert", Date: day("2026-10-15")})
	require.NoError(t, err)
	events := []domain.EventIntelligence{concert}
	competitors := []domain.CompetitorIntelligence{mainIntel("Grand Hotel", 1700), mainIntel("Riverside Inn", 1900)}

	compose := func() domain.PricingRecommendation {
		market := NewMarketAggregator().Aggregate(events, competitors)
		opt := NewPriceOptimizer(cfg).Optimize(2000, events, competitors, market, "deluxe")
		return NewRecommendationComposer(cfg).Compose(events, competitors, market, opt)
	}

	first := compose()
	second := compose()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Reasoning)
	assert.Len(t, first.AlternativePrices, 3)
}

func TestRecommendationComposer_Alternatives(t *testing.T) {
	got := alternatives(1944)

	require.Len(t, got, 3)
	assert.Equal(t, domain.ScenarioConservative, got[0].Scenario)
	assert.InDelta(t, 1846.8, got[0].Price, 0.001)
	assert.InDelta(t, 0.3, got[0].Probability, 0.001)
	assert.Equal(t, domain.ScenarioAggressive, got[1].Scenario)
	assert.InDelta(t, 2138.4, got[1].Price, 0.001)
	assert.Equal(t, domain.ScenarioCompetitive, got[2].Scenario)
	assert.InDelta(t, 1749.6, got[2].Price, 0.001)

	// not re-clamped above the max price
	assert.InDelta(t, 5500, alternatives(5000)[1].Price, 0.001)
}

func TestConfidenceScore(t *testing.T) {
	sixCompetitors := make([]domain.CompetitorIntelligence, 6)
	events := []domain.EventIntelligence{{Confidence: 90}, {Confidence: 90}}

	assert.Equal(t, 92.0, confidenceScore(events, sixCompetitors, domain.MarketIntelligence{MarketOpportunity: 1}))
	assert.Equal(t, 50.0, confidenceScore(nil, nil, domain.MarketIntelligence{}))
	assert.Equal(t, 55.0, confidenceScore(nil, make([]domain.CompetitorIntelligence, 3), domain.MarketIntelligence{}))

	for _, opp := range []float64{0, 0.5, 1} {
		got := confidenceScore([]domain.EventIntelligence{{Confidence: 100}}, sixCompetitors, domain.MarketIntelligence{MarketOpportunity: opp})
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestExpectedOutcomes(t *testing.T) {
	up := expectedOutcomes(10)
	assert.Equal(t, domain.OutcomeIncrease, up.Revenue)
	assert.Equal(t, domain.OutcomeDecrease, up.Occupancy)
	assert.Equal(t, domain.CompetitivenessWorsen, up.Competitiveness)
	assert.InDelta(t, 8, up.ImpactPercent, 0.001)
	assert.InDelta(t, 25, expectedOutcomes(50).ImpactPercent, 0.001)

	down := expectedOutcomes(-10)
	assert.Equal(t, domain.CompetitivenessImprove, down.Competitiveness)
	assert.InDelta(t, 12, down.ImpactPercent, 0.001)
	assert.InDelta(t, 30, expectedOutcomes(-40).ImpactPercent, 0.001)

	flat := expectedOutcomes(0)
	assert.Equal(t, domain.OutcomeNeutral, flat.Revenue)
	assert.Zero(t, flat.ImpactPercent)
}

func TestRiskFactors(t *testing.T) {
	calm := domain.MarketIntelligence{PriceTrends: domain.TrendStable, SupplyAvailability: domain.SupplyScarce}
	got := riskFactors([]domain.EventIntelligence{{}}, calm)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	crowded := domain.MarketIntelligence{PriceTrends: domain.TrendVolatile, SupplyAvailability: domain.SupplyAbundant}
	assert.Equal(t, []string{RiskVolatileMarket, RiskHighCompetition, RiskNoEvents}, riskFactors(nil, crowded))
}
