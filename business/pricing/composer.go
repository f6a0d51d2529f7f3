package pricing

import (
	"fmt"
	"hotelPricing/domain"
	"math"
	"strings"
)

const (
	RiskVolatileMarket  = "volatile market"
	RiskHighCompetition = "high competition"
	RiskNoEvents        = "no events detected"
)

// significantChangePercent separates a significant from a minor change.
const significantChangePercent = 5.0

type altScenario struct {
	scenario    domain.PriceScenario
	factor      float64
	probability float64
}

// Scenario probabilities are independent likelihoods, not a distribution.
var alternativeScenarios = []altScenario{
	{domain.ScenarioConservative, 0.95, 0.3},
	{domain.ScenarioAggressive, 1.1, 0.2},
	{domain.ScenarioCompetitive, 0.9, 0.5},
}

// RecommendationComposer explains a price: reasoning, confidence, outcomes,
// risks and alternative scenarios.
type RecommendationComposer struct {
	cfg Config
}

func NewRecommendationComposer(cfg Config) *RecommendationComposer {
	return &RecommendationComposer{cfg: cfg}
}

func (c *RecommendationComposer) Compose(
	events []domain.EventIntelligence,
	competitors []domain.CompetitorIntelligence,
	market domain.MarketIntelligence,
	opt PriceOptimization,
) domain.PricingRecommendation {
	current := opt.CurrentPrice
	recommended := opt.RecommendedPrice

	change := recommended - current
	changePct := 0.0
	if current > 0 {
		changePct = change / current * 100
	}

	return domain.PricingRecommendation{
		RoomType:           opt.RoomType,
		CurrentPrice:       round2(current),
		RecommendedPrice:   recommended,
		PriceChange:        round2(change),
		PriceChangePercent: round2(changePct),
		Confidence:         confidenceScore(events, competitors, market),
		Reasoning:          c.reasoning(opt, changePct),
		ExpectedOutcomes:   expectedOutcomes(changePct),
		RiskFactors:        riskFactors(events, market),
		AlternativePrices:  alternatives(recommended),
		CompetitorAnalysis: domain.CompetitorAnalysis{
			MainCompetitors:   opt.MainCompetitors,
			CompetitorAverage: opt.CompetitorAverage,
			MarketPosition:    opt.MarketPosition,
			PriceGap:          round2(current - opt.CompetitorAverage),
			Opportunity:       market.MarketOpportunity,
		},
	}
}

func (c *RecommendationComposer) reasoning(opt PriceOptimization, changePct float64) []string {
	lines := make([]string, 0, 5)

	if opt.UsedFallbackAverage {
		lines = append(lines, fmt.Sprintf(
			"No main competitors matched; using the market average of %.2f %s as the competitor benchmark",
			opt.CompetitorAverage, c.cfg.Currency))
	} else {
		lines = append(lines, fmt.Sprintf(
			"Based on %d main competitor(s) averaging %.2f %s",
			len(opt.MainCompetitors), opt.CompetitorAverage, c.cfg.Currency))
	}

	lines = append(lines, positioningSentence(opt.CurrentPrice, opt.CompetitorAverage))

	lines = append(lines, fmt.Sprintf(
		"Current market position is %s, so the base price is set at %+.0f%% of the competitor average (%.2f)",
		opt.MarketPosition, (opt.PositionAdjustment-1)*100, opt.BasePrice))

	if len(opt.SignificantEvents) == 0 {
		lines = append(lines, "No significant events detected; no event adjustment applied")
	} else {
		names := make([]string, 0, len(opt.SignificantEvents))
		for _, ev := range opt.SignificantEvents {
			names = append(names, fmt.Sprintf("%s (%s)", ev.Name, ev.EventType))
		}
		lines = append(lines, fmt.Sprintf(
			"%d significant event(s) detected: %s; applying a %.2fx demand multiplier",
			len(opt.SignificantEvents), strings.Join(names, ", "), opt.EventMultiplier))
	}

	magnitude := "a minor"
	if math.Abs(changePct) > significantChangePercent {
		magnitude = "a significant"
	}
	switch {
	case changePct > 0:
		lines = append(lines, fmt.Sprintf("Recommending %s increase of %.1f%%", magnitude, changePct))
	case changePct < 0:
		lines = append(lines, fmt.Sprintf("Recommending %s decrease of %.1f%%", magnitude, math.Abs(changePct)))
	default:
		lines = append(lines, "Recommending to keep the current price")
	}

	return lines
}

func positioningSentence(current, competitorAverage float64) string {
	if competitorAverage <= 0 {
		return "Competitor average unavailable; positioning not assessed"
	}

	gap := current - competitorAverage
	gapPct := gap / competitorAverage * 100
	switch {
	case math.Abs(gapPct) < 0.5:
		return fmt.Sprintf("Current price %.2f is at the competitor average", current)
	case gap > 0:
		return fmt.Sprintf("Current price %.2f is %+.2f (%+.1f%%) above the competitor average", current, gap, gapPct)
	default:
		return fmt.Sprintf("Current price %.2f is %+.2f (%+.1f%%) below the competitor average", current, gap, gapPct)
	}
}

func confidenceScore(events []domain.EventIntelligence, competitors []domain.CompetitorIntelligence, market domain.MarketIntelligence) float64 {
	score := 50.0

	if len(events) > 0 {
		confs := make([]float64, 0, len(events))
		for _, ev := range events {
			confs = append(confs, ev.Confidence)
		}
		score += 0.3 * (mean(confs) - 50)
	}

	switch n := len(competitors); {
	case n > 5:
		score += 10
	case n > 2:
		score += 5
	}

	score += market.MarketOpportunity * 20

	return math.Round(clamp(score, 0, 100))
}

func expectedOutcomes(changePct float64) domain.ExpectedOutcomes {
	switch {
	case changePct > 0:
		return domain.ExpectedOutcomes{
			Revenue:         domain.OutcomeIncrease,
			Occupancy:       domain.OutcomeDecrease,
			Competitiveness: domain.CompetitivenessWorsen,
			ImpactPercent:   round2(math.Min(25, changePct*0.8)),
		}
	case changePct < 0:
		return domain.ExpectedOutcomes{
			Revenue:         domain.OutcomeIncrease,
			Occupancy:       domain.OutcomeIncrease,
			Competitiveness: domain.CompetitivenessImprove,
			ImpactPercent:   round2(math.Min(30, math.Abs(changePct)*1.2)),
		}
	default:
		return domain.ExpectedOutcomes{
			Revenue:         domain.OutcomeNeutral,
			Occupancy:       domain.OutcomeNeutral,
			Competitiveness: domain.CompetitivenessNeutral,
			ImpactPercent:   0,
		}
	}
}

func riskFactors(events []domain.EventIntelligence, market domain.MarketIntelligence) []string {
	risks := []string{}
	if market.PriceTrends == domain.TrendVolatile {
		risks = append(risks, RiskVolatileMarket)
	}
	if market.SupplyAvailability == domain.SupplyAbundant {
		risks = append(risks, RiskHighCompetition)
	}
	if len(events) == 0 {
		risks = append(risks, RiskNoEvents)
	}
	return risks
}

// alternatives are derived from the final recommended price and are not
// re-clamped.
func alternatives(recommended float64) []domain.AlternativePrice {
	out := make([]domain.AlternativePrice, 0, len(alternativeScenarios))
	for _, sc := range alternativeScenarios {
		out = append(out, domain.AlternativePrice{
			Price:       recommended * sc.factor,
			Scenario:    sc.scenario,
			Probability: sc.probability,
		})
	}
	return out
}
