package pricing

import (
	"hotelPricing/domain"
)

// MarketAggregator folds the run's events and competitors into one market view.
type MarketAggregator struct{}

func NewMarketAggregator() *MarketAggregator {
	return &MarketAggregator{}
}

func (a *MarketAggregator) Aggregate(events []domain.EventIntelligence, competitors []domain.CompetitorIntelligence) domain.MarketIntelligence {
	attendance := 0
	for _, ev := range events {
		attendance += ev.ExpectedAttendance
	}

	demand := marketDemand(attendance)
	supply := supplyAvailability(len(competitors))
	trend := majorityTrend(competitors)

	return domain.MarketIntelligence{
		MarketDemand:            demand,
		SupplyAvailability:      supply,
		PriceTrends:             trend,
		MarketOpportunity:       marketOpportunity(demand, supply, trend),
		TotalExpectedAttendance: attendance,
		CompetitorCount:         len(competitors),
	}
}

func marketDemand(totalAttendance int) domain.DemandLevel {
	switch {
	case totalAttendance > 10000:
		return domain.DemandExtreme
	case totalAttendance > 5000:
		return domain.DemandHigh
	case totalAttendance > 1000:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

func supplyAvailability(competitorCount int) domain.SupplyLevel {
	switch {
	case competitorCount > 20:
		return domain.SupplyAbundant
	case competitorCount > 10:
		return domain.SupplyModerate
	case competitorCount > 5:
		return domain.SupplyLimited
	default:
		return domain.SupplyScarce
	}
}

// majorityTrend returns the most common competitor trend. A tie for first
// place, or no competitors at all, is volatile.
func majorityTrend(competitors []domain.CompetitorIntelligence) domain.PriceTrend {
	counts := map[domain.PriceTrend]int{}
	for _, c := range competitors {
		counts[c.PriceTrend]++
	}

	best := domain.TrendVolatile
	bestCount := 0
	tied := false
	for _, t := range []domain.PriceTrend{domain.TrendIncreasing, domain.TrendDecreasing, domain.TrendStable} {
		n := counts[t]
		switch {
		case n > bestCount:
			best, bestCount, tied = t, n, false
		case n == bestCount && n > 0:
			tied = true
		}
	}

	if bestCount == 0 || tied {
		return domain.TrendVolatile
	}
	return best
}

func marketOpportunity(demand domain.DemandLevel, supply domain.SupplyLevel, trend domain.PriceTrend) float64 {
	score := 0.5

	switch demand {
	case domain.DemandExtreme:
		score += 0.3
	case domain.DemandHigh:
		score += 0.2
	case domain.DemandMedium:
		score += 0.1
	}

	switch supply {
	case domain.SupplyScarce:
		score += 0.2
	case domain.SupplyLimited:
		score += 0.1
	case domain.SupplyAbundant:
		score -= 0.1
	}

	switch trend {
	case domain.TrendIncreasing:
		score += 0.1
	case domain.TrendDecreasing:
		score -= 0.1
	}

	return round2(clamp(score, 0, 1))
}
