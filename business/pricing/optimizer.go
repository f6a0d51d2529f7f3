package pricing

import (
	"hotelPricing/domain"
	"math"
)

// positionAdjustment is the premium (or discount) applied to the competitor
// average for each hotel market position.
var positionAdjustment = map[domain.MarketPosition]float64{
	domain.PositionLeader:      1.15,
	domain.PositionPremium:     1.08,
	domain.PositionCompetitive: 0.98,
	domain.PositionBudget:      0.85,
}

// PriceOptimization carries the recommended price and the intermediate
// values that explain it.
type PriceOptimization struct {
	RoomType            string
	CurrentPrice        float64
	CompetitorAverage   float64
	UsedFallbackAverage bool
	MainCompetitors     []string
	MarketPosition      domain.MarketPosition
	PositionAdjustment  float64
	BasePrice           float64
	SignificantEvents   []domain.EventIntelligence
	EventMultiplier     float64
	RecommendedPrice    float64
}

// PriceOptimizer turns competitor pricing into a bounded price. Competitor
// pricing is the primary signal; events only scale the result.
type PriceOptimizer struct {
	cfg Config
}

func NewPriceOptimizer(cfg Config) *PriceOptimizer {
	return &PriceOptimizer{cfg: cfg}
}

// Optimize is deterministic for identical inputs. The market view does not
// move the price; it is part of the signature so callers pass one bundle.
func (o *PriceOptimizer) Optimize(
	currentPrice float64,
	events []domain.EventIntelligence,
	competitors []domain.CompetitorIntelligence,
	_ domain.MarketIntelligence,
	roomType string,
) PriceOptimization {
	avg, names, fallback := o.competitorAverage(competitors)
	position := hotelPosition(currentPrice, avg)
	adjustment := positionAdjustment[position]
	base := avg * adjustment

	significant, multiplier := o.eventMultiplier(events)

	recommended := math.Round(clamp(base*multiplier, o.cfg.MinPrice, o.cfg.MaxPrice))

	return PriceOptimization{
		RoomType:            roomType,
		CurrentPrice:        currentPrice,
		CompetitorAverage:   round2(avg),
		UsedFallbackAverage: fallback,
		MainCompetitors:     names,
		MarketPosition:      position,
		PositionAdjustment:  adjustment,
		BasePrice:           round2(base),
		SignificantEvents:   significant,
		EventMultiplier:     multiplier,
		RecommendedPrice:    recommended,
	}
}

// competitorAverage is the mean price over main competitors, or the market
// fallback when there are none.
func (o *PriceOptimizer) competitorAverage(competitors []domain.CompetitorIntelligence) (float64, []string, bool) {
	prices := make([]float64, 0, len(competitors))
	names := make([]string, 0, len(competitors))
	for _, c := range competitors {
		if !c.IsMainCompetitor {
			continue
		}
		prices = append(prices, c.CurrentPrice)
		names = append(names, c.Name)
	}

	if len(prices) == 0 {
		return o.cfg.MarketAverageFallback, names, true
	}
	return mean(prices), names, false
}

// eventMultiplier averages the multipliers of significant events; 1.0 when
// no event is significant.
func (o *PriceOptimizer) eventMultiplier(events []domain.EventIntelligence) ([]domain.EventIntelligence, float64) {
	significant := make([]domain.EventIntelligence, 0, len(events))
	multipliers := make([]float64, 0, len(events))
	for _, ev := range events {
		m := ev.PriceImpactMultiplier
		if m > o.cfg.SignificantHigh || m < o.cfg.SignificantLow {
			significant = append(significant, ev)
			multipliers = append(multipliers, m)
		}
	}

	if len(multipliers) == 0 {
		return significant, 1.0
	}
	return significant, mean(multipliers)
}

// hotelPosition classifies the hotel by its price relative to competitors.
func hotelPosition(currentPrice, competitorAverage float64) domain.MarketPosition {
	if currentPrice <= 0 || competitorAverage <= 0 {
		return domain.PositionCompetitive
	}

	ratio := currentPrice / competitorAverage
	switch {
	case ratio > 1.2:
		return domain.PositionLeader
	case ratio > 1.1:
		return domain.PositionPremium
	case ratio < 0.9:
		return domain.PositionBudget
	default:
		return domain.PositionCompetitive
	}
}
