package pricing

import (
	"hotelPricing/domain"
	"math"
	"strings"
	"time"
)

var lodgingKeywords = []string{"hotel", "inn", "suites"}

// trendThreshold is the day-over-day price move that counts as a trend.
const trendThreshold = 0.05

// CompetitorScorer rates how closely a candidate property competes with the
// target hotel. It never fails: a candidate without usable price data is
// scored at the configured default price.
type CompetitorScorer struct {
	cfg      Config
	distance DistanceCalculator
}

func NewCompetitorScorer(cfg Config, distance DistanceCalculator) *CompetitorScorer {
	if distance == nil {
		distance = HaversineDistance{}
	}
	return &CompetitorScorer{cfg: cfg, distance: distance}
}

// Score evaluates candidate against target using the price table entry for
// day (and the day before, for the trend).
func (s *CompetitorScorer) Score(candidate domain.CompetitorHotel, target domain.Hotel, day time.Time) domain.CompetitorIntelligence {
	price, hasPrice := s.averagePrice(candidate, day)
	prevPrice, hasPrev := s.averagePrice(candidate, day.AddDate(0, 0, -1))

	distance := s.distanceKm(candidate, target)
	sameLocale := localeMatches(candidate.City, target.City)
	similarity := similarityScore(candidate, sameLocale)

	isMain := s.isMainCompetitor(similarity, distance, price, sameLocale, candidate.StarRating)
	strategy := pricingStrategy(price)

	trend := domain.TrendStable
	if hasPrice && hasPrev {
		trend = priceTrend(prevPrice, price)
	}

	return domain.CompetitorIntelligence{
		HotelID:          candidate.ID,
		Name:             candidate.Name,
		City:             candidate.City,
		StarRating:       candidate.StarRating,
		DistanceKm:       round2(distance),
		CurrentPrice:     round2(price),
		HasPriceData:     hasPrice,
		PriceTrend:       trend,
		OccupancyRate:    occupancyEstimate(strategy),
		CompetitiveLevel: competitiveLevel(distance),
		PricingStrategy:  strategy,
		ThreatLevel:      threatLevel(isMain, similarity, price),
		SimilarityScore:  similarity,
		IsMainCompetitor: isMain,
		MarketPosition:   competitorPosition(price, similarity),
	}
}

// averagePrice is the mean room price listed for day, or the configured
// default when the table has nothing usable.
func (s *CompetitorScorer) averagePrice(candidate domain.CompetitorHotel, day time.Time) (float64, bool) {
	rooms := candidate.RoomsOn(day.Format(domain.CompetitorDateLayout))

	prices := make([]float64, 0, len(rooms))
	for _, r := range rooms {
		if r.Price > 0 && !math.IsInf(r.Price, 0) && !math.IsNaN(r.Price) {
			prices = append(prices, r.Price)
		}
	}
	if len(prices) == 0 {
		return s.cfg.DefaultCompetitorPrice, false
	}

	return mean(prices), true
}

func (s *CompetitorScorer) distanceKm(candidate domain.CompetitorHotel, target domain.Hotel) float64 {
	from, ok := target.Location()
	if !ok {
		return s.cfg.UnknownDistanceKm
	}
	to, ok := candidate.Location()
	if !ok {
		return s.cfg.UnknownDistanceKm
	}
	return s.distance.DistanceKm(from, to)
}

// isMainCompetitor requires every gate to pass; there is no partial credit.
func (s *CompetitorScorer) isMainCompetitor(similarity, distanceKm, price float64, sameLocale bool, stars float64) bool {
	return similarity > s.cfg.MainCompetitorMinSimilarity &&
		distanceKm < s.cfg.MainCompetitorMaxDistanceKm &&
		price > s.cfg.MinPrice && price < s.cfg.MaxPrice &&
		sameLocale &&
		stars >= s.cfg.MainCompetitorMinStars
}

func localeMatches(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

func similarityScore(candidate domain.CompetitorHotel, sameLocale bool) float64 {
	score := 0.5
	if candidate.StarRating >= 4 {
		score += 0.2
		if candidate.StarRating >= 5 {
			score += 0.1
		}
	}
	if sameLocale {
		score += 0.2
	}

	name := strings.ToLower(candidate.Name)
	for _, kw := range lodgingKeywords {
		if strings.Contains(name, kw) {
			score += 0.1
			break
		}
	}

	return round2(math.Min(1.0, score))
}

func competitorPosition(price, similarity float64) domain.MarketPosition {
	switch {
	case price > 3000 && similarity > 0.8:
		return domain.PositionLeader
	case price > 2000 && similarity > 0.6:
		return domain.PositionPremium
	case price > 1000 && similarity > 0.4:
		return domain.PositionCompetitive
	default:
		return domain.PositionBudget
	}
}

func pricingStrategy(price float64) domain.PricingStrategy {
	switch {
	case price > 2500:
		return domain.StrategyPremium
	case price > 1500:
		return domain.StrategyCompetitive
	case price < 1000:
		return domain.StrategyBudget
	default:
		return domain.StrategyDynamic
	}
}

func threatLevel(isMain bool, similarity, price float64) domain.ThreatLevel {
	switch {
	case isMain && similarity > 0.8 && price < 1500:
		return domain.ThreatHigh
	case isMain && similarity > 0.6 && price < 2000:
		return domain.ThreatMedium
	default:
		return domain.ThreatLow
	}
}

func competitiveLevel(distanceKm float64) domain.CompetitiveLevel {
	switch {
	case distanceKm < 2:
		return domain.CompetitiveDirect
	case distanceKm < 10:
		return domain.CompetitiveIndirect
	default:
		return domain.CompetitiveDistant
	}
}

func priceTrend(previous, current float64) domain.PriceTrend {
	if previous <= 0 {
		return domain.TrendStable
	}
	change := (current - previous) / previous
	switch {
	case change > trendThreshold:
		return domain.TrendIncreasing
	case change < -trendThreshold:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// occupancyEstimate is a placeholder until real occupancy feeds exist.
func occupancyEstimate(strategy domain.PricingStrategy) float64 {
	switch strategy {
	case domain.StrategyPremium:
		return 0.65
	case domain.StrategyCompetitive:
		return 0.75
	case domain.StrategyBudget:
		return 0.85
	default:
		return 0.7
	}
}
