package pricing

import (
	"hotelPricing/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetitorScorer_MainCompetitor(t *testing.T) {
	s := NewCompetitorScorer(DefaultConfig(), FixedDistance(1))
	today := day("2026-10-15")

	got := s.Score(mainCompetitor(9, "Grand Hotel", "2026-10-15", 1900, 2100), taipeiHotel(), today)

	assert.True(t, got.IsMainCompetitor)
	assert.True(t, got.HasPriceData)
	assert.InDelta(t, 2000, got.CurrentPrice, 0.001)
	assert.InDelta(t, 1.0, got.SimilarityScore, 0.001)
	assert.Equal(t, domain.CompetitiveDirect, got.CompetitiveLevel)
	assert.Equal(t, domain.StrategyCompetitive, got.PricingStrategy)
	assert.Equal(t, domain.PositionCompetitive, got.MarketPosition)
	assert.Equal(t, domain.ThreatLow, got.ThreatLevel)
	assert.Equal(t, domain.TrendStable, got.PriceTrend)
	assert.InDelta(t, 0.75, got.OccupancyRate, 0.001)
}

// Each case breaks exactly one of the main competitor conditions.
func TestCompetitorScorer_SingleViolationIsNotMain(t *testing.T) {
	today := day("2026-10-15")
	base := func() domain.CompetitorHotel {
		return mainCompetitor(9, "Grand Hotel", "2026-10-15", 2000)
	}

	tests := []struct {
		name     string
		distance FixedDistance
		mutate   func(c *domain.CompetitorHotel)
	}{
		{"similarity at threshold", 1, func(c *domain.CompetitorHotel) {
			c.StarRating = 3
			c.Name = "Grand Palace"
		}},
		{"too far", 6, func(c *domain.CompetitorHotel) {}},
		{"price at max", 1, func(c *domain.CompetitorHotel) {
			c.RoomsByDate = roomsByDate(map[string][]domain.CompetitorRoom{"2026-10-15": {{RoomType: "Double", Price: 5000}}})
		}},
		{"price at min", 1, func(c *domain.CompetitorHotel) {
			c.RoomsByDate = roomsByDate(map[string][]domain.CompetitorRoom{"2026-10-15": {{RoomType: "Double", Price: 500}}})
		}},
		{"no price for the day", 1, func(c *domain.CompetitorHotel) {
			c.RoomsByDate = roomsByDate(map[string][]domain.CompetitorRoom{"2026-10-14": {{RoomType: "Double", Price: 2000}}})
		}},
		{"different city", 1, func(c *domain.CompetitorHotel) {
			c.City = "Kaohsiung"
		}},
		{"too few stars", 1, func(c *domain.CompetitorHotel) {
			c.StarRating = 2
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)

			got := NewCompetitorScorer(DefaultConfig(), tt.distance).Score(c, taipeiHotel(), today)
			assert.False(t, got.IsMainCompetitor)
		})
	}
}

func TestCompetitorScorer_MissingPriceTable(t *testing.T) {
	s := NewCompetitorScorer(DefaultConfig(), FixedDistance(1))

	for name, raw := range map[string]string{
		"null":      "",
		"malformed": "{not json",
		"bad entry": `{"2026-10-15": "sold out"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := mainCompetitor(9, "Grand Hotel", "2026-10-15", 2000)
			c.RoomsByDate = []byte(raw)

			got := s.Score(c, taipeiHotel(), day("2026-10-15"))
			assert.False(t, got.HasPriceData)
			assert.InDelta(t, 150, got.CurrentPrice, 0.001)
			assert.False(t, got.IsMainCompetitor)
			assert.Equal(t, domain.StrategyBudget, got.PricingStrategy)
		})
	}
}

func TestCompetitorScorer_UnknownCoordinates(t *testing.T) {
	s := NewCompetitorScorer(DefaultConfig(), nil)

	c := mainCompetitor(9, "Grand Hotel", "2026-10-15", 2000)
	c.Latitude = nil

	got := s.Score(c, taipeiHotel(), day("2026-10-15"))
	assert.InDelta(t, 999, got.DistanceKm, 0.001)
	assert.Equal(t, domain.CompetitiveDistant, got.CompetitiveLevel)
	assert.False(t, got.IsMainCompetitor)
}

func TestCompetitorScorer_HaversineNearby(t *testing.T) {
	s := NewCompetitorScorer(DefaultConfig(), HaversineDistance{})

	got := s.Score(mainCompetitor(9, "Grand Hotel", "2026-10-15", 2000), taipeiHotel(), day("2026-10-15"))
	assert.Less(t, got.DistanceKm, 2.0)
	assert.True(t, got.IsMainCompetitor)
}

func TestCompetitorScorer_PriceTrend(t *testing.T) {
	s := NewCompetitorScorer(DefaultConfig(), FixedDistance(1))

	tests := []struct {
		name      string
		yesterday float64
		today     float64
		want      domain.PriceTrend
	}{
		{"up", 1800, 2000, domain.TrendIncreasing},
		{"down", 2200, 2000, domain.TrendDecreasing},
		{"flat", 1980, 2000, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mainCompetitor(9, "Grand Hotel", "2026-10-15")
			c.RoomsByDate = roomsByDate(map[string][]domain.CompetitorRoom{
				"2026-10-14": {{RoomType: "Double", Price: tt.yesterday}},
				"2026-10-15": {{RoomType: "Double", Price: tt.today}},
			})

			got := s.Score(c, taipeiHotel(), day("2026-10-15"))
			assert.Equal(t, tt.want, got.PriceTrend)
		})
	}
}

func TestCompetitorLabels(t *testing.T) {
	assert.Equal(t, domain.PositionLeader, competitorPosition(3500, 0.9))
	assert.Equal(t, domain.PositionPremium, competitorPosition(3500, 0.7))
	assert.Equal(t, domain.PositionCompetitive, competitorPosition(1500, 0.5))
	assert.Equal(t, domain.PositionBudget, competitorPosition(800, 0.9))

	assert.Equal(t, domain.StrategyPremium, pricingStrategy(2600))
	assert.Equal(t, domain.StrategyDynamic, pricingStrategy(1200))
	assert.Equal(t, domain.StrategyBudget, pricingStrategy(900))

	assert.Equal(t, domain.ThreatHigh, threatLevel(true, 0.9, 1200))
	assert.Equal(t, domain.ThreatMedium, threatLevel(true, 0.7, 1800))
	assert.Equal(t, domain.ThreatLow, threatLevel(false, 0.9, 1200))

	assert.Equal(t, domain.CompetitiveIndirect, competitiveLevel(5))
	assert.True(t, localeMatches(" taipei", "Taipei "))
	assert.False(t, localeMatches("", ""))
}
