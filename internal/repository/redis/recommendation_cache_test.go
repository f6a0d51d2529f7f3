package redis

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationKey(t *testing.T) {
	date := time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "pricing:reco:42:2026-10-15", recommendationKey(42, date))
}

func TestHotelKeyPattern(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	match := func(pattern, key string) bool {
		ok, err := path.Match(pattern, key)
		assert.NoError(t, err)
		return ok
	}

	assert.True(t, match(hotelKeyPattern(42), recommendationKey(42, date)))
	assert.False(t, match(hotelKeyPattern(42), recommendationKey(420, date)))
	assert.False(t, match(hotelKeyPattern(4), recommendationKey(42, date)))
}
