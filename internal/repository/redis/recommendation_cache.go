package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelPricing/business/inventory"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

type RecommendationCache struct {
	client *redis.Client
}

var (
	_ pricing.RecommendationCache = (*RecommendationCache)(nil)
	_ inventory.CacheInvalidator  = (*RecommendationCache)(nil)
)

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

// key format: "pricing:reco:{hotel_id}:{yyyy-mm-dd}"
func recommendationKey(hotelID uint64, date time.Time) string {
	return fmt.Sprintf("pricing:reco:%d:%s", hotelID, date.Format(domain.CompetitorDateLayout))
}

func hotelKeyPattern(hotelID uint64) string {
	return fmt.Sprintf("pricing:reco:%d:*", hotelID)
}

// Get returns the cached analysis, or ok=false on a miss.
func (c *RecommendationCache) Get(ctx context.Context, hotelID uint64, date time.Time) (*domain.AnalysisResult, bool, error) {
	val, err := c.client.Get(ctx, recommendationKey(hotelID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get recommendation from Redis: %w", err)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}

	return &result, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, hotelID uint64, date time.Time, result *domain.AnalysisResult, ttl time.Duration) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := c.client.Set(ctx, recommendationKey(hotelID, date), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendation in Redis: %w", err)
	}

	return nil
}

func (c *RecommendationCache) Invalidate(ctx context.Context, hotelID uint64, date time.Time) error {
	if err := c.client.Del(ctx, recommendationKey(hotelID, date)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate recommendation: %w", err)
	}
	return nil
}

// InvalidateHotel deletes every cached date of a hotel.
func (c *RecommendationCache) InvalidateHotel(ctx context.Context, hotelID uint64) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, hotelKeyPattern(hotelID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan recommendations: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate recommendations: %w", err)
	}
	return nil
}
