package pricing

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"time"
)

type Config struct {
	Currency string

	// fallbacks when a store has no usable price
	DefaultCompetitorPrice float64
	DefaultRoomPrice       float64
	MarketAverageFallback  float64
	DefaultRoomTypes       []string

	// hard bounds on every recommended price
	MinPrice float64
	MaxPrice float64

	// bounds on an event's price impact multiplier
	MinImpactMultiplier float64
	MaxImpactMultiplier float64

	// events outside [SignificantLow, SignificantHigh] move the price
	SignificantHigh float64
	SignificantLow  float64

	// main competitor gating, all conjunctive
	MainCompetitorMinSimilarity float64
	MainCompetitorMaxDistanceKm float64
	MainCompetitorMinStars      float64

	// distance used when either side has no coordinates
	UnknownDistanceKm float64

	StoreTimeout       time.Duration
	CompetitorPageSize int
	HistoryLimit       int

	BatchInterval time.Duration
	MaxBatchDays  int
	CacheTTL      time.Duration
}

const (
	defaultCurrency                    = "TWD"
	defaultCompetitorPrice             = 150.0
	defaultRoomPrice                   = 1928.21
	defaultMarketAverage               = 1928.21
	defaultMinPrice                    = 500.0
	defaultMaxPrice                    = 5000.0
	defaultMinImpactMultiplier         = 0.5
	defaultMaxImpactMultiplier         = 2.0
	defaultSignificantHigh             = 1.1
	defaultSignificantLow              = 0.9
	defaultMainCompetitorMinSimilarity = 0.7
	defaultMainCompetitorMaxDistanceKm = 5.0
	defaultMainCompetitorMinStars      = 3.0
	defaultUnknownDistanceKm           = 999.0
	defaultStoreTimeout                = 5 * time.Second
	defaultCompetitorPageSize          = 100
	defaultHistoryLimit                = 5
	defaultBatchInterval               = 2 * time.Second
	defaultMaxBatchDays                = 31
	defaultCacheTTL                    = 10 * time.Minute
)

func DefaultConfig() Config {
	return Config{
		Currency: defaultCurrency,

		DefaultCompetitorPrice: defaultCompetitorPrice,
		DefaultRoomPrice:       defaultRoomPrice,
		MarketAverageFallback:  defaultMarketAverage,
		DefaultRoomTypes:       []string{"standard"},

		MinPrice: defaultMinPrice,
		MaxPrice: defaultMaxPrice,

		MinImpactMultiplier: defaultMinImpactMultiplier,
		MaxImpactMultiplier: defaultMaxImpactMultiplier,
		SignificantHigh:     defaultSignificantHigh,
		SignificantLow:      defaultSignificantLow,

		MainCompetitorMinSimilarity: defaultMainCompetitorMinSimilarity,
		MainCompetitorMaxDistanceKm: defaultMainCompetitorMaxDistanceKm,
		MainCompetitorMinStars:      defaultMainCompetitorMinStars,
		UnknownDistanceKm:           defaultUnknownDistanceKm,

		StoreTimeout:       defaultStoreTimeout,
		CompetitorPageSize: defaultCompetitorPageSize,
		HistoryLimit:       defaultHistoryLimit,

		BatchInterval: defaultBatchInterval,
		MaxBatchDays:  defaultMaxBatchDays,
		CacheTTL:      defaultCacheTTL,
	}
}

// ConfigRepository reads and writes per-hotel overrides.
type ConfigRepository interface {
	GetConfig(ctx context.Context, hotelID uint64) (domain.PricingConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.PricingConfig) error
}

// loadConfig overlays the hotel's stored overrides on the service default.
// Lookup failures are logged and the default is used.
func (s *PricingService) loadConfig(ctx context.Context, hotelID uint64) Config {
	cfg := s.defaultCfg
	if s.cfgRepo == nil {
		return cfg
	}

	lookupCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	row, ok, err := s.cfgRepo.GetConfig(lookupCtx, hotelID)
	if err != nil {
		logWarn(ctx, "pricing_config_lookup_failed", "hotel_id", hotelID, "error", err)
		return cfg
	}
	if !ok {
		return cfg
	}

	return applyOverrides(cfg, row)
}

func applyOverrides(cfg Config, row domain.PricingConfig) Config {
	setIfPositive(&cfg.DefaultCompetitorPrice, row.DefaultCompetitorPrice)
	setIfPositive(&cfg.DefaultRoomPrice, row.DefaultRoomPrice)
	setIfPositive(&cfg.MarketAverageFallback, row.MarketAverageFallback)
	setIfPositive(&cfg.MainCompetitorMinSimilarity, row.MainCompetitorMinSimilarity)
	setIfPositive(&cfg.MainCompetitorMaxDistanceKm, row.MainCompetitorMaxDistanceKm)
	setIfPositive(&cfg.MainCompetitorMinStars, row.MainCompetitorMinStars)

	// bounds only move together so min < max always holds
	if row.MinPrice > 0 && row.MaxPrice > row.MinPrice {
		cfg.MinPrice = row.MinPrice
		cfg.MaxPrice = row.MaxPrice
	}

	return cfg
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// PriceBounds returns the effective [min, max] price range for a hotel.
func (s *PricingService) PriceBounds(ctx context.Context, hotelID uint64) (float64, float64) {
	cfg := s.loadConfig(ctx, hotelID)
	return cfg.MinPrice, cfg.MaxPrice
}

// HotelConfig returns the stored overrides for a hotel, if any.
func (s *PricingService) HotelConfig(ctx context.Context, hotelID uint64) (domain.PricingConfig, bool, error) {
	if s.cfgRepo == nil {
		return domain.PricingConfig{}, false, nil
	}
	return s.cfgRepo.GetConfig(ctx, hotelID)
}

// SaveHotelConfig stores overrides for a hotel. Price bounds must be given
// together and in order.
func (s *PricingService) SaveHotelConfig(ctx context.Context, row domain.PricingConfig) error {
	if row.HotelID == 0 {
		return errors.New("hotel id is required")
	}
	if (row.MinPrice > 0 || row.MaxPrice > 0) && row.MaxPrice <= row.MinPrice {
		return fmt.Errorf("invalid price bounds: min %.2f must be below max %.2f", row.MinPrice, row.MaxPrice)
	}
	if s.cfgRepo == nil {
		return errors.New("pricing config store not configured")
	}

	if err := s.cfgRepo.UpsertConfig(ctx, row); err != nil {
		logError(ctx, "pricing_config_save_failed", "hotel_id", row.HotelID, "error", err)
		return err
	}

	// cached analyses were computed under the old settings
	if s.cache != nil {
		if err := s.cache.InvalidateHotel(ctx, row.HotelID); err != nil {
			logWarn(ctx, "pricing_cache_invalidate_failed", "hotel_id", row.HotelID, "error", err)
		}
	}

	logInfo(ctx, "pricing_config_saved", "hotel_id", row.HotelID)
	return nil
}
