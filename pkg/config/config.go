package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pricing  PricingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	// RangeRequestTimeout bounds multi-day requests, which are paced and so
	// run longer than RequestTimeout.
	RangeRequestTimeout time.Duration
	AllowOrigins        []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	PoolSize       int
	MinIdleConns   int
	DialTimeout    time.Duration
	CommandTimeout time.Duration
	CacheTTL       time.Duration
}

// Enabled reports whether a recommendation cache should be wired.
func (r RedisConfig) Enabled() bool {
	return r.RedisHost != ""
}

// PricingConfig holds the process-wide engine defaults. Per-hotel overrides
// live in the pricing_configs table.
type PricingConfig struct {
	Currency               string
	DefaultCompetitorPrice float64
	DefaultRoomPrice       float64
	MarketAverageFallback  float64
	MinPrice               float64
	MaxPrice               float64
	StoreTimeout           time.Duration
	CompetitorPageSize     int
	BatchInterval          time.Duration
	MaxBatchDays           int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Hotel Dynamic Pricing API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:                getEnv("PORT", "8080"),
			RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			RangeRequestTimeout: getEnvDuration("RANGE_REQUEST_TIMEOUT", 2*time.Minute),
			AllowOrigins:        []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "hotel_pricing"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:      getEnv("REDIS_HOST", ""),
			RedisPort:      getEnv("REDIS_PORT", "6379"),
			RedisPassword:  getEnv("REDIS_PASSWORD", ""),
			RedisDB:        getEnvInt("REDIS_DB", 0),
			PoolSize:       getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns:   getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:    getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			CommandTimeout: getEnvDuration("REDIS_COMMAND_TIMEOUT", time.Second),
			CacheTTL:       getEnvDuration("PRICING_CACHE_TTL", 10*time.Minute),
		},
		Pricing: PricingConfig{
			Currency:               getEnv("PRICING_CURRENCY", "TWD"),
			DefaultCompetitorPrice: getEnvFloat("PRICING_DEFAULT_COMPETITOR_PRICE", 150),
			DefaultRoomPrice:       getEnvFloat("PRICING_DEFAULT_ROOM_PRICE", 1928.21),
			MarketAverageFallback:  getEnvFloat("PRICING_MARKET_AVERAGE_FALLBACK", 1928.21),
			MinPrice:               getEnvFloat("PRICING_MIN_PRICE", 500),
			MaxPrice:               getEnvFloat("PRICING_MAX_PRICE", 5000),
			StoreTimeout:           getEnvDuration("PRICING_STORE_TIMEOUT", 5*time.Second),
			CompetitorPageSize:     getEnvInt("PRICING_COMPETITOR_PAGE_SIZE", 100),
			BatchInterval:          getEnvDuration("PRICING_BATCH_INTERVAL", 2*time.Second),
			MaxBatchDays:           getEnvInt("PRICING_MAX_BATCH_DAYS", 31),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Pricing.MinPrice <= 0 || cfg.Pricing.MaxPrice <= cfg.Pricing.MinPrice {
		return nil, errors.New("invalid pricing bounds")
	}

	// a full-length range must fit in its request deadline
	if n := cfg.Pricing.MaxBatchDays; n > 1 {
		pacing := time.Duration(n-1) * cfg.Pricing.BatchInterval
		if pacing >= cfg.Server.RangeRequestTimeout {
			return nil, fmt.Errorf("batch pacing of %s for %d days exceeds the range request timeout of %s",
				pacing, n, cfg.Server.RangeRequestTimeout)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
