package domain

import "time"

// PricingConfig is a per-hotel override of the engine defaults. Zero values
// mean "use the process default".
type PricingConfig struct {
	HotelID uint64 `json:"hotel_id" gorm:"column:hotel_id;primaryKey"`

	DefaultCompetitorPrice float64 `json:"default_competitor_price" gorm:"column:default_competitor_price"`
	DefaultRoomPrice       float64 `json:"default_room_price" gorm:"column:default_room_price"`
	MarketAverageFallback  float64 `json:"market_average_fallback" gorm:"column:market_average_fallback"`
	MinPrice               float64 `json:"min_price" gorm:"column:min_price"`
	MaxPrice               float64 `json:"max_price" gorm:"column:max_price"`

	// main competitor gating
	MainCompetitorMinSimilarity float64 `json:"main_competitor_min_similarity" gorm:"column:main_competitor_min_similarity"`
	MainCompetitorMaxDistanceKm float64 `json:"main_competitor_max_distance_km" gorm:"column:main_competitor_max_distance_km"`
	MainCompetitorMinStars      float64 `json:"main_competitor_min_stars" gorm:"column:main_competitor_min_stars"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (PricingConfig) TableName() string {
	return "pricing_configs"
}
