package postgres

import (
	"context"
	"errors"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PricingConfigRepository struct {
	DB *gorm.DB
}

var _ pricing.ConfigRepository = (*PricingConfigRepository)(nil)

func NewPricingConfigRepository(db *gorm.DB) *PricingConfigRepository {
	return &PricingConfigRepository{DB: db}
}

func (r *PricingConfigRepository) GetConfig(ctx context.Context, hotelID uint64) (domain.PricingConfig, bool, error) {
	var cfg domain.PricingConfig

	err := r.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PricingConfig{}, false, nil
	}
	if err != nil {
		return domain.PricingConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *PricingConfigRepository) UpsertConfig(ctx context.Context, cfg domain.PricingConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hotel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"default_competitor_price",
				"default_room_price",
				"market_average_fallback",
				"min_price",
				"max_price",
				"main_competitor_min_similarity",
				"main_competitor_max_distance_km",
				"main_competitor_min_stars",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
