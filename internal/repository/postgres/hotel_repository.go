package postgres

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	DB *gorm.DB
}

var _ pricing.HotelRepository = (*HotelRepository)(nil)

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{
		DB: db,
	}
}

func (r *HotelRepository) FindByID(ctx context.Context, id uint64) (domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hotel{}, fmt.Errorf("context error: %w", err)
	}

	var hotel domain.Hotel

	err := r.DB.WithContext(ctx).First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Hotel{}, fmt.Errorf("%w: id %d", domain.ErrHotelNotFound, id)
		}
		return domain.Hotel{}, fmt.Errorf("failed to find hotel: %w", err)
	}

	return hotel, nil
}
