package postgres

import (
	"context"
	"fmt"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"

	"gorm.io/gorm"
)

type CompetitorRepository struct {
	DB *gorm.DB
}

var _ pricing.CompetitorRepository = (*CompetitorRepository)(nil)

func NewCompetitorRepository(db *gorm.DB) *CompetitorRepository {
	return &CompetitorRepository{DB: db}
}

// List returns up to limit competitor listings in id order.
func (r *CompetitorRepository) List(ctx context.Context, limit int) ([]domain.CompetitorHotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []domain.CompetitorHotel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list competitor hotels: %w", err)
	}

	return rows, nil
}
