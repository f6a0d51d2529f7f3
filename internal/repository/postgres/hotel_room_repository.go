package postgres

import (
	"context"
	"fmt"
	"hotelPricing/business/inventory"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"
	"time"

	"gorm.io/gorm"
)

type HotelRoomRepository struct {
	DB *gorm.DB
}

var (
	_ pricing.HotelRoomRepository   = (*HotelRoomRepository)(nil)
	_ inventory.HotelRoomRepository = (*HotelRoomRepository)(nil)
)

func NewHotelRoomRepository(db *gorm.DB) *HotelRoomRepository {
	return &HotelRoomRepository{DB: db}
}

func (r *HotelRoomRepository) FindRooms(ctx context.Context, hotelID uint64, date *time.Time, roomType string) ([]domain.HotelRoom, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if date != nil {
		q = q.Where("checkin_date = ?", date.Format("2006-01-02"))
	}
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}

	var rooms []domain.HotelRoom
	if err := q.Order("checkin_date, room_type, id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to find hotel rooms: %w", err)
	}

	return rooms, nil
}

func (r *HotelRoomRepository) ListRoomTypes(ctx context.Context, hotelID uint64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var types []string
	err := r.DB.WithContext(ctx).
		Model(&domain.HotelRoom{}).
		Where("hotel_id = ?", hotelID).
		Distinct().
		Order("room_type").
		Pluck("room_type", &types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	return types, nil
}

func (r *HotelRoomRepository) UpdatePrice(ctx context.Context, hotelID uint64, date time.Time, roomType string, price float64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.HotelRoom{}).
		Where("hotel_id = ? AND checkin_date = ? AND room_type = ?", hotelID, date.Format("2006-01-02"), roomType).
		Updates(map[string]interface{}{
			"price":      price,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update room price: %w", result.Error)
	}

	return result.RowsAffected, nil
}
