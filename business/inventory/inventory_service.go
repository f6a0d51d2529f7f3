package inventory

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"hotelPricing/pkg/logger"
	"strings"
	"time"
)

var (
	ErrInvalidHotelID = errors.New("invalid hotel id")
	ErrInvalidPrice   = errors.New("invalid price")
)

// HotelRoomRepository contract interface
type HotelRoomRepository interface {
	FindRooms(ctx context.Context, hotelID uint64, date *time.Time, roomType string) ([]domain.HotelRoom, error)
	UpdatePrice(ctx context.Context, hotelID uint64, date time.Time, roomType string, price float64) (int64, error)
}

type HotelRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Hotel, error)
}

// PriceBounds reports the price range a hotel may charge.
type PriceBounds interface {
	PriceBounds(ctx context.Context, hotelID uint64) (float64, float64)
}

// CacheInvalidator drops cached analyses once a price changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, hotelID uint64, date time.Time) error
}

type PriceUpdate struct {
	RoomType string
	Date     time.Time
	Price    float64
}

type inventoryService struct {
	hotelRepo HotelRepository
	roomRepo  HotelRoomRepository
	bounds    PriceBounds
	cache     CacheInvalidator
}

func NewInventoryService(hotelRepo HotelRepository, roomRepo HotelRoomRepository, bounds PriceBounds, cache CacheInvalidator) *inventoryService {
	return &inventoryService{
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
		bounds:    bounds,
		cache:     cache,
	}
}

// GetRooms lists the hotel's rooms, optionally for a single check-in date.
func (s *inventoryService) GetRooms(ctx context.Context, hotelID uint64, date *time.Time) ([]domain.HotelRoom, error) {
	if hotelID == 0 {
		logger.Error("invalid hotel id")
		return nil, ErrInvalidHotelID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get rooms")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.hotelRepo.FindByID(ctx, hotelID); err != nil {
		logger.Error("failed to find hotel", "hotel_id", hotelID, "error", err)
		return nil, err
	}

	rooms, err := s.roomRepo.FindRooms(ctx, hotelID, date, "")
	if err != nil {
		logger.Error("failed to find rooms", "hotel_id", hotelID, "error", err)
		return nil, err
	}

	return rooms, nil
}

// ApplyPrice writes an accepted price to the room inventory. It returns the
// number of rooms updated.
func (s *inventoryService) ApplyPrice(ctx context.Context, hotelID uint64, update PriceUpdate) (int64, error) {
	if hotelID == 0 {
		logger.Error("invalid hotel id")
		return 0, ErrInvalidHotelID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when apply price")
		return 0, fmt.Errorf("context error: %w", err)
	}

	// Validation
	update.RoomType = strings.TrimSpace(update.RoomType)
	if update.RoomType == "" {
		logger.Error("invalid price update: room type is required")
		return 0, errors.New("room type is required")
	}

	if update.Date.IsZero() {
		logger.Error("invalid price update: date is required")
		return 0, errors.New("date is required")
	}

	minPrice, maxPrice := s.bounds.PriceBounds(ctx, hotelID)
	if update.Price < minPrice || update.Price > maxPrice {
		logger.Warn("price out of bounds", "hotel_id", hotelID, "price", update.Price, "min", minPrice, "max", maxPrice)
		return 0, fmt.Errorf("%w: %.2f is outside [%.2f, %.2f]", ErrInvalidPrice, update.Price, minPrice, maxPrice)
	}

	if _, err := s.hotelRepo.FindByID(ctx, hotelID); err != nil {
		logger.Error("failed to find hotel", "hotel_id", hotelID, "error", err)
		return 0, err
	}

	n, err := s.roomRepo.UpdatePrice(ctx, hotelID, update.Date, update.RoomType, update.Price)
	if err != nil {
		logger.Error("failed to update room price", "hotel_id", hotelID, "room_type", update.RoomType, "error", err)
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrRoomNotFound
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, hotelID, update.Date); err != nil {
			logger.Warn("failed to invalidate recommendation cache", "hotel_id", hotelID, "error", err)
		}
	}

	logger.Info("room price applied",
		"hotel_id", hotelID,
		"room_type", update.RoomType,
		"date", update.Date.Format("2006-01-02"),
		"price", update.Price,
		"rooms", n,
	)

	return n, nil
}
