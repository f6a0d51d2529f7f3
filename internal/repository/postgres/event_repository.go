package postgres

import (
	"context"
	"fmt"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"
	"time"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

var _ pricing.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.Event
	err := r.DB.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Order("id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}

	return events, nil
}

type EventHistoryRepository struct {
	DB *gorm.DB
}

var _ pricing.EventHistoryRepository = (*EventHistoryRepository)(nil)

func NewEventHistoryRepository(db *gorm.DB) *EventHistoryRepository {
	return &EventHistoryRepository{DB: db}
}

// FindSimilar returns the most recent past events of the same type.
func (r *EventHistoryRepository) FindSimilar(ctx context.Context, eventType domain.EventType, limit int) ([]domain.EventHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.EventHistory
	err := r.DB.WithContext(ctx).
		Where("event_type = ?", string(eventType)).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find event history: %w", err)
	}

	return rows, nil
}
