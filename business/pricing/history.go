package pricing

import (
	"context"
	"hotelPricing/domain"
)

// EventHistoryRepository looks up past events of the same kind. The result
// is informational; no price computation reads it.
type EventHistoryRepository interface {
	FindSimilar(ctx context.Context, eventType domain.EventType, limit int) ([]domain.EventHistory, error)
}

func (s *PricingService) similarEvents(ctx context.Context, cfg Config, eventType domain.EventType) []domain.EventHistory {
	if s.historyRepo == nil {
		return nil
	}

	queryCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	rows, err := s.historyRepo.FindSimilar(queryCtx, eventType, cfg.HistoryLimit)
	if err != nil {
		logWarn(ctx, "pricing_event_history_unavailable", "event_type", string(eventType), "error", err)
		return nil
	}
	return rows
}
