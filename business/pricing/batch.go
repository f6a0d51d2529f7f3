package pricing

import (
	"context"
	"errors"
	"fmt"
	"hotelPricing/domain"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// RunMultiDayAnalysis analyzes each date in [start, end] in order, pacing
// dates by the configured batch interval. A failing date is recorded and
// skipped; only an unknown hotel aborts. Cancellation stops the batch and
// returns what was done so far.
func (s *PricingService) RunMultiDayAnalysis(
	ctx context.Context,
	start, end time.Time,
	hotelID uint64,
) (*domain.BatchResult, error) {
	ctx, _ = ensureTraceID(ctx)

	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange,
			end.Format(domain.CompetitorDateLayout), start.Format(domain.CompetitorDateLayout))
	}

	cfg := s.loadConfig(ctx, hotelID)
	days := int(end.Sub(start).Hours()/24) + 1
	if cfg.MaxBatchDays > 0 && days > cfg.MaxBatchDays {
		return nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrInvalidDateRange, days, cfg.MaxBatchDays)
	}

	limiter := newBatchLimiter(cfg.BatchInterval)
	result := &domain.BatchResult{
		HotelID:         hotelID,
		StartDate:       start,
		EndDate:         end,
		Recommendations: []domain.PricingRecommendation{},
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := limiter.Wait(ctx); err != nil {
			return result, batchStopped(ctx, err)
		}

		res, err := s.AnalyzeAndRecommendPricing(ctx, day, hotelID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, batchStopped(ctx, ctxErr)
			}
			if errors.Is(err, domain.ErrHotelNotFound) {
				return result, err
			}
			s.recordDateFailure(ctx, result, day, err.Error())
			continue
		}

		if len(res.Recommendations) == 0 && len(res.Failures) > 0 {
			msgs := make([]string, 0, len(res.Failures))
			for _, f := range res.Failures {
				msgs = append(msgs, f.Message)
			}
			s.recordDateFailure(ctx, result, day, strings.Join(msgs, "; "))
			continue
		}

		BatchDatesTotal.WithLabelValues("ok").Inc()
		result.Recommendations = append(result.Recommendations, res.Recommendations...)
	}

	logInfo(ctx, "pricing_multi_day",
		"hotel_id", hotelID,
		"days", days,
		"recommendations", len(result.Recommendations),
		"failed_dates", len(result.FailedDates),
	)

	return result, nil
}

func (s *PricingService) recordDateFailure(ctx context.Context, result *domain.BatchResult, day time.Time, msg string) {
	BatchDatesTotal.WithLabelValues("failed").Inc()
	logWarn(ctx, "pricing_multi_day_date_failed",
		"hotel_id", result.HotelID,
		"date", day.Format(domain.CompetitorDateLayout),
		"error", msg,
	)
	result.FailedDates = append(result.FailedDates, domain.DateFailure{Date: day, Message: msg})
}

// batchStopped wraps the reason a batch stopped early. The limiter refuses a
// wait that would outlast the deadline before the context itself expires, so
// that case is reported as a deadline too.
func batchStopped(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("multi-day analysis cancelled: %w", ctxErr)
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("multi-day analysis cancelled: %w (%v)", context.DeadlineExceeded, err)
	}
	return fmt.Errorf("multi-day analysis cancelled: %w", err)
}

// newBatchLimiter admits one date immediately and then one per interval.
func newBatchLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
