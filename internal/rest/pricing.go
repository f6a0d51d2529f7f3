package rest

import (
	"context"
	"errors"
	"hotelPricing/business/pricing"
	"hotelPricing/domain"
	"hotelPricing/pkg/logger"
	"hotelPricing/pkg/metrics"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type (
	PricingHandler struct {
		validate       *validator.Validate
		pricingService PricingService
	}

	PricingService interface {
		AnalyzeAndRecommendPricing(ctx context.Context, targetDate time.Time, hotelID uint64) (*domain.AnalysisResult, error)
		RunMultiDayAnalysis(ctx context.Context, start, end time.Time, hotelID uint64) (*domain.BatchResult, error)
	}

	RecommendationQuery struct {
		HotelID uint64 `query:"hotel_id" validate:"required,gt=0"`
		Date    string `query:"date" validate:"required,datetime=2006-01-02"`
	}

	RecommendationRangeQuery struct {
		HotelID uint64 `query:"hotel_id" validate:"required,gt=0"`
		Start   string `query:"start" validate:"required,datetime=2006-01-02"`
		End     string `query:"end" validate:"required,datetime=2006-01-02"`
	}

	// RangeErrorResponse carries the dates finished before a range stopped.
	RangeErrorResponse struct {
		Message string              `json:"message"`
		Partial *domain.BatchResult `json:"partial,omitempty"`
	}
)

func NewPricingHandler(svc PricingService) *PricingHandler {
	return &PricingHandler{
		validate:       validator.New(),
		pricingService: svc,
	}
}

// GET /api/v1/pricing/recommendations?hotel_id=1&date=2026-10-15
func (h *PricingHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.PricingRecommendLatency.Observe(time.Since(start).Seconds())
	}()

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return h.fail(c, "single", http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&q); err != nil {
		return h.fail(c, "single", http.StatusBadRequest, err.Error())
	}

	date, _ := time.Parse(dateLayout, q.Date)

	res, err := h.pricingService.AnalyzeAndRecommendPricing(c.Request().Context(), date, q.HotelID)
	if err != nil {
		status := statusForPricingError(err)
		logger.Error("pricing recommendation failed", "hotel_id", q.HotelID, "date", q.Date, "status", status, "error", err)
		return h.fail(c, "single", status, err.Error())
	}

	metrics.PricingRequests.WithLabelValues("single", "ok").Inc()
	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

// GET /api/v1/pricing/recommendations/range?hotel_id=1&start=2026-10-15&end=2026-10-20
func (h *PricingHandler) RecommendRange(c echo.Context) error {
	var q RecommendationRangeQuery
	if err := c.Bind(&q); err != nil {
		return h.fail(c, "range", http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&q); err != nil {
		return h.fail(c, "range", http.StatusBadRequest, err.Error())
	}

	start, _ := time.Parse(dateLayout, q.Start)
	end, _ := time.Parse(dateLayout, q.End)

	res, err := h.pricingService.RunMultiDayAnalysis(c.Request().Context(), start, end, q.HotelID)
	if err != nil {
		status := statusForPricingError(err)
		logger.Error("multi-day pricing failed", "hotel_id", q.HotelID, "start", q.Start, "end", q.End, "status", status, "error", err)
		if res != nil && (len(res.Recommendations) > 0 || len(res.FailedDates) > 0) {
			metrics.PricingRequests.WithLabelValues("range", http.StatusText(status)).Inc()
			return c.JSON(status, RangeErrorResponse{Message: err.Error(), Partial: res})
		}
		return h.fail(c, "range", status, err.Error())
	}

	metrics.PricingRequests.WithLabelValues("range", "ok").Inc()
	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

func (h *PricingHandler) fail(c echo.Context, kind string, status int, msg string) error {
	metrics.PricingRequests.WithLabelValues(kind, http.StatusText(status)).Inc()
	return c.JSON(status, ResponseError{Message: msg})
}

func statusForPricingError(err error) int {
	var aerr *pricing.AnalysisError
	switch {
	case errors.As(err, &aerr):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
