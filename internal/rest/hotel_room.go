package rest

import (
	"context"
	"errors"
	"hotelPricing/business/inventory"
	"hotelPricing/domain"
	"hotelPricing/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	HotelRoomHandler struct {
		validate         *validator.Validate
		inventoryService InventoryService
	}

	InventoryService interface {
		GetRooms(ctx context.Context, hotelID uint64, date *time.Time) ([]domain.HotelRoom, error)
		ApplyPrice(ctx context.Context, hotelID uint64, update inventory.PriceUpdate) (int64, error)
	}

	ApplyPriceRequest struct {
		RoomType string  `json:"room_type" validate:"required"`
		Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
		Price    float64 `json:"price" validate:"required,gt=0"`
	}
)

func NewHotelRoomHandler(svc InventoryService) *HotelRoomHandler {
	return &HotelRoomHandler{
		validate:         validator.New(),
		inventoryService: svc,
	}
}

// GET /api/v1/hotels/:id/rooms?date=2026-10-15
func (h *HotelRoomHandler) GetRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid hotel id"})
	}

	var date *time.Time
	if raw := c.QueryParam("date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "date must be YYYY-MM-DD"})
		}
		date = &d
	}

	rooms, err := h.inventoryService.GetRooms(c.Request().Context(), hotelID, date)
	if err != nil {
		return c.JSON(statusForInventoryError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rooms))
}

// PUT /api/v1/hotels/:id/rooms/price
func (h *HotelRoomHandler) ApplyPrice(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid hotel id"})
	}

	var req ApplyPriceRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	date, _ := time.Parse(dateLayout, req.Date)

	n, err := h.inventoryService.ApplyPrice(c.Request().Context(), hotelID, inventory.PriceUpdate{
		RoomType: req.RoomType,
		Date:     date,
		Price:    req.Price,
	})
	if err != nil {
		return c.JSON(statusForInventoryError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{"rooms_updated": n}))
}

func statusForInventoryError(err error) int {
	switch {
	case errors.Is(err, domain.ErrHotelNotFound), errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrInvalidPrice), errors.Is(err, inventory.ErrInvalidHotelID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
