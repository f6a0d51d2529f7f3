package rest

import (
	"context"
	"hotelPricing/domain"
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type PricingConfigService interface {
	HotelConfig(ctx context.Context, hotelID uint64) (domain.PricingConfig, bool, error)
	SaveHotelConfig(ctx context.Context, row domain.PricingConfig) error
}

type PricingAdminHandler struct {
	cfgService PricingConfigService
}

func NewPricingAdminHandler(cfgService PricingConfigService) *PricingAdminHandler {
	return &PricingAdminHandler{
		cfgService: cfgService,
	}
}

// GET /api/v1/admin/pricing/config?hotel_id=1
func (h *PricingAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	hotelID, err := strconv.ParseUint(c.QueryParam("hotel_id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "hotel_id is required",
		})
	}

	cfg, ok, err := h.cfgService.HotelConfig(ctx, hotelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/pricing/config
func (h *PricingAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.PricingConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body",
		})
	}

	if err := h.cfgService.SaveHotelConfig(ctx, body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(body))
}
