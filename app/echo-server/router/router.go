package router

import (
	"hotelPricing/internal/rest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const rangeRoute = "/pricing/recommendations/range"

// SetPricingRoutes registers the recommendation routes. The range route gets
// its own deadline; IsRangeRoute lets the global timeout skip it.
func SetPricingRoutes(api *echo.Group, handler *rest.PricingHandler, rangeTimeout time.Duration) {
	reco := api.Group("/pricing/recommendations")
	reco.GET("", handler.Recommend)
	reco.GET("/range", handler.RecommendRange, echomiddleware.ContextTimeout(rangeTimeout))
}

func IsRangeRoute(c echo.Context) bool {
	return strings.HasSuffix(c.Path(), rangeRoute)
}

func SetHotelRoomRoutes(api *echo.Group, handler *rest.HotelRoomHandler) {
	hotels := api.Group("/hotels")
	hotels.GET("/:id/rooms", handler.GetRooms)
	hotels.PUT("/:id/rooms/price", handler.ApplyPrice)
}

func SetPricingAdminRoutes(api *echo.Group, handler *rest.PricingAdminHandler) {
	admin := api.Group("/admin/pricing")

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}

func SetMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
