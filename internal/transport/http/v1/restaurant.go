package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetRestaurantInfo returns live or fallback restaurant details. Always 200.
// GET /api/restaurant/info
func (h *Handler) GetRestaurantInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.RestaurantInfo(c.Request().Context()))
}
