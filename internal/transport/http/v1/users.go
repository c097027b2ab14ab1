package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// CreateUser registers a user.
// POST /api/users
func (h *Handler) CreateUser(c echo.Context) error {
	var req domain.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user, err := h.service.CreateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// GetUser returns a user by id.
// GET /api/users/:id
func (h *Handler) GetUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
