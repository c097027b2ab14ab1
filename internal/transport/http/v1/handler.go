// Package v1 provides HTTP handlers for the concierge API.
package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xiaot623/gogo/concierge/internal/domain"
	"github.com/xiaot623/gogo/concierge/internal/service"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Chat API
	api.POST("/chat/session", h.CreateSession)
	api.GET("/chat/session/:id", h.GetSession)
	api.GET("/chat/session/:id/messages", h.GetSessionMessages)
	api.GET("/chat/sessions", h.ListSessions)
	api.POST("/chat/message", h.SendMessage)

	// Restaurant API
	api.GET("/restaurant/info", h.GetRestaurantInfo)

	// User API
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}

// errorJSON writes err with the status matching its domain type.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsConflict(err):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
