package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// CreateSession opens a chat session.
// POST /api/chat/session
func (h *Handler) CreateSession(c echo.Context) error {
	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session, err := h.service.CreateSession(c.Request().Context(), req.DisplayName())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// GetSession returns one session.
// GET /api/chat/session/:id
func (h *Handler) GetSession(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	session, err := h.service.GetSession(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// GetSessionMessages retrieves messages for a session, oldest first.
// GET /api/chat/session/:id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	messages, err := h.service.ListMessages(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// ListSessions lists sessions opened under a display name.
// GET /api/chat/sessions?name=
func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.service.SessionsByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, sessions)
}
