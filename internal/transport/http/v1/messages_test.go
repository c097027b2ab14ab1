package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaot623/gogo/concierge/internal/domain"
	"github.com/xiaot623/gogo/concierge/internal/service"
)

func postMessage(t *testing.T, h *Handler, body domain.SendMessageRequest) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SendMessage(echo.New().NewContext(req, rec)))
	return rec
}

func TestSendMessage(t *testing.T) {
	h, deps := newTestHandler(t)
	session, err := deps.store.CreateChatSession(context.Background(), "Ana")
	require.NoError(t, err)

	rec := postMessage(t, h, domain.SendMessageRequest{SessionID: session.ID, Content: "When is happy hour?"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Exchange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "When is happy hour?", resp.UserMessage.Content)
	assert.False(t, resp.UserMessage.IsAssistant)
	assert.Equal(t, "Happy hour runs 3-6 PM.", resp.AssistantMessage.Content)
	assert.True(t, resp.AssistantMessage.IsAssistant)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "userMessage")
	assert.Contains(t, raw, "assistantMessage")
}

func TestSendMessageProviderFailure(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.llm.err = errors.New("503 from provider")
	session, err := deps.store.CreateChatSession(context.Background(), "Ana")
	require.NoError(t, err)

	rec := postMessage(t, h, domain.SendMessageRequest{SessionID: session.ID, Content: "What are your hours?"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Exchange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ApologyMessage, resp.AssistantMessage.Content)

	stored, err := deps.store.GetMessagesBySession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSendMessageValidation(t *testing.T) {
	h, deps := newTestHandler(t)

	rec := postMessage(t, h, domain.SendMessageRequest{SessionID: 1, Content: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postMessage(t, h, domain.SendMessageRequest{Content: "hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	stored, err := deps.store.GetMessagesBySession(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSendMessageStoreFailure(t *testing.T) {
	h, deps := newTestHandler(t)
	require.NoError(t, deps.store.Close())

	rec := postMessage(t, h, domain.SendMessageRequest{SessionID: 1, Content: "hello"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
