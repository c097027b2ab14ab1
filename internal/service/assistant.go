package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/xiaot623/gogo/concierge/internal/adapter/llm"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

var errEmptyCompletion = errors.New("empty completion")

// Respond stores the visitor's message, asks the provider for a reply and
// stores that reply. Provider failures are replaced by ApologyMessage; only
// validation and storage errors are returned.
func (s *Service) Respond(ctx context.Context, sessionID int64, userText string) (*domain.Exchange, error) {
	if sessionID <= 0 {
		return nil, domain.NewValidationError("sessionId", "is required")
	}
	if strings.TrimSpace(userText) == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}

	userMsg, err := s.store.CreateMessage(ctx, sessionID, userText, false)
	if err != nil {
		return nil, err
	}

	reply, err := s.complete(ctx, userText)
	if err != nil {
		slog.WarnContext(ctx, "assistant reply replaced by apology",
			"session_id", sessionID,
			"error", &domain.ProviderError{Provider: "completion", Err: err})
		reply = ApologyMessage
	}

	assistantMsg, err := s.store.CreateMessage(ctx, sessionID, reply, true)
	if err != nil {
		return nil, err
	}

	return &domain.Exchange{UserMessage: *userMsg, AssistantMessage: *assistantMsg}, nil
}

// complete makes one provider call with the fixed system instruction and the
// single user turn. Earlier turns of the session are not sent.
func (s *Service) complete(ctx context.Context, userText string) (string, error) {
	if s.config.LLMTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.LLMTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.llmClient.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model: s.config.OpenAIModel,
		Messages: []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: RestaurantKnowledge},
			{Role: llm.RoleUser, Content: userText},
		},
		Temperature: s.config.OpenAITemperature,
		MaxTokens:   s.config.OpenAIMaxTokens,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", errEmptyCompletion
	}

	slog.DebugContext(ctx, "completion done",
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
		"duration_ms", time.Since(start).Milliseconds())
	return resp.Content, nil
}
