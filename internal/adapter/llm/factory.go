package llm

import (
	"log/slog"

	"github.com/xiaot623/gogo/concierge/internal/config"
)

// NewLLMClient creates an LLM client based on cfg.Mode.
// If Mode is MOCK, returns a MockClient; otherwise returns a real Client.
func NewLLMClient(cfg *config.Config) LLMClient {
	if cfg.Mode == config.ModeMock {
		slog.Info("APP_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMTimeout)
}
