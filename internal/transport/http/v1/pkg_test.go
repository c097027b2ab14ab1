package v1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xiaot623/gogo/concierge/internal/adapter/llm"
	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/config"
	"github.com/xiaot623/gogo/concierge/internal/repository"
	"github.com/xiaot623/gogo/concierge/internal/service"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatCompletionResponse{Model: req.Model, Content: s.reply}, nil
}

type stubPlaces struct {
	details *places.PlaceDetails
	err     error
}

func (s *stubPlaces) GetDetails(ctx context.Context, placeID string) (*places.PlaceDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.details, nil
}

type testDeps struct {
	store  repository.Store
	llm    *stubLLM
	places *stubPlaces
}

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	deps := &testDeps{
		store:  store,
		llm:    &stubLLM{reply: "Happy hour runs 3-6 PM."},
		places: &stubPlaces{err: errors.New("no network in tests")},
	}
	cfg := &config.Config{
		OpenAIModel:     "gpt-4o",
		OpenAIMaxTokens: 500,
		LLMTimeout:      time.Second,
		PlaceID:         "place-1",
	}
	return NewHandler(service.New(store, deps.llm, deps.places, cfg)), deps
}
