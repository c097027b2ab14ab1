package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xiaot623/gogo/concierge/internal/adapter/llm"
	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/config"
	"github.com/xiaot623/gogo/concierge/internal/domain"
	"github.com/xiaot623/gogo/concierge/internal/repository"
)

type fakeLLM struct {
	requests []*llm.ChatCompletionRequest
	reply    string
	err      error
}

func (f *fakeLLM) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatCompletionResponse{Model: req.Model, Content: f.reply}, nil
}

type fakePlaces struct {
	details *places.PlaceDetails
	err     error
	calls   int
}

func (f *fakePlaces) GetDetails(ctx context.Context, placeID string) (*places.PlaceDetails, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

// failingStore fails CreateMessage once failAfter successful writes happened.
type failingStore struct {
	repository.Store
	failAfter int
	writes    int
}

var errDiskFull = errors.New("disk full")

func (f *failingStore) CreateMessage(ctx context.Context, sessionID int64, content string, isAssistant bool) (*domain.Message, error) {
	if f.writes >= f.failAfter {
		return nil, &domain.StorageError{Op: "create message", Err: errDiskFull}
	}
	f.writes++
	return f.Store.CreateMessage(ctx, sessionID, content, isAssistant)
}

func testConfig() *config.Config {
	return &config.Config{
		OpenAIModel:       "gpt-4o",
		OpenAITemperature: 0.7,
		OpenAIMaxTokens:   500,
		LLMTimeout:        time.Second,
		PlaceID:           "place-1",
	}
}

func newTestService(t *testing.T) (*Service, repository.Store, *fakeLLM, *fakePlaces) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	model := &fakeLLM{reply: "We are open from 11 AM."}
	lookup := &fakePlaces{}
	return New(store, model, lookup, testConfig()), store, model, lookup
}
