// Package service implements the concierge operations on top of the store
// and the external providers.
package service

import (
	"context"

	"github.com/xiaot623/gogo/concierge/internal/adapter/llm"
	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/config"
	"github.com/xiaot623/gogo/concierge/internal/repository"
)

// PlacesClient looks up place details.
type PlacesClient interface {
	GetDetails(ctx context.Context, placeID string) (*places.PlaceDetails, error)
}

// Service holds no state of its own besides its collaborators.
type Service struct {
	store        repository.Store
	llmClient    llm.LLMClient
	placesClient PlacesClient
	config       *config.Config
}

func New(store repository.Store, llmClient llm.LLMClient, placesClient PlacesClient, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		llmClient:    llmClient,
		placesClient: placesClient,
		config:       cfg,
	}
}
