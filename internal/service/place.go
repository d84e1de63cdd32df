package service

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/internal/domain"
)

// PlaceStore defines the persistence operations PlaceService depends on.
// Implemented by *repo.PlaceRepo; tests inject a mock.
type PlaceStore interface {
	List(ctx context.Context) ([]domain.Place, error)
	GetByID(ctx context.Context, id string) (domain.Place, error)
	Upsert(ctx context.Context, place domain.Place) (domain.Place, error)
	Search(ctx context.Context, query string) ([]domain.Place, error)
}

// PlaceService implements place search over the local cache, with a static
// sample set as fallback when the cache has no match.
type PlaceService struct {
	store  PlaceStore
	apiKey string // external provider key; empty means samples only
}

// NewPlaceService constructs a PlaceService backed by the provided store.
// apiKey is the OpenTripMap API key; pass "" when none is configured.
func NewPlaceService(store PlaceStore, apiKey string) *PlaceService {
	return &PlaceService{store: store, apiKey: apiKey}
}

// Search looks the query up in the local cache first. On a cache miss it
// falls back to the embedded sample set, filtered by the same
// name-or-address substring match.
//
// TODO: query OpenTripMap when s.apiKey is set instead of serving samples.
func (s *PlaceService) Search(ctx context.Context, query string) ([]domain.Place, error) {
	cached, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service.PlaceService.Search: %w", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}
	return filterPlaces(SamplePlaces(), query), nil
}

// GetByID returns a cached place.
func (s *PlaceService) GetByID(ctx context.Context, id string) (domain.Place, error) {
	result, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.GetByID: %w", err)
	}
	return result, nil
}

// Save validates and caches a user-entered place.
func (s *PlaceService) Save(ctx context.Context, place domain.Place) (domain.Place, error) {
	if place.Name == "" {
		return domain.Place{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if place.Provider == "" {
		place.Provider = domain.ProviderCustom
	}
	result, err := s.store.Upsert(ctx, place)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Save: %w", err)
	}
	return result, nil
}

// filterPlaces returns the places whose name or address contains the query,
// case-insensitively.
func filterPlaces(places []domain.Place, query string) []domain.Place {
	q := strings.ToLower(query)
	matched := []domain.Place{}
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Address), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
