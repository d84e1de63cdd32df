package repo

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/internal/domain"
	"tripdesk/internal/jsonfile"
)

// PlaceRepo persists the local place cache: points of interest kept around
// so repeat searches do not round-trip to the external provider.
type PlaceRepo struct {
	files *jsonfile.Store
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided file store.
func NewPlaceRepo(files *jsonfile.Store) *PlaceRepo {
	return &PlaceRepo{files: files}
}

// Init makes sure the place cache file exists and is well-formed.
func (r *PlaceRepo) Init(_ context.Context) error {
	if _, err := jsonfile.Ensure(r.files, placesFile, emptyCollection[domain.Place]()); err != nil {
		return fmt.Errorf("repo.PlaceRepo.Init: %w", err)
	}
	return nil
}

// List returns every cached place. An absent cache file yields an empty,
// non-nil slice.
func (r *PlaceRepo) List(_ context.Context) ([]domain.Place, error) {
	c, exists, err := jsonfile.Read[collection[domain.Place]](r.files, placesFile)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: %w", err)
	}
	if !exists || c.Items == nil {
		return []domain.Place{}, nil
	}
	return c.Items, nil
}

// GetByID retrieves a single cached place. Returns domain.ErrNotFound when
// no place with that ID is cached.
func (r *PlaceRepo) GetByID(ctx context.Context, id string) (domain.Place, error) {
	places, err := r.List(ctx)
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.GetByID: %w", err)
	}
	for _, p := range places {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Place{}, fmt.Errorf("repo.PlaceRepo.GetByID: %w", domain.ErrNotFound)
}

// Upsert inserts the place or replaces the cached entry with the same ID,
// under one serialized mutation. Places without an ID get one assigned.
func (r *PlaceRepo) Upsert(_ context.Context, place domain.Place) (domain.Place, error) {
	if place.ID == "" {
		place.ID = newID()
	}

	_, err := jsonfile.Update(r.files, placesFile, func(c collection[domain.Place], exists bool) (collection[domain.Place], error) {
		if !exists {
			c = emptyCollection[domain.Place]()
		}
		replaced := false
		for i := range c.Items {
			if c.Items[i].ID == place.ID {
				c.Items[i] = place
				replaced = true
				break
			}
		}
		if !replaced {
			c.Items = append(c.Items, place)
		}
		c.Version++
		return c, nil
	})
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.Upsert: %w", err)
	}
	return place, nil
}

// Search returns cached places whose name or address contains the query,
// case-insensitively. An empty query matches everything.
func (r *PlaceRepo) Search(ctx context.Context, query string) ([]domain.Place, error) {
	places, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.Search: %w", err)
	}

	q := strings.ToLower(query)
	matched := []domain.Place{}
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Address), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
