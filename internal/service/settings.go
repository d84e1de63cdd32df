package service

import (
	"context"
	"fmt"

	"tripdesk/internal/domain"
)

// SettingsStore defines the persistence operations SettingsService depends
// on. Implemented by *repo.SettingsRepo; tests inject a mock.
type SettingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

// SettingsService implements business logic for the process-wide settings
// record.
type SettingsService struct {
	store SettingsStore
}

// NewSettingsService constructs a SettingsService backed by the provided
// store.
func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the settings record, self-initializing on first access.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	result, err := s.store.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("service.SettingsService.Get: %w", err)
	}
	return result, nil
}

// Update validates and merges the supplied fields over the settings record.
func (s *SettingsService) Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	if upd.DefaultCurrency != nil && len(*upd.DefaultCurrency) != 3 {
		return domain.Settings{}, fmt.Errorf("%w: defaultCurrency must be a 3-letter code", domain.ErrValidation)
	}
	result, err := s.store.Update(ctx, upd)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("service.SettingsService.Update: %w", err)
	}
	return result, nil
}
