package repo

import (
	"context"
	"fmt"

	"tripdesk/internal/domain"
	"tripdesk/internal/jsonfile"
)

// SettingsRepo persists the single process-wide settings record in its own
// file. Unlike the list collections, the version counter lives directly on
// the record.
type SettingsRepo struct {
	files           *jsonfile.Store
	defaultCurrency string
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided file
// store. defaultCurrency seeds the record the first time it is created.
func NewSettingsRepo(files *jsonfile.Store, defaultCurrency string) *SettingsRepo {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &SettingsRepo{files: files, defaultCurrency: defaultCurrency}
}

// defaults returns the initial settings record.
func (r *SettingsRepo) defaults() domain.Settings {
	return domain.Settings{Version: 1, DefaultCurrency: r.defaultCurrency}
}

// Get returns the settings record, creating it with defaults when the file
// does not exist yet.
func (r *SettingsRepo) Get(_ context.Context) (domain.Settings, error) {
	s, err := jsonfile.Ensure(r.files, settingsFile, r.defaults())
	if err != nil {
		return domain.Settings{}, fmt.Errorf("repo.SettingsRepo.Get: %w", err)
	}
	return s, nil
}

// Update merges the supplied fields over the settings record under one
// serialized mutation and bumps the version counter.
func (r *SettingsRepo) Update(_ context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	updated, err := jsonfile.Update(r.files, settingsFile, func(s domain.Settings, exists bool) (domain.Settings, error) {
		if !exists {
			s = r.defaults()
		}
		if upd.DefaultCurrency != nil {
			s.DefaultCurrency = *upd.DefaultCurrency
		}
		if upd.MapboxToken != nil {
			s.MapboxToken = *upd.MapboxToken
		}
		s.Version++
		return s, nil
	})
	if err != nil {
		return domain.Settings{}, fmt.Errorf("repo.SettingsRepo.Update: %w", err)
	}
	return updated, nil
}
