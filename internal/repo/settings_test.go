package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/domain"
	"tripdesk/internal/jsonfile"
	"tripdesk/internal/repo"
)

func TestSettingsRepo_Get_CreatesDefaults(t *testing.T) {
	r := repo.NewSettingsRepo(jsonfile.NewStore(t.TempDir()), "EUR")

	got, err := r.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "EUR", got.DefaultCurrency)
	assert.Empty(t, got.MapboxToken)
}

func TestSettingsRepo_Update_MergesAndBumpsVersion(t *testing.T) {
	r := repo.NewSettingsRepo(jsonfile.NewStore(t.TempDir()), "USD")
	ctx := context.Background()

	initial, err := r.Get(ctx)
	require.NoError(t, err)

	token := "pk.abc123"
	got, err := r.Update(ctx, domain.SettingsUpdate{MapboxToken: &token})

	require.NoError(t, err)
	assert.Equal(t, initial.Version+1, got.Version)
	assert.Equal(t, "pk.abc123", got.MapboxToken)
	assert.Equal(t, "USD", got.DefaultCurrency, "unset fields keep their values")

	stored, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestSettingsRepo_Update_OnMissingFile(t *testing.T) {
	r := repo.NewSettingsRepo(jsonfile.NewStore(t.TempDir()), "USD")

	currency := "VND"
	got, err := r.Update(context.Background(), domain.SettingsUpdate{DefaultCurrency: &currency})

	require.NoError(t, err)
	assert.Equal(t, "VND", got.DefaultCurrency)
	assert.Equal(t, 2, got.Version, "defaults start at 1, the write bumps to 2")
}
