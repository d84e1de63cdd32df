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

func newPlaceRepo(t *testing.T) *repo.PlaceRepo {
	t.Helper()
	r := repo.NewPlaceRepo(jsonfile.NewStore(t.TempDir()))
	require.NoError(t, r.Init(context.Background()))
	return r
}

func placeFixture(name, address string) domain.Place {
	return domain.Place{
		Name:     name,
		Lat:      21.0285,
		Lng:      105.8542,
		Address:  address,
		Provider: domain.ProviderCustom,
	}
}

func TestPlaceRepo_Upsert_AssignsID(t *testing.T) {
	r := newPlaceRepo(t)
	ctx := context.Background()

	got, err := r.Upsert(ctx, placeFixture("Hoan Kiem Lake", "Hanoi, Vietnam"))

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)

	stored, err := r.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoan Kiem Lake", stored.Name)
}

func TestPlaceRepo_Upsert_ReplacesExisting(t *testing.T) {
	r := newPlaceRepo(t)
	ctx := context.Background()

	created, err := r.Upsert(ctx, placeFixture("Old Quarter", "Hanoi"))
	require.NoError(t, err)

	created.Address = "Hanoi, Vietnam"
	_, err = r.Upsert(ctx, created)
	require.NoError(t, err)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "upsert by existing ID must not duplicate")
	assert.Equal(t, "Hanoi, Vietnam", all[0].Address)
}

func TestPlaceRepo_GetByID_NotFound(t *testing.T) {
	r := newPlaceRepo(t)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceRepo_Search_MatchesNameAndAddress(t *testing.T) {
	r := newPlaceRepo(t)
	ctx := context.Background()

	_, err := r.Upsert(ctx, placeFixture("Hoan Kiem Lake", "Hanoi, Vietnam"))
	require.NoError(t, err)
	_, err = r.Upsert(ctx, placeFixture("Fansipan Peak", "Sapa, Vietnam"))
	require.NoError(t, err)

	byName, err := r.Search(ctx, "fansipan")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Fansipan Peak", byName[0].Name)

	byAddress, err := r.Search(ctx, "hanoi")
	require.NoError(t, err)
	require.Len(t, byAddress, 1)
	assert.Equal(t, "Hoan Kiem Lake", byAddress[0].Name)

	none, err := r.Search(ctx, "tokyo")
	require.NoError(t, err)
	assert.Empty(t, none)
}
