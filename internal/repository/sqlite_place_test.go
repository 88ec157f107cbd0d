package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRepo_CreateAndGetSaved(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	p := testutil.NewTestSavedPlace("Home", 52.52, 13.405,
		testutil.WithPlaceCategory(domain.PlaceHome),
		testutil.WithRadius(150))
	require.NoError(t, repo.CreateSaved(ctx, p))

	got, err := repo.GetSaved(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", got.Label)
	assert.Equal(t, domain.PlaceHome, got.Category)
	assert.InDelta(t, 150, got.RadiusM, 1e-9)
}

func TestPlaceRepo_GetSaved_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	_, err := repo.GetSaved(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceRepo_UpdateSaved(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	p := testutil.NewTestSavedPlace("Gym", 52.53, 13.41)
	require.NoError(t, repo.CreateSaved(ctx, p))

	p.Label = "Boulder Hall"
	p.Category = domain.PlaceGym
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.UpdateSaved(ctx, p))

	got, err := repo.GetSaved(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boulder Hall", got.Label)
	assert.Equal(t, domain.PlaceGym, got.Category)
}

func TestPlaceRepo_UpdateSaved_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	p := testutil.NewTestSavedPlace("Ghost", 0.1, 0.1)
	err := repo.UpdateSaved(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceRepo_ListSaved_SortedByLabel(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateSaved(ctx, testutil.NewTestSavedPlace("Office", 52.53, 13.39)))
	require.NoError(t, repo.CreateSaved(ctx, testutil.NewTestSavedPlace("Home", 52.52, 13.405)))

	got, err := repo.ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Home", got[0].Label)
	assert.Equal(t, "Office", got[1].Label)
}

func TestPlaceRepo_UpsertInferred(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	p := testutil.NewTestInferredPlace("Work", domain.InferredWork, 52.53, 13.39)
	require.NoError(t, repo.UpsertInferred(ctx, p))

	p.Confidence = 0.95
	require.NoError(t, repo.UpsertInferred(ctx, p))

	got, err := repo.ListInferred(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.InferredWork, got[0].Kind)
	assert.InDelta(t, 0.95, got[0].Confidence, 1e-9)
}

func TestPlaceRepo_NearbyRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlaceRepo(db)
	ctx := context.Background()

	p := &domain.PlaceAlternative{
		ExternalID: "osm-123",
		Name:       "Cafe Aroma",
		Vicinity:   "Torstrasse 12",
		Types:      []string{"cafe", "food"},
		Lat:        52.521,
		Lon:        13.406,
	}
	require.NoError(t, repo.UpsertNearby(ctx, p))

	got, err := repo.ListNearby(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cafe Aroma", got[0].Name)
	assert.Equal(t, []string{"cafe", "food"}, got[0].Types)
}
