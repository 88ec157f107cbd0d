package service

import (
	"context"
	"testing"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*PlaceCache, repository.PlaceRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlaceRepo(database)
	return NewPlaceCache(repo), repo
}

func TestPlaceCache_SnapshotReturnsIndependentCopies(t *testing.T) {
	cache, repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateSaved(ctx, testutil.NewTestSavedPlace("Home", 52.52, 13.405)))
	require.NoError(t, repo.UpsertNearby(ctx, &domain.PlaceAlternative{
		ExternalID: "osm-1", Name: "Cafe", Types: []string{"cafe"}, Lat: 52.521, Lon: 13.406,
	}))

	snap, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Saved, 1)
	require.Len(t, snap.Nearby, 1)

	// Mutating a snapshot, including nested slices, must not leak into the
	// cache. A later pass reading a corrupted Types slice once produced
	// wrong disambiguation candidates.
	snap.Saved[0].Label = "corrupted"
	snap.Nearby[0].Types[0] = "corrupted"
	snap.Nearby = append(snap.Nearby[:0], domain.PlaceAlternative{})

	again, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Home", again.Saved[0].Label)
	assert.Equal(t, []string{"cafe"}, again.Nearby[0].Types)
	assert.Equal(t, "Cafe", again.Nearby[0].Name)
}

func TestPlaceCache_ServesFromMemoryUntilInvalidated(t *testing.T) {
	cache, repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateSaved(ctx, testutil.NewTestSavedPlace("Home", 52.52, 13.405)))
	first, err := cache.Saved(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write bypassing the cache is invisible until invalidation.
	require.NoError(t, repo.CreateSaved(ctx, testutil.NewTestSavedPlace("Office", 52.53, 13.39)))
	stale, err := cache.Saved(ctx)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	cache.Invalidate()
	fresh, err := cache.Saved(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
