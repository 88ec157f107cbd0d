package service

import (
	"context"
	"sync"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/synthesis"
)

// PlaceCache holds the place knowledge for the lifetime of a process so a
// synthesis pass does not re-query three tables per day. Reads return deep
// copies: callers may freely mutate what they get back without corrupting
// later passes.
type PlaceCache struct {
	repo repository.PlaceRepo

	mu       sync.Mutex
	loaded   bool
	saved    []domain.SavedPlace
	inferred []domain.InferredPlace
	nearby   []domain.PlaceAlternative
}

// NewPlaceCache creates a cache over the given place repository.
func NewPlaceCache(repo repository.PlaceRepo) *PlaceCache {
	return &PlaceCache{repo: repo}
}

// Snapshot returns a place set for one synthesis pass. The Previous field is
// left for the caller to fill from history.
func (c *PlaceCache) Snapshot(ctx context.Context) (synthesis.PlaceSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return synthesis.PlaceSet{}, err
	}
	return synthesis.PlaceSet{
		Saved:    copySaved(c.saved),
		Inferred: copyInferred(c.inferred),
		Nearby:   copyNearby(c.nearby),
	}, nil
}

// Saved returns a copy of the cached saved places.
func (c *PlaceCache) Saved(ctx context.Context) ([]domain.SavedPlace, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return copySaved(c.saved), nil
}

// Inferred returns a copy of the cached inferred places.
func (c *PlaceCache) Inferred(ctx context.Context) ([]domain.InferredPlace, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return copyInferred(c.inferred), nil
}

// Invalidate drops the cached state; the next read reloads from the
// repository. Called after any place write.
func (c *PlaceCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.saved = nil
	c.inferred = nil
	c.nearby = nil
}

// ensureLoaded populates the cache. Callers must hold c.mu.
func (c *PlaceCache) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	saved, err := c.repo.ListSaved(ctx)
	if err != nil {
		return err
	}
	inferred, err := c.repo.ListInferred(ctx)
	if err != nil {
		return err
	}
	nearby, err := c.repo.ListNearby(ctx)
	if err != nil {
		return err
	}
	c.saved = saved
	c.inferred = inferred
	c.nearby = nearby
	c.loaded = true
	return nil
}

func copySaved(in []domain.SavedPlace) []domain.SavedPlace {
	out := make([]domain.SavedPlace, len(in))
	copy(out, in)
	return out
}

func copyInferred(in []domain.InferredPlace) []domain.InferredPlace {
	out := make([]domain.InferredPlace, len(in))
	copy(out, in)
	return out
}

func copyNearby(in []domain.PlaceAlternative) []domain.PlaceAlternative {
	out := make([]domain.PlaceAlternative, len(in))
	for i, p := range in {
		out[i] = p
		if p.Types != nil {
			out[i].Types = append([]string(nil), p.Types...)
		}
	}
	return out
}
