package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/repository"
)

type placeService struct {
	repo     repository.PlaceRepo
	cache    *PlaceCache
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewPlaceService creates the place management service. Writes go through
// the repository and invalidate the cache.
func NewPlaceService(
	repo repository.PlaceRepo,
	cache *PlaceCache,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlaceService {
	return &placeService{
		repo:     repo,
		cache:    cache,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *placeService) SavePlace(ctx context.Context, p *domain.SavedPlace) error {
	if p.Label == "" {
		return fmt.Errorf("place label must not be empty")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Category == "" {
		p.Category = domain.PlaceUnknown
	}
	if p.RadiusM <= 0 {
		p.RadiusM = 100
	}
	if err := s.repo.CreateSaved(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *placeService) UpdatePlace(ctx context.Context, p *domain.SavedPlace) error {
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateSaved(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *placeService) ListSaved(ctx context.Context) ([]domain.SavedPlace, error) {
	return s.cache.Saved(ctx)
}

func (s *placeService) ListInferred(ctx context.Context) ([]domain.InferredPlace, error) {
	return s.cache.Inferred(ctx)
}

func (s *placeService) PromoteAlternative(ctx context.Context, alt domain.PlaceAlternative, label string, category domain.PlaceCategory, radiusM float64) (place *domain.SavedPlace, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "promote-alternative",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"external_id": alt.ExternalID, "label": label},
		})
	}()

	if label == "" {
		label = alt.Name
	}
	if radiusM <= 0 {
		radiusM = 100
	}
	now := time.Now().UTC()
	place = &domain.SavedPlace{
		ID:        uuid.New().String(),
		Label:     label,
		Category:  category,
		Lat:       alt.Lat,
		Lon:       alt.Lon,
		RadiusM:   radiusM,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlaces := repository.NewSQLitePlaceRepo(tx)
		if err := txPlaces.CreateSaved(ctx, place); err != nil {
			return fmt.Errorf("promoting alternative: %w", err)
		}
		// Keep the nearby record so future unknown blocks still list it,
		// but refresh its name to the user's chosen label.
		refreshed := alt
		refreshed.Name = label
		if err := txPlaces.UpsertNearby(ctx, &refreshed); err != nil {
			return fmt.Errorf("refreshing nearby record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return place, nil
}
