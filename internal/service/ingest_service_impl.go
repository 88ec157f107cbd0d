package service

import (
	"context"
	"fmt"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/repository"
)

type ingestService struct {
	summaries repository.SummaryRepo
	events    repository.AuxEventRepo
	places    repository.PlaceRepo
	cache     *PlaceCache
}

// NewIngestService creates the raw-signal ingestion service.
func NewIngestService(
	summaries repository.SummaryRepo,
	events repository.AuxEventRepo,
	places repository.PlaceRepo,
	cache *PlaceCache,
) IngestService {
	return &ingestService{
		summaries: summaries,
		events:    events,
		places:    places,
		cache:     cache,
	}
}

func (s *ingestService) PutSummary(ctx context.Context, sum *domain.HourlySummary) error {
	if sum.ID == "" {
		return fmt.Errorf("summary id must not be empty")
	}
	if sum.EndTime.Before(sum.StartTime) {
		return fmt.Errorf("summary %s: %w", sum.ID, domain.ErrMalformedInput)
	}
	return s.summaries.Put(ctx, sum)
}

func (s *ingestService) PutEmail(ctx context.Context, e *domain.EmailEvent) error {
	return s.events.PutEmail(ctx, e)
}

func (s *ingestService) PutChat(ctx context.Context, c *domain.ChatEvent) error {
	return s.events.PutChat(ctx, c)
}

func (s *ingestService) PutMeeting(ctx context.Context, m *domain.MeetingEvent) error {
	return s.events.PutMeeting(ctx, m)
}

func (s *ingestService) PutCall(ctx context.Context, c *domain.CallEvent) error {
	return s.events.PutCall(ctx, c)
}

func (s *ingestService) PutCalendarEntry(ctx context.Context, e *domain.CalendarEntry, actual bool) error {
	return s.events.PutCalendarEntry(ctx, e, actual)
}

func (s *ingestService) PutInferredPlace(ctx context.Context, p *domain.InferredPlace) error {
	if err := s.places.UpsertInferred(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *ingestService) PutNearbyPlace(ctx context.Context, p *domain.PlaceAlternative) error {
	if err := s.places.UpsertNearby(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
