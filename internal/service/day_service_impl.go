package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/synthesis"
)

type dayService struct {
	summaries repository.SummaryRepo
	events    repository.AuxEventRepo
	archive   repository.ArchiveRepo
	places    *PlaceCache
	cfg       synthesis.Config
	now       func() time.Time
	observer  UseCaseObserver
}

// NewDayService creates the day synthesis service.
func NewDayService(
	summaries repository.SummaryRepo,
	events repository.AuxEventRepo,
	archive repository.ArchiveRepo,
	places *PlaceCache,
	cfg synthesis.Config,
	observers ...UseCaseObserver,
) DayService {
	return &dayService{
		summaries: summaries,
		events:    events,
		archive:   archive,
		places:    places,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *dayService) BuildDay(ctx context.Context, date time.Time) (day *contract.DayResult, err error) {
	startedAt := s.now()
	dayStart := midnightUTC(date)
	fields := map[string]any{"day": dayStart.Format("2006-01-02")}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-day",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	dayEnd := dayStart.AddDate(0, 0, 1)

	sums, err := s.summaries.ListRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("loading summaries: %w", err)
	}
	aux, err := s.events.ListRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("loading auxiliary events: %w", err)
	}
	places, err := s.places.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading places: %w", err)
	}
	places.Previous, err = s.archive.LastLabeledBlock(ctx, dayStart)
	if err != nil {
		return nil, fmt.Errorf("loading carry-forward anchor: %w", err)
	}

	blocks, err := synthesis.BuildLocationBlocks(sums, places, s.cfg)
	if err != nil {
		return nil, err
	}
	timeline, err := synthesis.BuildTimeline(blocks, aux, s.now(), s.cfg)
	if err != nil {
		return nil, err
	}
	fields["blocks"] = len(blocks)
	fields["events"] = len(timeline)

	result := contract.DayResult{Date: dayStart, Blocks: blocks, Events: timeline}
	if err := s.archive.SaveDay(ctx, result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *dayService) GetDay(ctx context.Context, date time.Time) (*contract.DayResult, error) {
	day, err := s.archive.GetDay(ctx, midnightUTC(date))
	if errors.Is(err, repository.ErrNotFound) {
		return s.BuildDay(ctx, date)
	}
	if err != nil {
		return nil, err
	}
	return day, nil
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
