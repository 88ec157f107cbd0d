package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/synthesis"
)

type insightService struct {
	days         DayService
	archive      repository.ArchiveRepo
	baselineDays int
	cfg          synthesis.Config
	now          func() time.Time
	observer     UseCaseObserver
}

// NewInsightService creates the pattern analysis service. baselineDays bounds
// how far back the weekday baseline reaches.
func NewInsightService(
	days DayService,
	archive repository.ArchiveRepo,
	baselineDays int,
	cfg synthesis.Config,
	observers ...UseCaseObserver,
) InsightService {
	return &insightService{
		days:         days,
		archive:      archive,
		baselineDays: baselineDays,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *insightService) Analyze(ctx context.Context, date time.Time) (insight *contract.PatternInsight, err error) {
	startedAt := s.now()
	dayStart := midnightUTC(date)
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze-patterns",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"day": dayStart.Format("2006-01-02")},
		})
	}()

	// Re-synthesize the day under analysis so the insight reflects the
	// latest ingested signal, not a stale archive row.
	today, err := s.days.BuildDay(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	history, err := s.archive.ListRecent(ctx, dayStart, s.baselineDays)
	if err != nil {
		return nil, fmt.Errorf("loading baseline: %w", err)
	}

	result := synthesis.AnalyzePatterns(*today, history, s.now(), s.cfg)
	return &result, nil
}
