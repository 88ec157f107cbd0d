package service

import (
	"context"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
)

// DayService synthesizes and serves whole days.
type DayService interface {
	// BuildDay runs a full synthesis pass for the given calendar day and
	// archives the result. Re-running on the same inputs is idempotent.
	BuildDay(ctx context.Context, date time.Time) (*contract.DayResult, error)

	// GetDay returns the archived day, building it first when absent.
	GetDay(ctx context.Context, date time.Time) (*contract.DayResult, error)
}

// InsightService derives pattern insights from archived history.
type InsightService interface {
	Analyze(ctx context.Context, date time.Time) (*contract.PatternInsight, error)
}

// PlaceService manages the place knowledge used during synthesis.
type PlaceService interface {
	SavePlace(ctx context.Context, p *domain.SavedPlace) error
	UpdatePlace(ctx context.Context, p *domain.SavedPlace) error
	ListSaved(ctx context.Context) ([]domain.SavedPlace, error)
	ListInferred(ctx context.Context) ([]domain.InferredPlace, error)

	// PromoteAlternative turns a disambiguation candidate into a saved
	// place atomically, refreshing the nearby record alongside it.
	PromoteAlternative(ctx context.Context, alt domain.PlaceAlternative, label string, category domain.PlaceCategory, radiusM float64) (*domain.SavedPlace, error)
}

// IngestService accepts raw signal from the capture layer.
type IngestService interface {
	PutSummary(ctx context.Context, s *domain.HourlySummary) error
	PutEmail(ctx context.Context, e *domain.EmailEvent) error
	PutChat(ctx context.Context, c *domain.ChatEvent) error
	PutMeeting(ctx context.Context, m *domain.MeetingEvent) error
	PutCall(ctx context.Context, c *domain.CallEvent) error
	PutCalendarEntry(ctx context.Context, e *domain.CalendarEntry, actual bool) error
	PutInferredPlace(ctx context.Context, p *domain.InferredPlace) error
	PutNearbyPlace(ctx context.Context, p *domain.PlaceAlternative) error
}
