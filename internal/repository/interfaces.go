package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SummaryRepo stores the hourly summaries produced by the capture layer.
// Summaries are immutable to this core; Put exists for ingestion only.
type SummaryRepo interface {
	Put(ctx context.Context, s *domain.HourlySummary) error
	ListRange(ctx context.Context, from, to time.Time) ([]domain.HourlySummary, error)
}

// PlaceRepo stores saved places, inferred places and the nearby named
// places used as disambiguation candidates.
type PlaceRepo interface {
	CreateSaved(ctx context.Context, p *domain.SavedPlace) error
	UpdateSaved(ctx context.Context, p *domain.SavedPlace) error
	ListSaved(ctx context.Context) ([]domain.SavedPlace, error)
	GetSaved(ctx context.Context, id string) (*domain.SavedPlace, error)

	UpsertInferred(ctx context.Context, p *domain.InferredPlace) error
	ListInferred(ctx context.Context) ([]domain.InferredPlace, error)

	UpsertNearby(ctx context.Context, p *domain.PlaceAlternative) error
	ListNearby(ctx context.Context) ([]domain.PlaceAlternative, error)
}

// AuxEventRepo stores the five non-location event sources.
type AuxEventRepo interface {
	ListRange(ctx context.Context, from, to time.Time) (domain.AuxiliaryEvents, error)

	PutEmail(ctx context.Context, e *domain.EmailEvent) error
	PutChat(ctx context.Context, c *domain.ChatEvent) error
	PutMeeting(ctx context.Context, m *domain.MeetingEvent) error
	PutCall(ctx context.Context, c *domain.CallEvent) error
	PutCalendarEntry(ctx context.Context, e *domain.CalendarEntry, actual bool) error
}

// ArchiveRepo persists synthesized days; they form the rolling baseline
// for pattern analysis and the carry-forward anchor for evidence-free days.
type ArchiveRepo interface {
	SaveDay(ctx context.Context, day contract.DayResult) error
	GetDay(ctx context.Context, date time.Time) (*contract.DayResult, error)
	ListRecent(ctx context.Context, before time.Time, days int) ([]contract.DayResult, error)
	LastLabeledBlock(ctx context.Context, before time.Time) (*domain.LocationBlock, error)
}
