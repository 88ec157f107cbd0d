package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mbaumgart/recap/internal/domain"
)

var testHourCounter atomic.Int64

// Summary options
type SummaryOption func(*domain.HourlySummary)

func WithSamples(samples ...domain.LocationSample) SummaryOption {
	return func(s *domain.HourlySummary) {
		s.LocationSamples = samples
	}
}

func WithAppSessions(sessions ...domain.AppSession) SummaryOption {
	return func(s *domain.HourlySummary) {
		s.AppSessions = sessions
	}
}

func WithSegments(segments ...domain.ActivitySegment) SummaryOption {
	return func(s *domain.HourlySummary) {
		s.ActivitySegments = segments
	}
}

func WithConfidence(c float64) SummaryOption {
	return func(s *domain.HourlySummary) {
		s.Confidence = c
	}
}

func WithFeedback() SummaryOption {
	return func(s *domain.HourlySummary) {
		s.HasFeedback = true
	}
}

func WithLocked() SummaryOption {
	return func(s *domain.HourlySummary) {
		s.IsLocked = true
	}
}

// NewTestSummary builds an hourly summary covering [start, start+1h).
// Each call gets a distinct sequential ID.
func NewTestSummary(start time.Time, opts ...SummaryOption) *domain.HourlySummary {
	n := testHourCounter.Add(1)
	s := &domain.HourlySummary{
		ID:         fmt.Sprintf("sum-%04d", n),
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Confidence: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleAt builds a location sample fixed at the midpoint of the hour
// starting at the given time.
func SampleAt(lat, lon float64, hour time.Time) domain.LocationSample {
	return domain.LocationSample{
		Lat:        lat,
		Lon:        lon,
		AccuracyM:  10,
		RecordedAt: hour.Add(30 * time.Minute),
	}
}

// SavedPlace options
type SavedPlaceOption func(*domain.SavedPlace)

func WithPlaceCategory(c domain.PlaceCategory) SavedPlaceOption {
	return func(p *domain.SavedPlace) {
		p.Category = c
	}
}

func WithRadius(m float64) SavedPlaceOption {
	return func(p *domain.SavedPlace) {
		p.RadiusM = m
	}
}

func NewTestSavedPlace(label string, lat, lon float64, opts ...SavedPlaceOption) *domain.SavedPlace {
	now := time.Now().UTC()
	p := &domain.SavedPlace{
		ID:        uuid.New().String(),
		Label:     label,
		Category:  domain.PlaceLeisure,
		Lat:       lat,
		Lon:       lon,
		RadiusM:   100,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestInferredPlace(label string, kind domain.InferredKind, lat, lon float64) *domain.InferredPlace {
	return &domain.InferredPlace{
		ID:         uuid.New().String(),
		Kind:       kind,
		Label:      label,
		Category:   domain.PlaceLeisure,
		Lat:        lat,
		Lon:        lon,
		Confidence: 0.8,
	}
}
