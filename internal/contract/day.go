package contract

import (
	"time"

	"github.com/mbaumgart/recap/internal/domain"
)

// DayResult is one synthesized day: its location blocks and the unified
// timeline derived from them.
type DayResult struct {
	Date   time.Time
	Blocks []domain.LocationBlock
	Events []domain.TimelineEvent
}

// InsightRow is one deviation or prediction line of a pattern insight.
type InsightRow struct {
	TimeLabel  string
	Title      string
	Detail     string
	Confidence float64
}

// PatternInsight is the per-day derived pattern view. It is computed fresh
// per request and never persisted.
type PatternInsight struct {
	DateLabel    string
	AnomalyScore float64
	Deviations   []InsightRow
	Predictions  []InsightRow
}
