package synthesis

import (
	"time"

	"github.com/mbaumgart/recap/internal/domain"
)

// Config holds the tunable constants of the synthesis engine.
type Config struct {
	// CarryForwardGap is the longest evidence-free stretch that is absorbed
	// into the open block instead of opening a new unknown block.
	CarryForwardGap time.Duration

	// InferredToleranceM is the maximum distance in meters between a sample
	// and an inferred place centroid for the inferred label to apply.
	InferredToleranceM float64

	// AlternativeRadiusM bounds the disambiguation candidate search.
	AlternativeRadiusM float64
	MaxAlternatives    int

	// DeviationThreshold is the per-hour normalized divergence above which
	// a deviation row is emitted.
	DeviationThreshold float64

	// PredictionFloor is the minimum historical frequency for a prediction
	// row to be returned.
	PredictionFloor float64

	// Productivity maps app categories to their productivity flag.
	// Categories absent from the map classify as neutral.
	Productivity map[domain.AppCategory]domain.ProductivityFlag
}

// DefaultConfig returns the engine defaults. The gap tolerance absorbs up
// to two missing hourly summaries.
func DefaultConfig() Config {
	return Config{
		CarryForwardGap:    2 * time.Hour,
		InferredToleranceM: 150,
		AlternativeRadiusM: 250,
		MaxAlternatives:    5,
		DeviationThreshold: 0.35,
		PredictionFloor:    0.5,
		Productivity: map[domain.AppCategory]domain.ProductivityFlag{
			domain.AppCatWork:          domain.Productive,
			domain.AppCatCommunication: domain.Productive,
			domain.AppCatSocial:        domain.Unproductive,
			domain.AppCatEntertainment: domain.Unproductive,
		},
	}
}

func (c Config) productivityFor(cat domain.AppCategory) domain.ProductivityFlag {
	if flag, ok := c.Productivity[cat]; ok {
		return flag
	}
	return domain.Neutral
}
