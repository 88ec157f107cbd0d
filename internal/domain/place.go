package domain

import "time"

// SavedPlace is a user-defined labeled place with a containment radius.
type SavedPlace struct {
	ID        string
	Label     string
	Category  PlaceCategory
	Lat       float64
	Lon       float64
	RadiusM   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InferredPlace is a cluster the system has learned from history
// (home, work, or another frequently visited spot).
type InferredPlace struct {
	ID         string
	Kind       InferredKind
	Label      string
	Category   PlaceCategory
	Lat        float64
	Lon        float64
	Confidence float64
}

// PlaceAlternative is a disambiguation candidate offered when neither a
// saved nor an inferred place matches a sample. Callers may promote one
// to a saved place.
type PlaceAlternative struct {
	Name       string
	ExternalID string
	Vicinity   string
	Types      []string
	Lat        float64
	Lon        float64
	DistanceM  float64
}
