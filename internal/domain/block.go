package domain

import "time"

// UsageSlice is one app session clipped to a block's boundaries.
type UsageSlice struct {
	StartTime time.Time
	EndTime   time.Time
	Minutes   int
}

// BlockAppUsage aggregates one app's usage within one block.
// Sessions are chronological and non-overlapping; their minutes sum to
// TotalMin within rounding.
type BlockAppUsage struct {
	AppID    string
	AppName  string
	Category AppCategory
	TotalMin int
	Sessions []UsageSlice
}

// LocationBlock is a maximal run of consecutive hourly summaries sharing
// one resolved place, or one transit signature. Blocks are built fresh per
// synthesis pass and never mutated afterwards except for label edits
// surfaced through the place cache.
type LocationBlock struct {
	ID           string
	Type         BlockType
	MovementType MovementType
	DistanceKM   float64

	LocationLabel    string
	LocationCategory PlaceCategory
	InferredPlaceID  string
	IsInferred       bool
	IsUserDefined    bool
	Geohash          string

	StartTime   time.Time
	EndTime     time.Time
	DurationMin int

	Apps             []BlockAppUsage
	TotalScreenMin   int
	DominantActivity ActivityType
	Confidence       float64

	TotalLocationSamples int
	Summaries            []HourlySummary
	ActivitySegments     []ActivitySegment
	SummaryIDs           []string
	HasFeedback          bool
	IsLocked             bool

	// Set only while disambiguation is pending.
	PlaceAlternatives []PlaceAlternative
	CentroidLat       float64
	CentroidLon       float64

	// Optional merged view for callers that want events nested per block.
	Events []TimelineEvent

	IsCarriedForward bool
}
