package domain

import "time"

// LocationSample is a single positioning fix inside an hourly summary.
type LocationSample struct {
	Lat        float64
	Lon        float64
	Geohash    string
	AccuracyM  float64
	RecordedAt time.Time
}

// Valid reports whether the sample carries usable coordinates or a geohash.
func (s LocationSample) Valid() bool {
	if s.Geohash != "" {
		return true
	}
	if s.Lat == 0 && s.Lon == 0 {
		return false
	}
	return s.Lat >= -90 && s.Lat <= 90 && s.Lon >= -180 && s.Lon <= 180
}

// AppSession is one raw foreground-usage interval of a single app.
type AppSession struct {
	AppID     string
	AppName   string
	Category  AppCategory
	StartTime time.Time
	EndTime   time.Time
}

// ActivitySegment is an inferred motion-state interval within a summary.
type ActivitySegment struct {
	Type      ActivityType
	StartTime time.Time
	EndTime   time.Time
}

// HourlySummary is one hour of raw signal as produced by the capture layer.
// Summaries are immutable inputs; feedback and lock flags are external
// mutations surfaced on re-fetch.
type HourlySummary struct {
	ID               string
	StartTime        time.Time
	EndTime          time.Time
	LocationSamples  []LocationSample
	AppSessions      []AppSession
	ActivitySegments []ActivitySegment
	Confidence       float64
	HasFeedback      bool
	IsLocked         bool
}
