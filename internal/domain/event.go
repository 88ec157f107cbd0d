package domain

import "time"

// CalendarEntry is one planned or actual calendar occurrence.
type CalendarEntry struct {
	ID        string
	Title     string
	Category  string
	StartTime time.Time
	EndTime   time.Time
}

// EmailEvent is one sent or received email surfaced on the timeline.
type EmailEvent struct {
	ID          string
	Subject     string
	Counterpart string
	StartTime   time.Time
	EndTime     time.Time
}

// ChatEvent is one chat message (Slack or SMS).
type ChatEvent struct {
	ID        string
	Channel   ChatChannel
	Title     string
	Snippet   string
	StartTime time.Time
	EndTime   time.Time
}

// MeetingEvent is one attended meeting.
type MeetingEvent struct {
	ID        string
	Title     string
	Attendees string
	StartTime time.Time
	EndTime   time.Time
}

// CallEvent is one phone call.
type CallEvent struct {
	ID        string
	Contact   string
	Incoming  bool
	StartTime time.Time
	EndTime   time.Time
}

// AuxiliaryEvents bundles the non-location event sources for one range,
// already fetched by the collaborator layer.
type AuxiliaryEvents struct {
	Emails   []EmailEvent
	Chats    []ChatEvent
	Meetings []MeetingEvent
	Calls    []CallEvent
	Planned  []CalendarEntry
	Actual   []CalendarEntry
}

// TimelineEvent is the unified row type across all sources.
type TimelineEvent struct {
	ID          string
	Kind        EventKind
	KindLabel   string
	Title       string
	Subtitle    string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int

	AppCategory  AppCategory
	Productivity ProductivityFlag

	// IDs of events whose [start, end) interval intersects this one.
	// Symmetric and never self-referential.
	Overlaps []string

	IsPast bool

	// Planned-vs-actual pairing for scheduled entries.
	ScheduledEntry *CalendarEntry
	ActualEntry    *CalendarEntry

	BlockID    string
	SummaryIDs []string
}
