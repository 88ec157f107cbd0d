package synthesis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
)

// kindPriority orders events that start at the same instant: foreground
// activities sort above background app usage and messaging noise.
var kindPriority = map[domain.EventKind]int{
	domain.EventMeeting:   0,
	domain.EventPhoneCall: 1,
	domain.EventScheduled: 2,
	domain.EventApp:       3,
	domain.EventWebsite:   4,
	domain.EventEmail:     5,
	domain.EventSlack:     6,
	domain.EventSMS:       7,
}

// BuildTimeline flattens the block contents and all auxiliary event sources
// into one chronologically ordered sequence of timeline events. Each app
// session becomes its own event; planned calendar entries absorb their
// matching actual occurrence into a single row. Overlapping intervals mark
// each other symmetrically. isPast is evaluated against the supplied now so
// historical re-renders stay deterministic.
func BuildTimeline(blocks []domain.LocationBlock, aux domain.AuxiliaryEvents, now time.Time, cfg Config) ([]domain.TimelineEvent, error) {
	events := appEvents(blocks, cfg)
	events = append(events, auxiliaryEvents(aux)...)

	for i := range events {
		e := &events[i]
		if e.EndTime.Before(e.StartTime) {
			return nil, fmt.Errorf("event %s ends before it starts: %w", e.ID, domain.ErrMalformedInput)
		}
		e.KindLabel = domain.KindLabel(e.Kind)
		e.DurationMin = int(math.Round(e.EndTime.Sub(e.StartTime).Minutes()))
		e.IsPast = !e.EndTime.After(now)
		if e.BlockID == "" {
			e.BlockID = blockIDAt(blocks, e.StartTime)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].StartTime.Before(events[j].StartTime)
		}
		return kindPriority[events[i].Kind] < kindPriority[events[j].Kind]
	})

	markOverlaps(events)
	return events, nil
}

func appEvents(blocks []domain.LocationBlock, cfg Config) []domain.TimelineEvent {
	var events []domain.TimelineEvent
	for bi := range blocks {
		block := &blocks[bi]
		for _, usage := range block.Apps {
			kind := domain.EventApp
			if usage.Category == domain.AppCatWebsite {
				kind = domain.EventWebsite
			}
			for si, slice := range usage.Sessions {
				events = append(events, domain.TimelineEvent{
					ID:           fmt.Sprintf("%s-%s-%d", block.ID, usage.AppID, si),
					Kind:         kind,
					Title:        usage.AppName,
					Subtitle:     string(usage.Category),
					StartTime:    slice.StartTime,
					EndTime:      slice.EndTime,
					AppCategory:  usage.Category,
					Productivity: cfg.productivityFor(usage.Category),
					BlockID:      block.ID,
					SummaryIDs:   block.SummaryIDs,
				})
			}
		}
	}
	return events
}

func auxiliaryEvents(aux domain.AuxiliaryEvents) []domain.TimelineEvent {
	var events []domain.TimelineEvent

	for _, m := range aux.Emails {
		events = append(events, domain.TimelineEvent{
			ID:           "eml-" + m.ID,
			Kind:         domain.EventEmail,
			Title:        m.Subject,
			Subtitle:     m.Counterpart,
			StartTime:    m.StartTime,
			EndTime:      m.EndTime,
			Productivity: domain.Neutral,
		})
	}
	for _, c := range aux.Chats {
		kind := domain.EventSlack
		if c.Channel == domain.ChannelSMS {
			kind = domain.EventSMS
		}
		events = append(events, domain.TimelineEvent{
			ID:           "cht-" + c.ID,
			Kind:         kind,
			Title:        c.Title,
			Subtitle:     c.Snippet,
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			Productivity: domain.Neutral,
		})
	}
	for _, m := range aux.Meetings {
		events = append(events, domain.TimelineEvent{
			ID:           "mtg-" + m.ID,
			Kind:         domain.EventMeeting,
			Title:        m.Title,
			Subtitle:     m.Attendees,
			StartTime:    m.StartTime,
			EndTime:      m.EndTime,
			Productivity: domain.Neutral,
		})
	}
	for _, c := range aux.Calls {
		title := "Call with " + c.Contact
		if c.Contact == "" {
			title = "Phone call"
		}
		events = append(events, domain.TimelineEvent{
			ID:           "cal-" + c.ID,
			Kind:         domain.EventPhoneCall,
			Title:        title,
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			Productivity: domain.Neutral,
		})
	}

	events = append(events, scheduledEvents(aux.Planned, aux.Actual)...)
	return events
}

// scheduledEvents emits one row per planned entry, attaching the matching
// actual occurrence (same category, intersecting window) instead of
// emitting it separately. Actuals with no plan still surface as their own
// scheduled row.
func scheduledEvents(planned, actual []domain.CalendarEntry) []domain.TimelineEvent {
	used := make([]bool, len(actual))
	var events []domain.TimelineEvent

	for i := range planned {
		p := planned[i]
		ev := domain.TimelineEvent{
			ID:             "sch-" + p.ID,
			Kind:           domain.EventScheduled,
			Title:          p.Title,
			Subtitle:       p.Category,
			StartTime:      p.StartTime,
			EndTime:        p.EndTime,
			Productivity:   domain.Neutral,
			ScheduledEntry: &p,
		}
		for j := range actual {
			if used[j] || actual[j].Category != p.Category {
				continue
			}
			if intersects(p.StartTime, p.EndTime, actual[j].StartTime, actual[j].EndTime) {
				a := actual[j]
				ev.ActualEntry = &a
				used[j] = true
				break
			}
		}
		events = append(events, ev)
	}

	for j := range actual {
		if used[j] {
			continue
		}
		a := actual[j]
		events = append(events, domain.TimelineEvent{
			ID:           "sch-" + a.ID,
			Kind:         domain.EventScheduled,
			Title:        a.Title,
			Subtitle:     a.Category,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
			Productivity: domain.Neutral,
			ActualEntry:  &a,
		})
	}
	return events
}

// markOverlaps fills each event's overlap set with a single sweep over the
// start-sorted sequence, pruning expired intervals as it goes.
func markOverlaps(events []domain.TimelineEvent) {
	var active []int
	for i := range events {
		start := events[i].StartTime
		kept := active[:0]
		for _, j := range active {
			if events[j].EndTime.After(start) {
				kept = append(kept, j)
			}
		}
		active = kept

		for _, j := range active {
			if intersects(events[i].StartTime, events[i].EndTime, events[j].StartTime, events[j].EndTime) {
				events[i].Overlaps = append(events[i].Overlaps, events[j].ID)
				events[j].Overlaps = append(events[j].Overlaps, events[i].ID)
			}
		}
		active = append(active, i)
	}
	for i := range events {
		sort.Strings(events[i].Overlaps)
	}
}

// intersects reports whether [s1, e1) and [s2, e2) share any instant.
func intersects(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func blockIDAt(blocks []domain.LocationBlock, t time.Time) string {
	for i := range blocks {
		if !t.Before(blocks[i].StartTime) && t.Before(blocks[i].EndTime) {
			return blocks[i].ID
		}
	}
	return ""
}
