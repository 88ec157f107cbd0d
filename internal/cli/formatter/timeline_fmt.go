package formatter

import (
	"fmt"

	"github.com/mbaumgart/recap/internal/domain"
)

// FormatTimeline formats the unified event list for one day.
func FormatTimeline(events []domain.TimelineEvent) string {
	if len(events) == 0 {
		return Dim("No events for this day.") + "\n"
	}

	headers := []string{"TIME", "KIND", "TITLE", "DUR", ""}
	rows := make([][]string, 0, len(events))
	for i := range events {
		ev := &events[i]
		rows = append(rows, []string{
			timeRange(ev.StartTime, ev.EndTime),
			kindCell(ev),
			eventTitle(ev),
			durationCell(ev.DurationMin),
			ProductivityIndicator(ev.Productivity),
		})
	}
	return RenderTable(headers, rows)
}

func kindCell(ev *domain.TimelineEvent) string {
	switch ev.Kind {
	case domain.EventMeeting, domain.EventScheduled:
		return StylePurple.Render(ev.KindLabel)
	case domain.EventPhoneCall, domain.EventSlack, domain.EventSMS, domain.EventEmail:
		return StyleBlue.Render(ev.KindLabel)
	default:
		return StyleFg.Render(ev.KindLabel)
	}
}

func eventTitle(ev *domain.TimelineEvent) string {
	title := ev.Title
	if ev.Subtitle != "" {
		title += " " + Dim(ev.Subtitle)
	}
	if ev.ScheduledEntry != nil && ev.ActualEntry != nil {
		shift := ev.ActualEntry.StartTime.Sub(ev.ScheduledEntry.StartTime)
		if shift != 0 {
			title += " " + StyleYellow.Render(fmt.Sprintf("(planned %s)", ev.ScheduledEntry.StartTime.Format("15:04")))
		}
	}
	if n := len(ev.Overlaps); n > 0 {
		title += " " + Dim(fmt.Sprintf("⧉%d", n))
	}
	return title
}

func durationCell(min int) string {
	if min <= 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%dm", min)
}
