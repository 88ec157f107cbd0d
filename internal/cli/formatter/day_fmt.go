package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
)

// FormatDay formats a synthesized day as a block table.
func FormatDay(day *contract.DayResult) string {
	var b strings.Builder
	b.WriteString(Header("Day " + day.Date.Format("Mon, 02 Jan 2006")))
	b.WriteString("\n")

	if len(day.Blocks) == 0 {
		b.WriteString(Dim("No data for this day.") + "\n")
		return b.String()
	}

	headers := []string{"TIME", "PLACE", "SCREEN", "ACTIVITY", "CONF"}
	rows := make([][]string, 0, len(day.Blocks))
	for i := range day.Blocks {
		blk := &day.Blocks[i]
		rows = append(rows, []string{
			timeRange(blk.StartTime, blk.EndTime),
			blockPlace(blk),
			screenTime(blk.TotalScreenMin),
			string(blk.DominantActivity),
			ConfidencePct(blk.Confidence),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s, %s %s\n",
		Bold(fmt.Sprintf("%d", len(day.Blocks))), Dim("blocks"),
		Bold(fmt.Sprintf("%d", len(day.Events))), Dim("timeline events")))
	return b.String()
}

func blockPlace(blk *domain.LocationBlock) string {
	if blk.Type == domain.BlockTravel {
		label := blk.LocationLabel
		if blk.DistanceKM > 0 {
			label = fmt.Sprintf("%s (%.1f km)", label, blk.DistanceKM)
		}
		return StyleAqua.Render(label)
	}

	label := CategoryStyle(blk.LocationCategory).Render(blk.LocationLabel)
	var marks []string
	if blk.IsCarriedForward {
		marks = append(marks, "carried")
	}
	if blk.IsInferred {
		marks = append(marks, "inferred")
	}
	if len(blk.PlaceAlternatives) > 0 {
		marks = append(marks, fmt.Sprintf("%d candidates", len(blk.PlaceAlternatives)))
	}
	if len(marks) > 0 {
		label += " " + Dim("("+strings.Join(marks, ", ")+")")
	}
	return label
}

func screenTime(min int) string {
	if min == 0 {
		return Dim("--")
	}
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

func timeRange(start, end time.Time) string {
	return start.Format("15:04") + Dim("-") + end.Format("15:04")
}
