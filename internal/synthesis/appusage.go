package synthesis

import (
	"math"
	"sort"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
)

// AggregateAppUsage clips the raw sessions to [start, end), groups them by
// app and sums per-app minutes. The returned list is sorted by total minutes
// descending; each app's session list stays chronological. The second return
// value is the total screen minutes across all apps.
func AggregateAppUsage(sessions []domain.AppSession, start, end time.Time) ([]domain.BlockAppUsage, int) {
	byApp := make(map[string]*domain.BlockAppUsage)
	var order []string

	for _, s := range sessions {
		from, to := clip(s.StartTime, s.EndTime, start, end)
		if !to.After(from) {
			// Zero-length or clock-skewed sessions carry no signal.
			continue
		}
		minutes := int(math.Round(to.Sub(from).Minutes()))

		usage, ok := byApp[s.AppID]
		if !ok {
			usage = &domain.BlockAppUsage{
				AppID:    s.AppID,
				AppName:  s.AppName,
				Category: s.Category,
			}
			byApp[s.AppID] = usage
			order = append(order, s.AppID)
		}
		usage.Sessions = append(usage.Sessions, domain.UsageSlice{
			StartTime: from,
			EndTime:   to,
			Minutes:   minutes,
		})
		usage.TotalMin += minutes
	}

	result := make([]domain.BlockAppUsage, 0, len(order))
	total := 0
	for _, id := range order {
		usage := byApp[id]
		sort.Slice(usage.Sessions, func(i, j int) bool {
			return usage.Sessions[i].StartTime.Before(usage.Sessions[j].StartTime)
		})
		total += usage.TotalMin
		result = append(result, *usage)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalMin != result[j].TotalMin {
			return result[i].TotalMin > result[j].TotalMin
		}
		return result[i].AppName < result[j].AppName
	})
	return result, total
}

func clip(from, to, lo, hi time.Time) (time.Time, time.Time) {
	if from.Before(lo) {
		from = lo
	}
	if to.After(hi) {
		to = hi
	}
	return from, to
}
