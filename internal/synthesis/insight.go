package synthesis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
)

// AnalyzePatterns compares today's per-hour place distribution against the
// historical baseline for the same weekday and hour, producing an anomaly
// score in [0,1], deviation rows for divergent hours, and predictions for
// hours not yet observed. With no usable baseline the score is zero and
// both lists are empty.
func AnalyzePatterns(today contract.DayResult, history []contract.DayResult, now time.Time, cfg Config) contract.PatternInsight {
	insight := contract.PatternInsight{DateLabel: today.Date.Format("2006-01-02")}

	baseline := buildBaseline(today.Date.Weekday(), history)
	if baseline.days == 0 {
		return insight
	}

	var divSum float64
	var divHours int

	for hour := 0; hour < 24; hour++ {
		hourStart := hourWindow(today.Date, hour)
		bucket := baseline.hours[hour]

		if !hourStart.Before(now) {
			// Not yet observed: candidate for a prediction.
			if label, freq := bucket.top(); label != "" && freq >= cfg.PredictionFloor {
				insight.Predictions = append(insight.Predictions, contract.InsightRow{
					TimeLabel:  fmt.Sprintf("%02d:00", hour),
					Title:      "Likely at " + label,
					Detail:     fmt.Sprintf("Seen on %d of %d past %ss", bucket.counts[label], bucket.total, today.Date.Weekday()),
					Confidence: freq,
				})
			}
			continue
		}

		observed := hourLabel(today.Blocks, hourStart)
		if observed == "" || bucket.total == 0 {
			continue
		}

		div := normalizedDivergence(observed, bucket)
		divSum += div
		divHours++

		if div > cfg.DeviationThreshold {
			usual, usualFreq := bucket.top()
			insight.Deviations = append(insight.Deviations, contract.InsightRow{
				TimeLabel:  fmt.Sprintf("%02d:00", hour),
				Title:      "Unusual stay at " + observed,
				Detail:     fmt.Sprintf("Usually %s (%.0f%%), observed %s", usual, usualFreq*100, observed),
				Confidence: div,
			})
		}
	}

	if divHours > 0 {
		insight.AnomalyScore = clamp01(divSum / float64(divHours))
	}

	sort.SliceStable(insight.Deviations, func(i, j int) bool {
		return insight.Deviations[i].Confidence > insight.Deviations[j].Confidence
	})
	sort.SliceStable(insight.Predictions, func(i, j int) bool {
		return insight.Predictions[i].Confidence > insight.Predictions[j].Confidence
	})
	return insight
}

type hourBucket struct {
	counts map[string]int
	total  int
}

func (b hourBucket) top() (string, float64) {
	best := ""
	bestCount := 0
	for label, n := range b.counts {
		if n > bestCount || (n == bestCount && label < best) {
			best, bestCount = label, n
		}
	}
	if b.total == 0 || best == "" {
		return "", 0
	}
	return best, float64(bestCount) / float64(b.total)
}

type weekdayBaseline struct {
	hours [24]hourBucket
	days  int
}

func buildBaseline(weekday time.Weekday, history []contract.DayResult) weekdayBaseline {
	var base weekdayBaseline
	for h := range base.hours {
		base.hours[h].counts = make(map[string]int)
	}
	for _, day := range history {
		if day.Date.Weekday() != weekday {
			continue
		}
		base.days++
		for hour := 0; hour < 24; hour++ {
			label := hourLabel(day.Blocks, hourWindow(day.Date, hour))
			if label == "" {
				continue
			}
			base.hours[hour].counts[label]++
			base.hours[hour].total++
		}
	}
	return base
}

func hourWindow(date time.Time, hour int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, date.Location())
}

// hourLabel returns the place label occupying the most of the hour starting
// at hourStart, or "" when no block covers it.
func hourLabel(blocks []domain.LocationBlock, hourStart time.Time) string {
	hourEnd := hourStart.Add(time.Hour)
	best := ""
	bestMin := 0.0
	for i := range blocks {
		b := &blocks[i]
		from, to := b.StartTime, b.EndTime
		if from.Before(hourStart) {
			from = hourStart
		}
		if to.After(hourEnd) {
			to = hourEnd
		}
		if overlap := to.Sub(from).Minutes(); overlap > bestMin {
			best, bestMin = b.LocationLabel, overlap
		}
	}
	return best
}

// normalizedDivergence measures how far the observed label sits from the
// baseline distribution, as Jensen-Shannon divergence normalized by ln 2 so
// the result lands in [0,1]. It grows monotonically with the rarity of the
// observed label.
func normalizedDivergence(observed string, bucket hourBucket) float64 {
	labels := make([]string, 0, len(bucket.counts)+1)
	seen := false
	for label := range bucket.counts {
		labels = append(labels, label)
		if label == observed {
			seen = true
		}
	}
	if !seen {
		labels = append(labels, observed)
	}

	var jsd float64
	for _, label := range labels {
		p := 0.0
		if label == observed {
			p = 1.0
		}
		q := float64(bucket.counts[label]) / float64(bucket.total)
		m := (p + q) / 2
		jsd += kl(p, m)/2 + kl(q, m)/2
	}
	return clamp01(jsd / math.Ln2)
}

func kl(p, m float64) float64 {
	if p == 0 || m == 0 {
		return 0
	}
	return p * math.Log(p/m)
}
