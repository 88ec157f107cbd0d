package formatter

import (
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testDay() *contract.DayResult {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return &contract.DayResult{
		Date: date,
		Blocks: []domain.LocationBlock{
			{
				ID:               "blk-1",
				Type:             domain.BlockStationary,
				LocationLabel:    "Home",
				LocationCategory: domain.PlaceHome,
				StartTime:        date,
				EndTime:          date.Add(9 * time.Hour),
				DurationMin:      540,
				TotalScreenMin:   75,
				DominantActivity: domain.ActivityStill,
				Confidence:       0.9,
				IsCarriedForward: true,
			},
			{
				ID:            "blk-2",
				Type:          domain.BlockTravel,
				MovementType:  domain.MovementDriving,
				LocationLabel: "In transit (driving)",
				DistanceKM:    4.2,
				StartTime:     date.Add(9 * time.Hour),
				EndTime:       date.Add(10 * time.Hour),
				DurationMin:   60,
				Confidence:    0.7,
			},
		},
	}
}

func TestFormatDay_RendersBlocksAndMarkers(t *testing.T) {
	out := FormatDay(testDay())
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "carried")
	assert.Contains(t, out, "In transit (driving)")
	assert.Contains(t, out, "4.2 km")
	assert.Contains(t, out, "1h15m")
	assert.Contains(t, out, "00:00")
	assert.Contains(t, out, "09:00")
}

func TestFormatDay_EmptyDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	out := FormatDay(&contract.DayResult{Date: date})
	assert.Contains(t, out, "No data for this day.")
}

func TestFormatDay_ShowsDisambiguationCandidates(t *testing.T) {
	day := testDay()
	day.Blocks[0].IsCarriedForward = false
	day.Blocks[0].LocationLabel = domain.UnknownLabel
	day.Blocks[0].PlaceAlternatives = []domain.PlaceAlternative{
		{Name: "Cafe Aroma"}, {Name: "Bakery Nord"},
	}
	out := FormatDay(day)
	assert.Contains(t, out, "2 candidates")
}
