package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivedDay(date time.Time, labels ...string) contract.DayResult {
	day := contract.DayResult{Date: date}
	cursor := date
	for i, label := range labels {
		b := domain.LocationBlock{
			ID:            "blk-" + date.Format("20060102") + "-" + string(rune('a'+i)),
			Type:          domain.BlockStationary,
			LocationLabel: label,
			StartTime:     cursor,
			EndTime:       cursor.Add(8 * time.Hour),
			DurationMin:   480,
		}
		cursor = b.EndTime
		day.Blocks = append(day.Blocks, b)
	}
	return day
}

func TestArchiveRepo_SaveAndGetDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	day := archivedDay(date, "Home", "Office", "Home")
	day.Events = []domain.TimelineEvent{{
		ID: "mtg-1", Kind: domain.EventMeeting, Title: "Standup",
		StartTime: date.Add(9 * time.Hour), EndTime: date.Add(9*time.Hour + 15*time.Minute),
	}}
	require.NoError(t, repo.SaveDay(ctx, day))

	got, err := repo.GetDay(ctx, date)
	require.NoError(t, err)
	require.Len(t, got.Blocks, 3)
	assert.Equal(t, "Office", got.Blocks[1].LocationLabel)
	require.Len(t, got.Events, 1)
	assert.Equal(t, domain.EventMeeting, got.Events[0].Kind)
	assert.True(t, got.Date.Equal(date))
}

func TestArchiveRepo_SaveDay_ReplacesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveDay(ctx, archivedDay(date, "Home")))
	require.NoError(t, repo.SaveDay(ctx, archivedDay(date, "Home", "Office")))

	got, err := repo.GetDay(ctx, date)
	require.NoError(t, err)
	assert.Len(t, got.Blocks, 2)
}

func TestArchiveRepo_GetDay_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	_, err := repo.GetDay(ctx, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchiveRepo_ListRecent_WindowAndOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{1, 2, 3, 10} {
		d := today.AddDate(0, 0, -offset)
		require.NoError(t, repo.SaveDay(ctx, archivedDay(d, "Home")))
	}
	// Same-day archive is excluded: the baseline never includes the day
	// being analyzed.
	require.NoError(t, repo.SaveDay(ctx, archivedDay(today, "Home")))

	got, err := repo.ListRecent(ctx, today, 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.After(got[1].Date))
	assert.True(t, got[1].Date.After(got[2].Date))
}

func TestArchiveRepo_LastLabeledBlock(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	day := archivedDay(yesterday, "Office", "Home")
	// Trailing unknown block must be skipped in favor of the last real label.
	day.Blocks = append(day.Blocks, domain.LocationBlock{
		ID: "blk-unknown", Type: domain.BlockStationary,
		LocationLabel: domain.UnknownLabel,
		StartTime:     day.Blocks[1].EndTime, EndTime: yesterday.AddDate(0, 0, 1),
	})
	require.NoError(t, repo.SaveDay(ctx, day))

	got, err := repo.LastLabeledBlock(ctx, today)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Home", got.LocationLabel)
}

func TestArchiveRepo_LastLabeledBlock_NoHistory(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteArchiveRepo(db)
	ctx := context.Background()

	got, err := repo.LastLabeledBlock(ctx, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)
}
