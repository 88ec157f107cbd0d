package service

import (
	"context"
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayService_BuildDay_SynthesizesAndArchives(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedHomeAndOffice(t, ctx)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	env.putSummaryAt(t, ctx, day.Add(7*time.Hour), homeLat, homeLon)
	env.putSummaryAt(t, ctx, day.Add(8*time.Hour), homeLat, homeLon)
	env.putSummaryAt(t, ctx, day.Add(9*time.Hour), officeLat, officeLon)

	require.NoError(t, env.ingest.PutMeeting(ctx, &domain.MeetingEvent{
		ID: "mtg-1", Title: "Standup", Attendees: "team",
		StartTime: day.Add(9*time.Hour + 30*time.Minute),
		EndTime:   day.Add(9*time.Hour + 45*time.Minute),
	}))

	result, err := env.days.BuildDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 2)
	assert.Equal(t, "Home", result.Blocks[0].LocationLabel)
	assert.Equal(t, "Office", result.Blocks[1].LocationLabel)

	var meeting *domain.TimelineEvent
	for i := range result.Events {
		if result.Events[i].Kind == domain.EventMeeting {
			meeting = &result.Events[i]
		}
	}
	require.NotNil(t, meeting)
	assert.Equal(t, result.Blocks[1].ID, meeting.BlockID)

	archived, err := env.archive.GetDay(ctx, day)
	require.NoError(t, err)
	assert.Len(t, archived.Blocks, 2)
}

func TestDayService_BuildDay_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedHomeAndOffice(t, ctx)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	env.putSummaryAt(t, ctx, day.Add(8*time.Hour), homeLat, homeLon)

	first, err := env.days.BuildDay(ctx, day)
	require.NoError(t, err)
	second, err := env.days.BuildDay(ctx, day)
	require.NoError(t, err)

	require.Len(t, second.Blocks, len(first.Blocks))
	assert.Equal(t, first.Blocks[0].ID, second.Blocks[0].ID)
}

func TestDayService_BuildDay_CarriesForwardFromArchive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedHomeAndOffice(t, ctx)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	env.archiveFullDay(t, ctx, day.AddDate(0, 0, -1), "Home")

	// Phone stayed in a drawer: the summary has no location samples.
	s := testutil.NewTestSummary(day.Add(8 * time.Hour))
	require.NoError(t, env.ingest.PutSummary(ctx, s))

	result, err := env.days.BuildDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 1)
	assert.Equal(t, "Home", result.Blocks[0].LocationLabel)
	assert.True(t, result.Blocks[0].IsCarriedForward)
}

func TestDayService_BuildDay_RejectsMalformedSummaries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedHomeAndOffice(t, ctx)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	broken := testutil.NewTestSummary(day.Add(8 * time.Hour))
	broken.EndTime = broken.StartTime.Add(-time.Hour)
	// Ingestion validation is bypassed on purpose to exercise the engine's
	// own guard.
	require.NoError(t, env.summaries.Put(ctx, broken))

	_, err := env.days.BuildDay(ctx, day)
	require.ErrorIs(t, err, domain.ErrMalformedInput)

	// Nothing must be archived for a failed pass.
	_, err = env.archive.GetDay(ctx, day)
	assert.Error(t, err)
}

func TestDayService_GetDay_BuildsWhenMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedHomeAndOffice(t, ctx)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	env.putSummaryAt(t, ctx, day.Add(8*time.Hour), homeLat, homeLon)

	result, err := env.days.GetDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 1)

	// Second read comes from the archive.
	again, err := env.days.GetDay(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, result.Blocks[0].ID, again.Blocks[0].ID)
}
