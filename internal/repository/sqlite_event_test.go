package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuxEventRepo_ListRange_AssemblesAllSources(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAuxEventRepo(db)
	ctx := context.Background()

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	require.NoError(t, repo.PutEmail(ctx, &domain.EmailEvent{
		ID: "eml-1", Subject: "Quarterly numbers", Counterpart: "finance@corp.example",
		StartTime: at(9, 15), EndTime: at(9, 16),
	}))
	require.NoError(t, repo.PutChat(ctx, &domain.ChatEvent{
		ID: "cht-1", Channel: domain.ChannelSlack, Title: "#platform", Snippet: "deploy is green",
		StartTime: at(10, 0), EndTime: at(10, 1),
	}))
	require.NoError(t, repo.PutMeeting(ctx, &domain.MeetingEvent{
		ID: "mtg-1", Title: "Standup", Attendees: "team-platform",
		StartTime: at(9, 30), EndTime: at(9, 45),
	}))
	require.NoError(t, repo.PutCall(ctx, &domain.CallEvent{
		ID: "cll-1", Contact: "Dana", Incoming: true,
		StartTime: at(14, 0), EndTime: at(14, 10),
	}))
	require.NoError(t, repo.PutCalendarEntry(ctx, &domain.CalendarEntry{
		ID: "cal-p1", Title: "Focus time", Category: "focus",
		StartTime: at(13, 0), EndTime: at(15, 0),
	}, false))
	require.NoError(t, repo.PutCalendarEntry(ctx, &domain.CalendarEntry{
		ID: "cal-a1", Title: "Focus time", Category: "focus",
		StartTime: at(13, 10), EndTime: at(15, 5),
	}, true))

	aux, err := repo.ListRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, aux.Emails, 1)
	require.Len(t, aux.Chats, 1)
	require.Len(t, aux.Meetings, 1)
	require.Len(t, aux.Calls, 1)
	require.Len(t, aux.Planned, 1)
	require.Len(t, aux.Actual, 1)

	assert.Equal(t, "Quarterly numbers", aux.Emails[0].Subject)
	assert.Equal(t, domain.ChannelSlack, aux.Chats[0].Channel)
	assert.True(t, aux.Calls[0].Incoming)
	assert.Equal(t, "cal-p1", aux.Planned[0].ID)
	assert.Equal(t, "cal-a1", aux.Actual[0].ID)
	assert.True(t, aux.Meetings[0].StartTime.Equal(at(9, 30)))
}

func TestAuxEventRepo_ListRange_EmptyDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAuxEventRepo(db)
	ctx := context.Background()

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	aux, err := repo.ListRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, aux.Emails)
	assert.Empty(t, aux.Chats)
	assert.Empty(t, aux.Meetings)
	assert.Empty(t, aux.Calls)
	assert.Empty(t, aux.Planned)
	assert.Empty(t, aux.Actual)
}

func TestAuxEventRepo_PutIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAuxEventRepo(db)
	ctx := context.Background()

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	e := &domain.EmailEvent{
		ID: "eml-1", Subject: "First", Counterpart: "a@example.com",
		StartTime: day.Add(9 * time.Hour), EndTime: day.Add(9*time.Hour + time.Minute),
	}
	require.NoError(t, repo.PutEmail(ctx, e))
	e.Subject = "Second"
	require.NoError(t, repo.PutEmail(ctx, e))

	aux, err := repo.ListRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, aux.Emails, 1)
	assert.Equal(t, "Second", aux.Emails[0].Subject)
}
