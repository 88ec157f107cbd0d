package synthesis

import (
	"testing"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workBlock() domain.LocationBlock {
	return domain.LocationBlock{
		ID:               "blk-w1",
		Type:             domain.BlockStationary,
		LocationLabel:    "Office",
		LocationCategory: domain.PlaceWork,
		StartTime:        at(9, 0),
		EndTime:          at(12, 0),
		SummaryIDs:       []string{"s9", "s10", "s11"},
		Apps: []domain.BlockAppUsage{
			{
				AppID: "ide", AppName: "GoLand", Category: domain.AppCatWork, TotalMin: 20,
				Sessions: []domain.UsageSlice{{StartTime: at(9, 0), EndTime: at(9, 20), Minutes: 20}},
			},
		},
	}
}

func TestBuildTimeline_OverlapIsSymmetric(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Meetings: []domain.MeetingEvent{
			{ID: "m1", Title: "Standup", StartTime: at(9, 10), EndTime: at(9, 30)},
		},
	}

	events, err := BuildTimeline([]domain.LocationBlock{workBlock()}, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 2)

	app, meeting := events[0], events[1]
	assert.Equal(t, domain.EventApp, app.Kind)
	assert.Equal(t, domain.EventMeeting, meeting.Kind)
	assert.Contains(t, app.Overlaps, meeting.ID)
	assert.Contains(t, meeting.Overlaps, app.ID)
	assert.NotContains(t, app.Overlaps, app.ID, "overlap set excludes self")
}

func TestBuildTimeline_EqualStartOrdersByKindPriority(t *testing.T) {
	block := workBlock()
	aux := domain.AuxiliaryEvents{
		Meetings: []domain.MeetingEvent{
			{ID: "m1", Title: "Planning", StartTime: at(9, 0), EndTime: at(9, 30)},
		},
	}

	events, err := BuildTimeline([]domain.LocationBlock{block}, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventMeeting, events[0].Kind, "meetings sort above app usage at the same start")
	assert.Equal(t, domain.EventApp, events[1].Kind)
}

func TestBuildTimeline_SortedByStart(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Emails: []domain.EmailEvent{
			{ID: "e2", Subject: "Re: report", StartTime: at(11, 0), EndTime: at(11, 2)},
			{ID: "e1", Subject: "Morning sync", StartTime: at(8, 0), EndTime: at(8, 1)},
		},
		Calls: []domain.CallEvent{
			{ID: "c1", Contact: "Dana", StartTime: at(10, 0), EndTime: at(10, 12)},
		},
	}

	events, err := BuildTimeline([]domain.LocationBlock{workBlock()}, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].StartTime.Before(events[i-1].StartTime))
	}
}

func TestBuildTimeline_ProductivityClassification(t *testing.T) {
	block := workBlock()
	block.Apps = append(block.Apps, domain.BlockAppUsage{
		AppID: "gram", AppName: "Instagram", Category: domain.AppCatSocial, TotalMin: 15,
		Sessions: []domain.UsageSlice{{StartTime: at(10, 0), EndTime: at(10, 15), Minutes: 15}},
	})
	aux := domain.AuxiliaryEvents{
		Emails: []domain.EmailEvent{{ID: "e1", Subject: "Hello", StartTime: at(11, 0), EndTime: at(11, 1)}},
	}

	events, err := BuildTimeline([]domain.LocationBlock{block}, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)

	byKindTitle := map[string]domain.ProductivityFlag{}
	for _, e := range events {
		byKindTitle[e.Title] = e.Productivity
	}
	assert.Equal(t, domain.Productive, byKindTitle["GoLand"])
	assert.Equal(t, domain.Unproductive, byKindTitle["Instagram"])
	assert.Equal(t, domain.Neutral, byKindTitle["Hello"])
}

func TestBuildTimeline_ScheduledActualPairing(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Planned: []domain.CalendarEntry{
			{ID: "p1", Title: "Gym session", Category: "fitness", StartTime: at(18, 0), EndTime: at(19, 0)},
			{ID: "p2", Title: "Read a book", Category: "leisure", StartTime: at(20, 0), EndTime: at(21, 0)},
		},
		Actual: []domain.CalendarEntry{
			{ID: "a1", Title: "Gym session", Category: "fitness", StartTime: at(18, 10), EndTime: at(19, 5)},
		},
	}

	events, err := BuildTimeline(nil, aux, at(23, 0), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 2, "matched actual folds into the planned row")

	gym := events[0]
	require.NotNil(t, gym.ScheduledEntry)
	require.NotNil(t, gym.ActualEntry)
	assert.Equal(t, "p1", gym.ScheduledEntry.ID)
	assert.Equal(t, "a1", gym.ActualEntry.ID)

	book := events[1]
	require.NotNil(t, book.ScheduledEntry)
	assert.Nil(t, book.ActualEntry, "no actual occurred")
}

func TestBuildTimeline_IsPastAgainstSuppliedNow(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Meetings: []domain.MeetingEvent{
			{ID: "m1", Title: "Morning", StartTime: at(9, 0), EndTime: at(9, 30)},
			{ID: "m2", Title: "Evening", StartTime: at(17, 0), EndTime: at(17, 30)},
		},
	}

	events, err := BuildTimeline(nil, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].IsPast)
	assert.False(t, events[1].IsPast)
}

func TestBuildTimeline_WebsiteKindAndBlockAttribution(t *testing.T) {
	block := workBlock()
	block.Apps = []domain.BlockAppUsage{
		{
			AppID: "news", AppName: "news.example.org", Category: domain.AppCatWebsite, TotalMin: 10,
			Sessions: []domain.UsageSlice{{StartTime: at(9, 30), EndTime: at(9, 40), Minutes: 10}},
		},
	}
	aux := domain.AuxiliaryEvents{
		Chats: []domain.ChatEvent{
			{ID: "ch1", Channel: domain.ChannelSlack, Title: "#general", StartTime: at(9, 45), EndTime: at(9, 46)},
			{ID: "ch2", Channel: domain.ChannelSMS, Title: "Sam", StartTime: at(13, 0), EndTime: at(13, 1)},
		},
	}

	events, err := BuildTimeline([]domain.LocationBlock{block}, aux, at(14, 0), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, domain.EventWebsite, events[0].Kind)
	assert.Equal(t, "blk-w1", events[0].BlockID)
	assert.Equal(t, domain.EventSlack, events[1].Kind)
	assert.Equal(t, "blk-w1", events[1].BlockID, "chat inside the block window attributes to it")
	assert.Equal(t, domain.EventSMS, events[2].Kind)
	assert.Empty(t, events[2].BlockID, "no block covers the afternoon chat")
}

func TestBuildTimeline_RejectsNegativeDuration(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Meetings: []domain.MeetingEvent{
			{ID: "m1", Title: "Broken", StartTime: at(10, 0), EndTime: at(9, 0)},
		},
	}

	events, err := BuildTimeline(nil, aux, at(12, 0), DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.Nil(t, events)
}

func TestBuildTimeline_Idempotent(t *testing.T) {
	aux := domain.AuxiliaryEvents{
		Meetings: []domain.MeetingEvent{{ID: "m1", Title: "Standup", StartTime: at(9, 10), EndTime: at(9, 30)}},
		Emails:   []domain.EmailEvent{{ID: "e1", Subject: "Hi", StartTime: at(9, 15), EndTime: at(9, 16)}},
	}
	blocks := []domain.LocationBlock{workBlock()}

	first, err := BuildTimeline(blocks, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	second, err := BuildTimeline(blocks, aux, at(12, 0), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
