package synthesis

import (
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func TestAggregateAppUsage_GroupsAndSorts(t *testing.T) {
	sessions := []domain.AppSession{
		{AppID: "mail", AppName: "Mail", Category: domain.AppCatCommunication, StartTime: at(9, 0), EndTime: at(9, 10)},
		{AppID: "ide", AppName: "GoLand", Category: domain.AppCatWork, StartTime: at(9, 15), EndTime: at(10, 0)},
		{AppID: "mail", AppName: "Mail", Category: domain.AppCatCommunication, StartTime: at(10, 5), EndTime: at(10, 20)},
	}

	apps, total := AggregateAppUsage(sessions, at(9, 0), at(11, 0))

	require.Len(t, apps, 2)
	assert.Equal(t, "ide", apps[0].AppID, "largest total first")
	assert.Equal(t, 45, apps[0].TotalMin)
	assert.Equal(t, "mail", apps[1].AppID)
	assert.Equal(t, 25, apps[1].TotalMin)
	assert.Equal(t, 70, total)
}

func TestAggregateAppUsage_ClipsToWindow(t *testing.T) {
	sessions := []domain.AppSession{
		{AppID: "tube", AppName: "VideoTube", Category: domain.AppCatEntertainment, StartTime: at(8, 50), EndTime: at(9, 20)},
	}

	apps, total := AggregateAppUsage(sessions, at(9, 0), at(10, 0))

	require.Len(t, apps, 1)
	assert.Equal(t, 20, apps[0].TotalMin)
	assert.Equal(t, 20, total)
	assert.Equal(t, at(9, 0), apps[0].Sessions[0].StartTime)
}

func TestAggregateAppUsage_DropsDegenerateSessions(t *testing.T) {
	sessions := []domain.AppSession{
		{AppID: "a", AppName: "A", StartTime: at(9, 0), EndTime: at(9, 0)},
		{AppID: "b", AppName: "B", StartTime: at(9, 30), EndTime: at(9, 10)}, // clock skew
		{AppID: "c", AppName: "C", StartTime: at(11, 0), EndTime: at(11, 30)}, // outside window
	}

	apps, total := AggregateAppUsage(sessions, at(9, 0), at(10, 0))

	assert.Empty(t, apps)
	assert.Zero(t, total)
}

func TestAggregateAppUsage_SessionsStayChronological(t *testing.T) {
	sessions := []domain.AppSession{
		{AppID: "mail", AppName: "Mail", StartTime: at(10, 0), EndTime: at(10, 10)},
		{AppID: "mail", AppName: "Mail", StartTime: at(9, 0), EndTime: at(9, 10)},
	}

	apps, _ := AggregateAppUsage(sessions, at(9, 0), at(11, 0))

	require.Len(t, apps, 1)
	require.Len(t, apps[0].Sessions, 2)
	assert.True(t, apps[0].Sessions[0].StartTime.Before(apps[0].Sessions[1].StartTime))

	sum := 0
	for _, s := range apps[0].Sessions {
		sum += s.Minutes
	}
	assert.Equal(t, apps[0].TotalMin, sum, "session minutes must add up to the total")
}
