package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mbaumgart/recap/internal/contract"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/synthesis"
	"github.com/mbaumgart/recap/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	summaries repository.SummaryRepo
	events    repository.AuxEventRepo
	archive   repository.ArchiveRepo
	placeRepo repository.PlaceRepo
	cache     *PlaceCache

	days    DayService
	places  PlaceService
	ingest  IngestService
	insight InsightService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	cfg := synthesis.DefaultConfig()

	env := &testEnv{
		db:        database,
		summaries: repository.NewSQLiteSummaryRepo(database),
		events:    repository.NewSQLiteAuxEventRepo(database),
		archive:   repository.NewSQLiteArchiveRepo(database),
		placeRepo: repository.NewSQLitePlaceRepo(database),
	}
	env.cache = NewPlaceCache(env.placeRepo)
	env.days = NewDayService(env.summaries, env.events, env.archive, env.cache, cfg)
	env.places = NewPlaceService(env.placeRepo, env.cache, testutil.NewTestUoW(database))
	env.ingest = NewIngestService(env.summaries, env.events, env.placeRepo, env.cache)
	env.insight = NewInsightService(env.days, env.archive, 28, cfg)
	return env
}

// Home and Office reference coordinates, roughly 1.3 km apart.
const (
	homeLat   = 52.5200
	homeLon   = 13.4050
	officeLat = 52.5300
	officeLon = 13.3900
)

func (e *testEnv) seedHomeAndOffice(t *testing.T, ctx context.Context) {
	t.Helper()
	home := testutil.NewTestSavedPlace("Home", homeLat, homeLon,
		testutil.WithPlaceCategory(domain.PlaceHome))
	office := testutil.NewTestSavedPlace("Office", officeLat, officeLon,
		testutil.WithPlaceCategory(domain.PlaceWork),
		testutil.WithRadius(150))
	require.NoError(t, e.placeRepo.CreateSaved(ctx, home))
	require.NoError(t, e.placeRepo.CreateSaved(ctx, office))
	e.cache.Invalidate()
}

func (e *testEnv) putSummaryAt(t *testing.T, ctx context.Context, hour time.Time, lat, lon float64) *domain.HourlySummary {
	t.Helper()
	s := testutil.NewTestSummary(hour, testutil.WithSamples(testutil.SampleAt(lat, lon, hour)))
	require.NoError(t, e.ingest.PutSummary(ctx, s))
	return s
}

// archiveFullDay stores a day whose single stationary block spans the whole
// day under the given label.
func (e *testEnv) archiveFullDay(t *testing.T, ctx context.Context, date time.Time, label string) {
	t.Helper()
	require.NoError(t, e.archive.SaveDay(ctx, contract.DayResult{
		Date: date,
		Blocks: []domain.LocationBlock{{
			ID:            "blk-" + date.Format("20060102"),
			Type:          domain.BlockStationary,
			LocationLabel: label,
			StartTime:     date,
			EndTime:       date.AddDate(0, 0, 1),
			DurationMin:   1440,
		}},
	}))
}
