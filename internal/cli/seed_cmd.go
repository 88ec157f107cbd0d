package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load deterministic demo data",
		Long: `Seed fills the database with a repeatable demo week: a home/office
weekday routine, app sessions, meetings, calls and calendar entries.
Useful for trying the day, timeline and insights commands on an empty
install.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			end, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			if days < 1 {
				days = 7
			}

			if err := seedPlaces(ctx, app); err != nil {
				return err
			}
			for offset := days - 1; offset >= 0; offset-- {
				if err := seedDay(ctx, app, end.AddDate(0, 0, -offset)); err != nil {
					return err
				}
			}

			fmt.Printf("Seeded %d days ending %s\n", days, end.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Last seeded day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to seed")

	return cmd
}

// Demo coordinates: a flat in Berlin Mitte and an office 1.3 km away.
const (
	seedHomeLat   = 52.5200
	seedHomeLon   = 13.4050
	seedOfficeLat = 52.5300
	seedOfficeLon = 13.3900
)

func seedPlaces(ctx context.Context, app *App) error {
	saved, err := app.Places.ListSaved(ctx)
	if err != nil {
		return err
	}
	if len(saved) > 0 {
		return nil
	}

	home := &domain.SavedPlace{Label: "Home", Category: domain.PlaceHome, Lat: seedHomeLat, Lon: seedHomeLon, RadiusM: 100}
	office := &domain.SavedPlace{Label: "Office", Category: domain.PlaceWork, Lat: seedOfficeLat, Lon: seedOfficeLon, RadiusM: 150}
	if err := app.Places.SavePlace(ctx, home); err != nil {
		return err
	}
	if err := app.Places.SavePlace(ctx, office); err != nil {
		return err
	}

	if err := app.Ingest.PutInferredPlace(ctx, &domain.InferredPlace{
		ID: "ip-gym", Kind: domain.InferredFrequent, Label: "Gym",
		Category: domain.PlaceGym, Lat: 52.5250, Lon: 13.4120, Confidence: 0.7,
	}); err != nil {
		return err
	}
	return app.Ingest.PutNearbyPlace(ctx, &domain.PlaceAlternative{
		ExternalID: "osm-cafe-aroma", Name: "Cafe Aroma", Vicinity: "Torstrasse 12",
		Types: []string{"cafe", "food"}, Lat: 52.5210, Lon: 13.4060,
	})
}

func seedDay(ctx context.Context, app *App, day time.Time) error {
	tag := day.Format("20060102")
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}
	weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

	put := func(hour int, lat, lon float64, sessions ...domain.AppSession) error {
		s := &domain.HourlySummary{
			ID:        fmt.Sprintf("seed-%s-%02d", tag, hour),
			StartTime: at(hour, 0),
			EndTime:   at(hour+1, 0),
			LocationSamples: []domain.LocationSample{{
				Lat: lat, Lon: lon, AccuracyM: 12, RecordedAt: at(hour, 30),
			}},
			AppSessions: sessions,
			Confidence:  0.9,
		}
		return app.Ingest.PutSummary(ctx, s)
	}

	for hour := 7; hour < 22; hour++ {
		lat, lon := seedHomeLat, seedHomeLon
		if !weekend && hour >= 9 && hour < 18 {
			lat, lon = seedOfficeLat, seedOfficeLon
		}

		var sessions []domain.AppSession
		if !weekend && hour >= 9 && hour < 17 {
			sessions = append(sessions, domain.AppSession{
				AppID: "app.goland", AppName: "GoLand", Category: domain.AppCatWork,
				StartTime: at(hour, 5), EndTime: at(hour, 50),
			})
		}
		if hour == 20 {
			sessions = append(sessions, domain.AppSession{
				AppID: "app.instagram", AppName: "Instagram", Category: domain.AppCatSocial,
				StartTime: at(hour, 10), EndTime: at(hour, 40),
			})
		}
		if err := put(hour, lat, lon, sessions...); err != nil {
			return err
		}
	}

	if weekend {
		return nil
	}

	if err := app.Ingest.PutMeeting(ctx, &domain.MeetingEvent{
		ID: "seed-mtg-" + tag, Title: "Standup", Attendees: "team-platform",
		StartTime: at(9, 30), EndTime: at(9, 45),
	}); err != nil {
		return err
	}
	if err := app.Ingest.PutEmail(ctx, &domain.EmailEvent{
		ID: "seed-eml-" + tag, Subject: "Build report", Counterpart: "ci@corp.example",
		StartTime: at(10, 15), EndTime: at(10, 16),
	}); err != nil {
		return err
	}
	if err := app.Ingest.PutChat(ctx, &domain.ChatEvent{
		ID: "seed-cht-" + tag, Channel: domain.ChannelSlack, Title: "#platform",
		Snippet: "deploy is green", StartTime: at(11, 0), EndTime: at(11, 1),
	}); err != nil {
		return err
	}
	if err := app.Ingest.PutCall(ctx, &domain.CallEvent{
		ID: "seed-cll-" + tag, Contact: "Dana", Incoming: true,
		StartTime: at(16, 0), EndTime: at(16, 10),
	}); err != nil {
		return err
	}
	if err := app.Ingest.PutCalendarEntry(ctx, &domain.CalendarEntry{
		ID: "seed-cal-p-" + tag, Title: "Focus block", Category: "focus",
		StartTime: at(13, 0), EndTime: at(15, 0),
	}, false); err != nil {
		return err
	}
	return app.Ingest.PutCalendarEntry(ctx, &domain.CalendarEntry{
		ID: "seed-cal-a-" + tag, Title: "Focus block", Category: "focus",
		StartTime: at(13, 10), EndTime: at(15, 0),
	}, true)
}
