package cli

import (
	"fmt"
	"time"

	"github.com/mbaumgart/recap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Days     service.DayService
	Insights service.InsightService
	Places   service.PlaceService
	Ingest   service.IngestService

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts are skipped otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "recap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "recap",
		Short: "Reconstruct your day from location and activity signal",
	}

	root.AddCommand(
		newDayCmd(app),
		newTimelineCmd(app),
		newInsightsCmd(app),
		newPlaceCmd(app),
		newViewCmd(app),
		newSeedCmd(app),
	)

	return root
}

// parseDateFlag resolves a --date value; empty means today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}
