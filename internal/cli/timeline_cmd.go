package cli

import (
	"context"
	"fmt"

	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var date string
	var kind string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the unified event timeline of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			result, err := app.Days.GetDay(ctx, day)
			if err != nil {
				return err
			}

			events := result.Events
			if kind != "" {
				filtered := events[:0:0]
				for _, ev := range events {
					if ev.Kind == domain.EventKind(kind) {
						filtered = append(filtered, ev)
					}
				}
				events = filtered
			}

			fmt.Print(formatter.FormatTimeline(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show events of one kind (app, email, meeting, ...)")

	return cmd
}
