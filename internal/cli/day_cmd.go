package cli

import (
	"context"
	"fmt"

	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	var date string
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the location blocks of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			get := app.Days.GetDay
			if rebuild {
				get = app.Days.BuildDay
			}
			result, err := get(ctx, day)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDay(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Re-run synthesis even when the day is archived")

	return cmd
}
