package cli

import (
	"context"
	"fmt"

	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Compare a day against its weekday baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			insight, err := app.Insights.Analyze(ctx, day)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatInsight(insight))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to analyze (YYYY-MM-DD, default today)")

	return cmd
}
