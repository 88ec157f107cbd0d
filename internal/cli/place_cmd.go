package cli

import (
	"context"
	"fmt"

	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/mbaumgart/recap/internal/domain"
	"github.com/spf13/cobra"
)

func newPlaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Manage saved places",
	}

	cmd.AddCommand(
		newPlaceListCmd(app),
		newPlaceAddCmd(app),
		newPlacePromoteCmd(app),
	)

	return cmd
}

func newPlaceListCmd(app *App) *cobra.Command {
	var inferred bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved places",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if inferred {
				places, err := app.Places.ListInferred(ctx)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatInferredPlaces(places))
				return nil
			}
			places, err := app.Places.ListSaved(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSavedPlaces(places))
			return nil
		},
	}

	cmd.Flags().BoolVar(&inferred, "inferred", false, "Show learned places instead of saved ones")

	return cmd
}

func newPlaceAddCmd(app *App) *cobra.Command {
	var label, category string
	var lat, lon, radius float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a labeled place",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.SavedPlace{
				Label:    label,
				Category: domain.PlaceCategory(category),
				Lat:      lat,
				Lon:      lon,
				RadiusM:  radius,
			}
			if err := app.Places.SavePlace(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Saved %s (%s)\n", formatter.Bold(p.Label), p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Place label (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category (home, work, gym, food, errand, leisure)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (required)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude (required)")
	cmd.Flags().Float64Var(&radius, "radius", 100, "Containment radius in meters")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newPlacePromoteCmd(app *App) *cobra.Command {
	var date, externalID, label, category string
	var radius float64

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Turn a disambiguation candidate into a saved place",
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
			alternatives := collectAlternatives(result.Blocks)
			if len(alternatives) == 0 {
				fmt.Println("No unresolved places on this day.")
				return nil
			}

			if externalID == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--external-id is required in non-interactive mode")
				}
				if err := promoteForm(alternatives, &externalID, &label, &category).Run(); err != nil {
					return err
				}
			}

			alt, ok := findAlternative(alternatives, externalID)
			if !ok {
				return fmt.Errorf("no candidate with id %q on this day", externalID)
			}

			place, err := app.Places.PromoteAlternative(ctx, alt, label, domain.PlaceCategory(category), radius)
			if err != nil {
				return err
			}
			fmt.Printf("Promoted %s to saved place %s\n", alt.Name, formatter.Bold(place.Label))
			fmt.Println(formatter.Dim("Re-run 'recap day --rebuild' to apply the new label."))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day whose candidates to use (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&externalID, "external-id", "", "Candidate to promote (interactive prompt when omitted)")
	cmd.Flags().StringVar(&label, "label", "", "Label for the saved place (default: candidate name)")
	cmd.Flags().StringVar(&category, "category", string(domain.PlaceUnknown), "Category for the saved place")
	cmd.Flags().Float64Var(&radius, "radius", 100, "Containment radius in meters")

	return cmd
}

// collectAlternatives flattens the pending candidates of all unresolved
// blocks, deduplicated by external ID.
func collectAlternatives(blocks []domain.LocationBlock) []domain.PlaceAlternative {
	seen := make(map[string]bool)
	var out []domain.PlaceAlternative
	for i := range blocks {
		for _, alt := range blocks[i].PlaceAlternatives {
			if seen[alt.ExternalID] {
				continue
			}
			seen[alt.ExternalID] = true
			out = append(out, alt)
		}
	}
	return out
}

func findAlternative(alternatives []domain.PlaceAlternative, externalID string) (domain.PlaceAlternative, bool) {
	for _, alt := range alternatives {
		if alt.ExternalID == externalID {
			return alt, true
		}
	}
	return domain.PlaceAlternative{}, false
}
