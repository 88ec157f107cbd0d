package formatter

import (
	"fmt"

	"github.com/mbaumgart/recap/internal/domain"
)

// FormatSavedPlaces formats the saved place list.
func FormatSavedPlaces(places []domain.SavedPlace) string {
	if len(places) == 0 {
		return Dim("No saved places yet.") + "\n"
	}
	headers := []string{"LABEL", "CATEGORY", "POSITION", "RADIUS"}
	rows := make([][]string, 0, len(places))
	for _, p := range places {
		rows = append(rows, []string{
			Bold(p.Label),
			CategoryStyle(p.Category).Render(string(p.Category)),
			fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lon),
			fmt.Sprintf("%.0f m", p.RadiusM),
		})
	}
	return RenderTable(headers, rows)
}

// FormatInferredPlaces formats the learned place list.
func FormatInferredPlaces(places []domain.InferredPlace) string {
	if len(places) == 0 {
		return Dim("No inferred places yet.") + "\n"
	}
	headers := []string{"LABEL", "KIND", "POSITION", "CONF"}
	rows := make([][]string, 0, len(places))
	for _, p := range places {
		rows = append(rows, []string{
			Bold(p.Label),
			string(p.Kind),
			fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lon),
			ConfidencePct(p.Confidence),
		})
	}
	return RenderTable(headers, rows)
}
