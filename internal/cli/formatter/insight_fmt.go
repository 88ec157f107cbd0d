package formatter

import (
	"fmt"
	"strings"

	"github.com/mbaumgart/recap/internal/contract"
)

// FormatInsight formats a pattern insight report.
func FormatInsight(insight *contract.PatternInsight) string {
	var b strings.Builder
	b.WriteString(Header("Patterns " + insight.DateLabel))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Anomaly score: %s\n", anomalyCell(insight.AnomalyScore)))

	if len(insight.Deviations) == 0 && len(insight.Predictions) == 0 {
		b.WriteString(Dim("Nothing unusual, nothing to predict.") + "\n")
		return b.String()
	}

	if len(insight.Deviations) > 0 {
		b.WriteString("\n" + Bold("Deviations") + "\n")
		b.WriteString(insightTable(insight.Deviations))
	}
	if len(insight.Predictions) > 0 {
		b.WriteString("\n" + Bold("Predictions") + "\n")
		b.WriteString(insightTable(insight.Predictions))
	}
	return b.String()
}

func insightTable(rows []contract.InsightRow) string {
	headers := []string{"TIME", "WHAT", "DETAIL", "CONF"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.TimeLabel,
			r.Title,
			Dim(r.Detail),
			ConfidencePct(r.Confidence),
		})
	}
	return RenderTable(headers, cells)
}

func anomalyCell(score float64) string {
	text := fmt.Sprintf("%.2f", score)
	switch {
	case score >= 0.5:
		return StyleRed.Render(text)
	case score >= 0.2:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}
