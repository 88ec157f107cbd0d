package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/mbaumgart/recap/internal/domain"
)

func recapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promoteForm collects everything needed to turn a disambiguation candidate
// into a saved place.
func promoteForm(alternatives []domain.PlaceAlternative, pick *string, label *string, category *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(alternatives))
	for _, alt := range alternatives {
		text := alt.Name
		if alt.Vicinity != "" {
			text = fmt.Sprintf("%s (%s)", alt.Name, alt.Vicinity)
		}
		options = append(options, huh.NewOption(text, alt.ExternalID))
	}

	categories := []huh.Option[string]{
		huh.NewOption("Home", string(domain.PlaceHome)),
		huh.NewOption("Work", string(domain.PlaceWork)),
		huh.NewOption("Gym", string(domain.PlaceGym)),
		huh.NewOption("Food", string(domain.PlaceFood)),
		huh.NewOption("Errand", string(domain.PlaceErrand)),
		huh.NewOption("Leisure", string(domain.PlaceLeisure)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which place were you at?").
				Options(options...).
				Value(pick),
			huh.NewInput().
				Title("Label (blank keeps the place name)").
				Value(label),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(category),
		),
	).WithTheme(recapHuhTheme()).WithShowHelp(false)
}
