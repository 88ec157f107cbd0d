package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbaumgart/recap/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the style used for a place category.
func CategoryStyle(cat domain.PlaceCategory) lipgloss.Style {
	switch cat {
	case domain.PlaceHome:
		return StyleGreen
	case domain.PlaceWork:
		return StyleBlue
	case domain.PlaceGym:
		return StylePurple
	case domain.PlaceFood:
		return StyleYellow
	case domain.PlaceTransit:
		return StyleAqua
	case domain.PlaceErrand, domain.PlaceLeisure:
		return StyleFg
	default:
		return StyleDim
	}
}

// ProductivityIndicator returns a colored dot for a productivity flag.
func ProductivityIndicator(flag domain.ProductivityFlag) string {
	switch flag {
	case domain.Productive:
		return StyleGreen.Render("●")
	case domain.Unproductive:
		return StyleRed.Render("●")
	default:
		return StyleDim.Render("●")
	}
}

// ConfidencePct renders a confidence in [0,1] as a colored percentage.
func ConfidencePct(c float64) string {
	text := fmt.Sprintf("%3.0f%%", c*100)
	switch {
	case c >= 0.8:
		return StyleGreen.Render(text)
	case c >= 0.5:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
