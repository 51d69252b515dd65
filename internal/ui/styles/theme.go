// Package styles holds the preview color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the preview.
type Theme struct {
	// Brand colors
	Primary   lipgloss.Color // hero gradient start, active dots
	Secondary lipgloss.Color // hero gradient end, stat values

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for section rendering.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style // card titles
	Heading   lipgloss.Style // section titles
	Value     lipgloss.Style // stat figures
	Link      lipgloss.Style
	DotActive lipgloss.Style
	Dot       lipgloss.Style
	Card      lipgloss.Style
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#38bdf8"),
	Secondary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#d4d4d4"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	Border:      lipgloss.Color("#4a4a4a"),
	BorderFocus: lipgloss.Color("#38bdf8"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     base.Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Value:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(t.Primary).Underline(true),
		DotActive: lipgloss.NewStyle().Foreground(t.Primary),
		Dot:       lipgloss.NewStyle().Foreground(t.FgSubtle),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
