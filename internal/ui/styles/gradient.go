package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Headline renders a hero title in bold with a horizontal gradient from the
// theme's primary to secondary color.
func Headline(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary, true)
}

// Gradient colors each grapheme of text along a blend from one color to
// another. Non-hex colors fall back to a flat render.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	c1, ok1 := hexColor(from)
	c2, ok2 := hexColor(to)
	if len(clusters) == 1 || !ok1 || !ok2 {
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		blended := c1.BlendHcl(c2, float64(i)/last).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(blended.Hex())).Bold(bold)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

func hexColor(c lipgloss.Color) (colorful.Color, bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}
