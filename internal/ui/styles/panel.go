package styles

import "github.com/charmbracelet/lipgloss"

// SectionStyle returns the frame drawn around a section, highlighted when
// the section has keyboard focus.
func SectionStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(border).
		PaddingLeft(1)
}
