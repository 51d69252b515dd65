package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// View renders the preview.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}
	s := styles.T().S()

	var body string
	switch {
	case m.err != nil:
		body = s.Error.Render(render.Truncate(errmsg.Format(errmsg.OpPreviewLoad, m.err), m.Width))
	case m.loading && m.page == nil:
		body = s.Muted.Render("Loading…")
	case m.page.Len() == 0:
		body = s.Muted.Render("This page has no sections.")
	default:
		body = m.renderBody()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		s.Subtle.Render(render.Separator(m.Width)),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	r := m.record

	left := s.Title.Render(render.Truncate(r.Title, m.Width/2))
	if r.Slug != "" {
		left += s.Muted.Render(fmt.Sprintf("  /%s/%s", r.Kind.Plural(), r.Slug))
	}
	if r.ID != "" && !r.Published {
		left += s.Error.Render("  draft")
	}

	var info []string
	if !r.UpdatedAt.IsZero() {
		info = append(info, "updated "+humanize.RelTime(r.UpdatedAt, m.now(), "ago", "from now"))
	}
	class := m.classifier.Class().String()
	if m.forced {
		class += " (pinned)"
	}
	info = append(info, class)
	right := s.Subtle.Render(strings.Join(info, " · "))

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.Width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderBlocks renders every block at the page width.
func (m Model) renderBlocks() []string {
	blocks := m.page.Blocks()
	out := make([]string, len(blocks))
	width := m.pageWidth()
	class := m.classifier.Class()
	for i, b := range blocks {
		out[i] = b.View(width, class, i == m.cursor.Pos()) + "\n"
	}
	return out
}

func (m Model) blockHeights() []int {
	rendered := m.renderBlocks()
	heights := make([]int, len(rendered))
	for i, r := range rendered {
		heights[i] = lipgloss.Height(r)
	}
	return heights
}

func (m Model) renderBody() string {
	var lines []string
	for _, r := range m.renderBlocks() {
		lines = append(lines, strings.Split(r, "\n")...)
	}
	start, end := m.cursor.VisibleLines(len(lines), m.bodyHeight())
	visible := lines[start:end]
	for len(visible) < m.bodyHeight() {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

func (m Model) renderFooter() string {
	return m.help.View(keymap.NewHelp(keymap.All))
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}
