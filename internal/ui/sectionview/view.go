package sectionview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/sections"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
	"github.com/llehouerou/showcase/internal/viewport"
)

const (
	cardDescLines = 3
	cardGap       = 1
	// frame is the width taken by the section border and its padding.
	frame = 2
)

// View renders the block into exactly width columns.
func (b *Block) View(width int, class viewport.Class, focused bool) string {
	inner := max(width-frame, 1)

	var parts []string
	if h := b.header(inner); h != "" {
		parts = append(parts, h)
	}

	layout := b.Section.Layout()
	switch {
	case len(b.Section.Items) == 0:
		if b.Section.Type != sections.Hero {
			parts = append(parts, styles.T().S().Subtle.Render("no items"))
		}
	case b.Section.Type == sections.Hero:
		parts = append(parts, b.heroLinks(inner))
	case b.Section.Type == sections.Stats:
		parts = append(parts, b.stats(inner, class))
	case layout.Behavior == sections.Slide && b.Carousel != nil:
		parts = appendNonEmpty(parts, b.cards(inner), b.nav(inner))
	case layout.Behavior == sections.Paged && b.Carousel != nil:
		parts = appendNonEmpty(parts, b.tiles(inner), b.nav(inner))
	case layout.Behavior == sections.Scroll && b.Marquee != nil:
		parts = append(parts, b.marquee(inner))
	default:
		parts = append(parts, b.list(inner))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return styles.SectionStyle(focused).Width(width - 1).Render(body)
}

func appendNonEmpty(parts []string, more ...string) []string {
	for _, p := range more {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func (b *Block) header(width int) string {
	s := styles.T().S()
	var lines []string
	title := string(b.Section.Title)
	if title != "" {
		if b.Section.Type == sections.Hero {
			lines = append(lines, styles.Headline(render.Truncate(title, width)))
		} else {
			title = icons.Format(b.Section.Type, title)
			lines = append(lines, s.Heading.Render(render.Truncate(title, width)))
		}
	}
	maxLines := 2
	if b.Section.Type == sections.Hero {
		maxLines = 3
	}
	for _, l := range render.Wrap(string(b.Section.Subtitle), width, maxLines) {
		lines = append(lines, s.Muted.Render(l))
	}
	return strings.Join(lines, "\n")
}

func (b *Block) heroLinks(width int) string {
	s := styles.T().S()
	var links []string
	for _, it := range b.Section.Items {
		label := string(it.Title)
		if label == "" {
			label = string(it.Link)
		}
		links = append(links, s.Link.Render("→ "+render.Truncate(label, width-2)))
	}
	return strings.Join(links, "\n")
}

func (b *Block) stats(width int, class viewport.Class) string {
	s := styles.T().S()
	cols := 4
	if class == viewport.Narrow {
		cols = 2
	}
	cols = min(cols, len(b.Section.Items))
	cellW := width / cols

	var rows []string
	for start := 0; start < len(b.Section.Items); start += cols {
		end := min(start+cols, len(b.Section.Items))
		cells := make([]string, 0, cols)
		for _, it := range b.Section.Items[start:end] {
			value := string(it.Value)
			label := string(it.Label)
			if label == "" {
				label = string(it.Title)
			}
			cells = append(cells, lipgloss.JoinVertical(lipgloss.Left,
				s.Value.Render(render.Center(value, cellW)),
				s.Muted.Render(render.Center(label, cellW)),
			))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (b *Block) cards(width int) string {
	visible := b.Carousel.Visible()
	n := len(visible)
	cardW := max((width-cardGap*(n-1))/n, 5)

	cards := make([]string, 0, n*2)
	for i, idx := range visible {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, card(b.Section.Items[idx], cardW))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// card renders one item boxed to exactly width columns. Every card has the
// same height so a row of them lines up.
func card(it sections.Item, width int) string {
	s := styles.T().S()
	// border (2) and padding (2)
	textW := max(width-4, 1)

	lines := []string{s.Title.Render(render.Fit(string(it.Title), textW))}
	desc := render.Wrap(string(it.Description), textW, cardDescLines)
	for i := range cardDescLines {
		line := ""
		if i < len(desc) {
			line = desc[i]
		}
		lines = append(lines, s.Base.Render(render.Pad(line, textW)))
	}
	link := ""
	if it.Link != "" {
		link = "→ " + string(it.Link)
	}
	lines = append(lines, s.Link.Render(render.Fit(link, textW)))

	return s.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (b *Block) tiles(width int) string {
	s := styles.T().S()
	perRow := max(b.Carousel.Config().PerPage.Narrow, 1)
	tileW := max((width-cardGap*(perRow-1))/perRow, 5)

	var tiles []string
	for i, idx := range b.Carousel.Visible() {
		if i > 0 {
			tiles = append(tiles, strings.Repeat(" ", cardGap))
		}
		label := render.Center(string(b.Section.Items[idx].Title), tileW-4)
		tiles = append(tiles, s.Card.Width(tileW-2).Render(s.Title.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// nav renders the dots line, with arrows when there is more than one page.
func (b *Block) nav(width int) string {
	s := styles.T().S()
	total := b.Carousel.TotalDots()
	if total <= 1 {
		return ""
	}
	active := b.Carousel.DotIndex()

	var dots []string
	for i := range total {
		if i == active {
			dots = append(dots, s.DotActive.Render("●"))
		} else {
			dots = append(dots, s.Dot.Render("○"))
		}
	}
	line := "‹  " + strings.Join(dots, " ") + "  ›"
	pad := max((width-lipgloss.Width(line))/2, 0)
	return strings.Repeat(" ", pad) + line
}

// marquee renders the visible slice of the scrolling strip. Each item takes
// ItemWidth px, converted to columns with the block's cell width.
func (b *Block) marquee(width int) string {
	s := styles.T().S()
	cfg := b.Marquee.Config()
	itemCols := max(int(cfg.ItemWidth)/b.cellWidth, 1)

	var cells []string
	for _, idx := range b.Marquee.Strip() {
		cells = append(cells, columns(render.Fit(string(b.Section.Items[idx].Title), itemCols))...)
	}
	if len(cells) == 0 {
		return ""
	}

	start := int(b.Marquee.Offset()) / b.cellWidth
	var out strings.Builder
	for i := range width {
		c := cells[(start+i)%len(cells)]
		switch {
		case c == "":
			// right half of a wide rune whose left half was cut
			if i == 0 {
				out.WriteByte(' ')
			}
		case runewidth.StringWidth(c) == 2 && i == width-1:
			out.WriteByte(' ')
		default:
			out.WriteString(c)
		}
	}
	return s.Base.Render(out.String())
}

// columns splits s into one entry per terminal column; wide runes are
// followed by an empty placeholder.
func columns(s string) []string {
	var out []string
	for _, r := range s {
		out = append(out, string(r))
		if runewidth.RuneWidth(r) == 2 {
			out = append(out, "")
		}
	}
	return out
}

func (b *Block) list(width int) string {
	s := styles.T().S()
	var lines []string
	for _, it := range b.Section.Items {
		title := string(it.Title)
		if title == "" {
			title = string(it.Label)
		}
		line := s.Title.Render("• " + render.Truncate(title, width-2))
		if it.Description != "" {
			rest := width - 2 - runewidth.StringWidth(render.Truncate(title, width-2)) - 2
			if rest > 3 {
				line += "  " + s.Muted.Render(render.Truncate(string(it.Description), rest))
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
