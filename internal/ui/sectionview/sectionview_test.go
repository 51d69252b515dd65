package sectionview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/sched"
	"github.com/llehouerou/showcase/internal/sections"
	"github.com/llehouerou/showcase/internal/ui/testutil"
	"github.com/llehouerou/showcase/internal/viewport"
)

func items(prefix string, n int) []sections.Item {
	out := make([]sections.Item, n)
	for i := range out {
		out[i] = sections.Item{
			Title:       sections.Text(fmt.Sprintf("%s %d", prefix, i+1)),
			Description: "Short description",
		}
	}
	return out
}

func testPage(m *sched.Manual, cl *viewport.Classifier) *Page {
	return NewPage([]sections.Section{
		{Type: sections.Hero, Title: "Build faster", Subtitle: "We ship software"},
		{Type: sections.Cards, Title: "Work", Items: items("Case", 5)},
		{Type: sections.Technologies, Title: "Stack", Items: items("Tech", 6)},
		{Type: sections.Partners, Title: "Partners", Items: items("Logo", 3)},
	}, Engines{
		Sched:      m,
		Classifier: cl,
		Marquee:    carousel.MarqueeConfig{ItemWidth: 80},
		CellWidth:  8,
	})
}

func TestNewPage_Engines(t *testing.T) {
	m := sched.NewManual()
	cl := viewport.NewClassifier(viewport.DefaultBreakpoint, 1200)
	p := testPage(m, cl)
	defer p.Close()

	require.Equal(t, 4, p.Len())
	assert.Nil(t, p.Block(0).Carousel)
	assert.Nil(t, p.Block(0).Marquee)

	require.NotNil(t, p.Block(1).Carousel)
	assert.Equal(t, carousel.Windowed, p.Block(1).Carousel.Config().Mode)
	assert.True(t, p.Block(1).Interactive())

	require.NotNil(t, p.Block(2).Carousel)
	assert.Equal(t, carousel.Paginated, p.Block(2).Carousel.Config().Mode)

	require.NotNil(t, p.Block(3).Marquee)
	assert.False(t, p.Block(3).Interactive())

	assert.Nil(t, p.Block(4))
	assert.Nil(t, p.Block(-1))
	assert.Equal(t, 2, cl.Subscribers())
}

func TestPage_AutoAdvanceFollowsClassifier(t *testing.T) {
	m := sched.NewManual()
	cl := viewport.NewClassifier(viewport.DefaultBreakpoint, 1200)
	p := testPage(m, cl)
	defer p.Close()
	cards := p.Block(1).Carousel

	m.Advance(6 * time.Second)
	assert.Equal(t, 0, cards.Position(), "wide layout never auto-advances")

	cl.Resize(400)
	m.Advance(5 * time.Second)
	assert.Equal(t, 1, cards.Position())
}

func TestPage_CloseReleasesEverything(t *testing.T) {
	m := sched.NewManual()
	cl := viewport.NewClassifier(viewport.DefaultBreakpoint, 400)
	p := testPage(m, cl)
	require.Positive(t, m.Pending())

	p.Close()
	p.Close()

	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 0, cl.Subscribers())
	assert.True(t, p.Block(1).Carousel.Closed())
}

func TestNilPage(t *testing.T) {
	var p *Page
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Block(0))
	p.Close()
}

func TestView_CardsPerClass(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Cards, Title: "Work", Items: items("Case", 5)}, Engines{})
	defer b.Close()

	wide := b.View(90, viewport.Wide, false)
	for _, title := range []string{"Case 1", "Case 2", "Case 3"} {
		assert.True(t, testutil.ContainsLine(wide, title), "wide view should show %q", title)
	}
	assert.False(t, testutil.ContainsLine(wide, "Case 4"))

	b.Carousel.SetViewport(viewport.Narrow)
	narrow := b.View(40, viewport.Narrow, false)
	assert.True(t, testutil.ContainsLine(narrow, "Case 1"))
	assert.False(t, testutil.ContainsLine(narrow, "Case 2"))
}

func TestView_WindowWraps(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Cards, Items: items("Case", 5)}, Engines{})
	defer b.Close()

	b.Prev()
	view := b.View(90, viewport.Wide, false)
	assert.True(t, testutil.ContainsLine(view, "Case 5"))
	assert.True(t, testutil.ContainsLine(view, "Case 1"))
	assert.True(t, testutil.ContainsLine(view, "Case 2"))
}

func TestView_Dots(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Cards, Items: items("Case", 3)}, Engines{})
	defer b.Close()

	line := testutil.FindLine(b.View(60, viewport.Wide, false), "‹")
	assert.Contains(t, line, "● ○ ○")

	b.Next()
	line = testutil.FindLine(b.View(60, viewport.Wide, false), "‹")
	assert.Contains(t, line, "○ ● ○")
}

func TestView_SinglePageHasNoNav(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Cards, Items: items("Case", 1)}, Engines{})
	defer b.Close()

	assert.False(t, b.Interactive())
	assert.False(t, testutil.ContainsLine(b.View(60, viewport.Wide, false), "‹"))
}

func TestView_PagedShowsNarrowPage(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Technologies, Items: items("Tech", 6)}, Engines{})
	defer b.Close()

	view := b.View(100, viewport.Wide, false)
	assert.True(t, testutil.ContainsLine(view, "Tech 4"))
	assert.False(t, testutil.ContainsLine(view, "Tech 5"))

	b.Next()
	b.Next()
	view = b.View(100, viewport.Wide, false)
	assert.True(t, testutil.ContainsLine(view, "Tech 5"))
	assert.True(t, testutil.ContainsLine(view, "Tech 6"))
	assert.False(t, testutil.ContainsLine(view, "Tech 1"))
}

func TestView_MarqueeScrolls(t *testing.T) {
	m := sched.NewManual()
	b := NewBlock(sections.Section{Type: sections.Partners, Items: items("Logo", 3)}, Engines{
		Sched:     m,
		Marquee:   carousel.MarqueeConfig{ItemWidth: 80, Velocity: 8, FrameInterval: 10 * time.Millisecond},
		CellWidth: 8,
	})
	defer b.Close()

	first := testutil.FindLine(b.View(40, viewport.Wide, false), "Logo")
	require.NotEmpty(t, first)
	assert.True(t, strings.Contains(first, "Logo 1"))

	// 10 frames of 8px is 80px: exactly one item.
	m.Advance(100 * time.Millisecond)
	second := testutil.FindLine(b.View(40, viewport.Wide, false), "Logo")
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(strings.TrimLeft(second, "│ "), "Logo 2"))
}

func TestView_MarqueeWidth(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Partners, Items: []sections.Item{{Title: "日本"}, {Title: "Acme"}}}, Engines{
		Marquee:   carousel.MarqueeConfig{ItemWidth: 40},
		CellWidth: 8,
	})
	defer b.Close()

	for _, w := range []int{10, 23, 50} {
		assert.LessOrEqual(t, testutil.MaxWidth(b.View(w, viewport.Wide, false)), w)
	}
}

func TestView_Stats(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Stats, Items: []sections.Item{
		{Value: "120+", Label: "Projects"},
		{Value: "15", Label: "Years"},
		{Value: "40", Label: "Engineers"},
	}}, Engines{})

	view := b.View(80, viewport.Wide, false)
	line := testutil.FindLine(view, "120+")
	assert.Contains(t, line, "15")
	assert.Contains(t, line, "40")

	narrow := b.View(40, viewport.Narrow, false)
	assert.NotContains(t, testutil.FindLine(narrow, "120+"), "40")
}

func TestView_HeroAndList(t *testing.T) {
	hero := NewBlock(sections.Section{
		Type:     sections.Hero,
		Title:    "Build faster",
		Subtitle: "We ship software",
		Items:    []sections.Item{{Title: "Contact us", Link: "/contact"}},
	}, Engines{})
	view := hero.View(60, viewport.Wide, true)
	assert.True(t, testutil.ContainsLine(view, "Build faster"))
	assert.True(t, testutil.ContainsLine(view, "We ship software"))
	assert.True(t, testutil.ContainsLine(view, "→ Contact us"))

	contact := NewBlock(sections.Section{Type: sections.Contact, Items: []sections.Item{
		{Title: "Email", Description: "hello@example.com"},
	}}, Engines{})
	assert.True(t, testutil.ContainsLine(contact.View(60, viewport.Wide, false), "hello@example.com"))
}

func TestView_EmptySection(t *testing.T) {
	b := NewBlock(sections.Section{Type: sections.Cards, Title: "Work"}, Engines{})
	defer b.Close()
	assert.True(t, testutil.ContainsLine(b.View(40, viewport.Wide, false), "no items"))
}

func TestView_FitsWidth(t *testing.T) {
	m := sched.NewManual()
	cl := viewport.NewClassifier(viewport.DefaultBreakpoint, 1200)
	p := testPage(m, cl)
	defer p.Close()

	for _, b := range p.Blocks() {
		assert.LessOrEqual(t, testutil.MaxWidth(b.View(100, viewport.Wide, false)), 100, b.Section.Type)
	}
}
