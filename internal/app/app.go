package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/sched"
	"github.com/llehouerou/showcase/internal/ui/cursor"
	"github.com/llehouerou/showcase/internal/ui/sectionview"
	"github.com/llehouerou/showcase/internal/viewport"
)

const (
	headerHeight = 2 // title bar + separator
	scrollMargin = 1
	// DefaultCellWidth is the assumed width of one terminal column in px.
	DefaultCellWidth = 8
)

// Options configures a preview model.
type Options struct {
	Load       Loader
	Sched      sched.Scheduler // nil renders a static page
	Logger     *zap.Logger
	Carousel   carousel.Config
	Marquee    carousel.MarqueeConfig
	Breakpoint int // px
	CellWidth  int // px per column
	Now        func() time.Time
}

// Model is the root preview model.
type Model struct {
	ctx        context.Context
	load       Loader
	log        *zap.Logger
	engines    sectionview.Engines
	classifier *viewport.Classifier

	record  content.Record
	page    *sectionview.Page
	loading bool
	err     error

	cursor   cursor.Cursor
	keys     *keymap.Resolver
	help     help.Model
	forced   bool // viewport class pinned by the toggle key
	dragging int  // block index of the in-flight gesture, -1 when none

	now    func() time.Time
	Width  int
	Height int
}

// New creates a preview model. The page is loaded by Init.
func New(ctx context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = viewport.DefaultBreakpoint
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	// Wide until the first WindowSizeMsg arrives.
	classifier := viewport.NewClassifier(breakpoint, breakpoint)

	return Model{
		ctx:  ctx,
		load: opts.Load,
		log:  log,
		engines: sectionview.Engines{
			Sched:      opts.Sched,
			Classifier: classifier,
			Carousel:   opts.Carousel,
			Marquee:    opts.Marquee,
			CellWidth:  cellWidth,
		},
		classifier: classifier,
		loading:    true,
		cursor:     cursor.New(scrollMargin),
		keys:       keymap.NewResolver(keymap.All),
		help:       help.New(),
		dragging:   -1,
		now:        now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadCmd(m.ctx, m.load)
}

// Record returns the previewed record.
func (m Model) Record() content.Record { return m.record }

// Page returns the rendered page, nil until loaded.
func (m Model) Page() *sectionview.Page { return m.page }

// Class returns the current viewport class.
func (m Model) Class() viewport.Class { return m.classifier.Class() }

// Focused returns the index of the focused section.
func (m Model) Focused() int { return m.cursor.Pos() }

// Err returns the last load error.
func (m Model) Err() error { return m.err }

// Close tears down every carousel and marquee of the current page.
func (m *Model) Close() {
	m.page.Close()
}

func (m Model) cellWidth() int { return m.engines.CellWidth }

// pageWidth is the column count the page is laid out for. A pinned narrow
// class renders at the breakpoint width so the terminal shows the narrow
// layout even when it is wider.
func (m Model) pageWidth() int {
	w := m.Width
	if m.forced && m.classifier.Class() == viewport.Narrow {
		w = min(w, m.classifier.Width()/m.cellWidth())
	}
	return max(w, 1)
}

func (m Model) bodyHeight() int {
	return max(m.Height-headerHeight-m.footerHeight(), 1)
}
