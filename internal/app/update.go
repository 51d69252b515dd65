package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui/sectionview"
	"github.com/llehouerou/showcase/internal/viewport"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerMsg:
		// Engine state changes inside the callback; the next View picks it up.
		msg()
		return m, nil

	case LoadedMsg:
		return m.handleLoaded(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.err = msg.Err
		m.log.Error(errmsg.Format(errmsg.OpPreviewLoad, msg.Err))
		return m, nil
	}
	m.err = nil
	m.page.Close()
	m.record = msg.Record
	m.page = sectionview.NewPage(msg.Sections, m.engines)
	m.cursor.ClampToBounds(m.page.Len())
	m.dragging = -1
	m.follow()
	m.log.Debug("preview loaded",
		zap.String("kind", string(msg.Record.Kind)),
		zap.String("slug", msg.Record.Slug),
		zap.Int("sections", len(msg.Sections)),
	)
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.help.Width = msg.Width
	if !m.forced {
		m.classifier.Resize(msg.Width * m.cellWidth())
	}
	m.follow()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.page.Len()
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.Close()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionReload:
		m.loading = true
		return m, LoadCmd(m.ctx, m.load)
	case keymap.ActionToggleSize:
		m.toggleSize()
	case keymap.ActionFocusNext:
		m.cursor.Next(n)
	case keymap.ActionFocusPrev:
		m.cursor.Prev(n)
	case keymap.ActionFocusFirst:
		m.cursor.First()
	case keymap.ActionFocusLast:
		m.cursor.Last(n)
	case keymap.ActionNext:
		if b := m.page.Block(m.cursor.Pos()); b != nil {
			b.Next()
		}
	case keymap.ActionPrev:
		if b := m.page.Block(m.cursor.Pos()); b != nil {
			b.Prev()
		}
	default:
		return m, nil
	}
	m.follow()
	return m, nil
}

// toggleSize pins the viewport to the opposite class. The classifier then
// ignores terminal resizes until the next toggle back to the real class.
func (m *Model) toggleSize() {
	actual := viewport.Classify(m.Width*m.cellWidth(), m.classifier.Breakpoint())
	target := viewport.Narrow
	if m.classifier.Class() == viewport.Narrow {
		target = viewport.Wide
	}
	m.forced = target != actual
	switch {
	case !m.forced:
		m.classifier.Resize(m.Width * m.cellWidth())
	case target == viewport.Narrow:
		m.classifier.Resize(m.classifier.Breakpoint() - m.cellWidth())
	default:
		m.classifier.Resize(m.classifier.Breakpoint())
	}
}

// handleMouse turns left-button drags over a carousel into swipe gestures.
// Column positions are converted to px so the swipe threshold applies as is.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := msg.X * m.cellWidth()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.cursor.Prev(m.page.Len())
			m.follow()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.cursor.Next(m.page.Len())
			m.follow()
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		idx := m.blockAt(msg.Y)
		b := m.page.Block(idx)
		if b == nil {
			return m, nil
		}
		m.cursor.Jump(idx, m.page.Len())
		if b.Interactive() {
			b.Carousel.GestureStart(x)
			m.dragging = idx
		}

	case tea.MouseActionMotion:
		if b := m.page.Block(m.dragging); b != nil {
			b.Carousel.GestureMove(x)
		}

	case tea.MouseActionRelease:
		if b := m.page.Block(m.dragging); b != nil {
			b.Carousel.GestureMove(x)
			b.Carousel.GestureEnd()
		}
		m.dragging = -1
	}
	return m, nil
}

// blockAt maps a screen row to the index of the block drawn there, or -1.
func (m Model) blockAt(y int) int {
	line := y - headerHeight
	if line < 0 || line >= m.bodyHeight() {
		return -1
	}
	line += m.cursor.Offset()
	for i, h := range m.blockHeights() {
		if line < h {
			return i
		}
		line -= h
	}
	return -1
}

func (m *Model) follow() {
	m.cursor.Follow(m.blockHeights(), m.bodyHeight())
}
