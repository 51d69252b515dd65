// Package testutil provides helpers for testing rendered views and driving
// bubbletea models from tests.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape codes so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// Lines strips styling, splits on newlines and drops trailing blank lines.
func Lines(view string) []string {
	lines := strings.Split(StripANSI(view), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MeasureWidth returns the visual width of s, ignoring escape codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// MaxWidth returns the widest line of a view.
func MaxWidth(view string) int {
	widest := 0
	for _, line := range Lines(view) {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(view, substr string) string {
	for _, line := range Lines(view) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any line of view contains substr.
func ContainsLine(view, substr string) bool {
	return FindLine(view, substr) != ""
}

// Key builds the KeyMsg bubbletea produces for a key string such as "q",
// "tab", "shift+tab" or "left".
func Key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Send feeds msgs through m.Update in order and returns the final model and
// every non-nil command produced along the way.
func Send(m tea.Model, msgs ...tea.Msg) (tea.Model, []tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, cmds
}

// Keys is Send for a sequence of key strings.
func Keys(m tea.Model, keys ...string) (tea.Model, []tea.Cmd) {
	msgs := make([]tea.Msg, len(keys))
	for i, k := range keys {
		msgs[i] = Key(k)
	}
	return Send(m, msgs...)
}
