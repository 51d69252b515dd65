package testutil

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	got := Lines("\x1b[1mone\x1b[0m\ntwo\n\n  \n")
	if !slices.Equal(got, []string{"one", "two"}) {
		t.Errorf("Lines = %q", got)
	}
}

func TestMaxWidth(t *testing.T) {
	if got := MaxWidth("ab\n\x1b[31mabcd\x1b[0m\nabc"); got != 4 {
		t.Errorf("MaxWidth = %d, want 4", got)
	}
}

func TestFindLine(t *testing.T) {
	view := "header\n● ○ ○\nfooter"
	if got := FindLine(view, "●"); got != "● ○ ○" {
		t.Errorf("FindLine = %q", got)
	}
	if ContainsLine(view, "missing") {
		t.Error("ContainsLine found a missing substring")
	}
}

func TestKey(t *testing.T) {
	for _, k := range []string{"tab", "shift+tab", "left", "right", "q", "?", "ctrl+c", "G"} {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

type counter struct{ n int }

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		c.n++
		if c.n == 2 {
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestKeys(t *testing.T) {
	m, cmds := Keys(counter{}, "a", "b", "c")
	if got := m.(counter).n; got != 3 {
		t.Errorf("n = %d, want 3", got)
	}
	if len(cmds) != 1 {
		t.Errorf("cmds = %d, want 1", len(cmds))
	}
}
