//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"tab", ActionFocusNext},
		{"j", ActionFocusNext},
		{"shift+tab", ActionFocusPrev},
		{"left", ActionPrev},
		{"h", ActionPrev},
		{"right", ActionNext},
		{"l", ActionNext},
		{"w", ActionToggleSize},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNext, []string{"x"}, "next", "carousel"},
		{ActionQuit, []string{"x", "q"}, "quit", "global"},
	})

	if got := r.Resolve("x"); got != ActionNext {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionNext)
	}
	if got := r.Resolve("q"); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want %q", got, ActionQuit)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
		{ActionQuit, []string{"q", "esc"}, "quit", "other"},
	})

	got := r.KeysFor(ActionQuit)
	want := []string{"q", "ctrl+c", "esc"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor(quit) = %v, want %v", got, want)
	}
	if keys := r.KeysFor(ActionHelp); keys != nil {
		t.Errorf("KeysFor(unbound) = %v, want nil", keys)
	}
}

func TestAll_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := make(map[string]string)
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, dup := seen[id]; dup {
				t.Errorf("key %q bound to both %q and %q", id, prev, b.Action)
			}
			seen[id] = string(b.Action)
		}
	}
}

func TestByContext(t *testing.T) {
	carousel := ByContext(All, "carousel")
	if len(carousel) != 2 {
		t.Fatalf("ByContext(carousel) returned %d bindings, want 2", len(carousel))
	}
	if carousel[0].Action != ActionPrev || carousel[1].Action != ActionNext {
		t.Errorf("ByContext(carousel) = %v, want prev then next", carousel)
	}
	if ByContext(All, "nope") != nil {
		t.Error("ByContext(unknown) should be nil")
	}
}

func TestHelp(t *testing.T) {
	h := NewHelp(All)

	short := h.ShortHelp()
	if len(short) != 5 {
		t.Errorf("ShortHelp() returned %d bindings, want 5", len(short))
	}
	for _, b := range short {
		if b.Help().Desc == "" {
			t.Error("short help binding without description")
		}
	}

	full := h.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() returned %d groups, want 3", len(full))
	}
	if got := full[0][0].Help().Key; got != "left" {
		t.Errorf("first carousel binding = %q, want %q", got, "left")
	}
}
