package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "focus", "carousel"
}

// Key converts b into a bubbles key binding for help rendering.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},
	{ActionReload, []string{"r"}, "reload", "global"},
	{ActionToggleSize, []string{"w"}, "wide/narrow", "global"},

	// Focus
	{ActionFocusNext, []string{"tab", "j", "down"}, "next section", "focus"},
	{ActionFocusPrev, []string{"shift+tab", "k", "up"}, "prev section", "focus"},
	{ActionFocusFirst, []string{"g", "home"}, "first section", "focus"},
	{ActionFocusLast, []string{"G", "end"}, "last section", "focus"},

	// Carousel
	{ActionPrev, []string{"left", "h"}, "previous", "carousel"},
	{ActionNext, []string{"right", "l"}, "next", "carousel"},
}

// ByContext returns the bindings of one context, in order.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help implements help.KeyMap over a binding set.
type Help struct {
	bindings []Binding
}

// NewHelp creates a help key map from bindings.
func NewHelp(bindings []Binding) Help {
	return Help{bindings: bindings}
}

// ShortHelp returns the carousel, focus and quit bindings.
func (h Help) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range h.bindings {
		switch b.Action {
		case ActionPrev, ActionNext, ActionFocusNext, ActionHelp, ActionQuit:
			out = append(out, b.Key())
		}
	}
	return out
}

// FullHelp groups every binding by context.
func (h Help) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range []string{"carousel", "focus", "global"} {
		var group []key.Binding
		for _, b := range ByContext(h.bindings, ctx) {
			group = append(group, b.Key())
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
