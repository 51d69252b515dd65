// Package keymap defines key bindings and action dispatch for the preview.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionReload     Action = "reload"
	ActionToggleSize Action = "toggle_size" // flip between wide and narrow layouts

	// Section focus
	ActionFocusNext  Action = "focus_next"
	ActionFocusPrev  Action = "focus_prev"
	ActionFocusFirst Action = "focus_first"
	ActionFocusLast  Action = "focus_last"

	// Carousel actions
	ActionNext Action = "carousel_next"
	ActionPrev Action = "carousel_prev"
)
