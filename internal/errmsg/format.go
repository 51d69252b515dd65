// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Content operations
	OpContentList    Op = "list content"
	OpContentLoad    Op = "load content"
	OpContentCreate  Op = "create content"
	OpContentUpdate  Op = "update content"
	OpContentDelete  Op = "delete content"
	OpContentReorder Op = "reorder content"

	// Industry templates
	OpTemplateApply Op = "apply industry template"
	OpTemplateLoad  Op = "load industry templates"

	// Seeding
	OpSeed Op = "seed content"

	// Preview
	OpPreviewLoad Op = "load preview"

	// Server
	OpServe Op = "serve api"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Wrap annotates err with op, keeping it inspectable with errors.Is.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
