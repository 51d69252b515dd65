//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"

	"github.com/llehouerou/showcase/internal/sections"
)

func TestInit(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"nerd", "\uf121"},
		{"unicode", "⚙"},
		{"none", ""},
		{"", ""},
		{"NERD", ""}, // case sensitive; config lowercases
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := For(sections.Technologies); got != tt.want {
				t.Errorf("For(technologies) = %q, want %q", got, tt.want)
			}
		})
	}

	Init("none")
}

func TestEveryKindHasIcon(t *testing.T) {
	for _, style := range []string{"nerd", "unicode"} {
		Init(style)
		for _, k := range sections.Kinds {
			if For(k) == "" {
				t.Errorf("%s style: no icon for %q", style, k)
			}
		}
	}
	Init("none")
}

func TestFormat(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Format(sections.Contact, "Let's talk"); got != "✉ Let's talk" {
		t.Errorf("Format(contact) = %q", got)
	}
	if got := Format("custom", "Other"); got != "Other" {
		t.Errorf("Format(unknown) = %q, want plain title", got)
	}

	Init("none")
	if got := Format(sections.Contact, "Let's talk"); got != "Let's talk" {
		t.Errorf("Format with icons off = %q", got)
	}
}
