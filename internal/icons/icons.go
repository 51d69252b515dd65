// Package icons maps section types to the glyph shown before their title.
package icons

import "github.com/llehouerou/showcase/internal/sections"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

type set map[sections.Kind]string

var (
	nerdIcons = set{
		sections.Hero:         "\uf135", // nf-fa-rocket
		sections.Stats:        "\uf080", // nf-fa-bar_chart
		sections.Services:     "\uf085", // nf-fa-cogs
		sections.Cards:        "\uf075", // nf-fa-comment
		sections.Portfolio:    "\uf0b1", // nf-fa-briefcase
		sections.Blog:         "\uf1ea", // nf-fa-newspaper_o
		sections.Technologies: "\uf121", // nf-fa-code
		sections.Partners:     "\uf2b5", // nf-fa-handshake_o
		sections.Contact:      "\uf0e0", // nf-fa-envelope
	}

	unicodeIcons = set{
		sections.Hero:         "★",
		sections.Stats:        "▲",
		sections.Services:     "◆",
		sections.Cards:        "❝",
		sections.Portfolio:    "■",
		sections.Blog:         "¶",
		sections.Technologies: "⚙",
		sections.Partners:     "◎",
		sections.Contact:      "✉",
	}

	// current holds the active icon set; nil means no icons.
	current set
)

// Init selects the icon style. Unknown styles disable icons.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = nil
	}
}

// For returns the icon of a section type, or "" when icons are off or the
// type has none.
func For(kind sections.Kind) string {
	return current[kind]
}

// Format prefixes title with the section type's icon.
func Format(kind sections.Kind, title string) string {
	icon := For(kind)
	if icon == "" {
		return title
	}
	return icon + " " + title
}
