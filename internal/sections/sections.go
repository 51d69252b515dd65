// Package sections decodes the page-section blocks stored in a record's
// content and maps each section type to its carousel behavior.
package sections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/content"
)

// Kind is a section type.
type Kind string

const (
	Hero         Kind = "hero"
	Stats        Kind = "stats"
	Services     Kind = "services"
	Cards        Kind = "cards"
	Portfolio    Kind = "portfolio"
	Blog         Kind = "blog"
	Technologies Kind = "technologies"
	Partners     Kind = "partners"
	Contact      Kind = "contact"
)

// Kinds lists the known section types.
var Kinds = []Kind{Hero, Stats, Services, Cards, Portfolio, Blog, Technologies, Partners, Contact}

// Behavior is how a section presents its items.
type Behavior int

const (
	Static Behavior = iota
	Slide
	Paged
	Scroll
)

func (b Behavior) String() string {
	switch b {
	case Static:
		return "static"
	case Slide:
		return "windowed"
	case Paged:
		return "paginated"
	case Scroll:
		return "marquee"
	}
	return "unknown"
}

// Layout pairs a behavior with its page sizes.
type Layout struct {
	Behavior Behavior
	PerPage  carousel.PerPage
}

// LayoutFor returns the layout of a section type. Unknown types are static.
func LayoutFor(k Kind) Layout {
	switch k {
	case Cards, Portfolio, Blog, Services:
		return Layout{Behavior: Slide, PerPage: carousel.PerPage{Wide: 3, Narrow: 1}}
	case Technologies:
		return Layout{Behavior: Paged, PerPage: carousel.PerPage{Wide: 4, Narrow: 4}}
	case Partners:
		return Layout{Behavior: Scroll}
	default:
		return Layout{Behavior: Static}
	}
}

// Text accepts JSON strings and numbers, so stats can be written either way.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

// Item is one entry of a section (card, stat, logo...).
type Item struct {
	Title       Text `json:"title,omitempty"`
	Description Text `json:"description,omitempty"`
	Image       Text `json:"image,omitempty"`
	Link        Text `json:"link,omitempty"`
	Value       Text `json:"value,omitempty"`
	Label       Text `json:"label,omitempty"`
}

// Section is one block of a page.
type Section struct {
	Type     Kind   `json:"type"`
	Title    Text   `json:"title,omitempty"`
	Subtitle Text   `json:"subtitle,omitempty"`
	Items    []Item `json:"items,omitempty"`
}

// Layout returns the section's layout.
func (s Section) Layout() Layout { return LayoutFor(s.Type) }

// Known reports whether the section type is recognized.
func (s Section) Known() bool {
	for _, k := range Kinds {
		if s.Type == k {
			return true
		}
	}
	return false
}

// Parse decodes content["sections"]. Missing sections yield an empty slice.
func Parse(c map[string]any) ([]Section, error) {
	raw, ok := c["sections"]
	if !ok || raw == nil {
		return nil, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: sections: %v", content.ErrInvalid, err)
	}
	return decode(b)
}

// ParseJSON decodes a JSON array of sections.
func ParseJSON(b []byte) ([]Section, error) {
	return decode(b)
}

func decode(b []byte) ([]Section, error) {
	var out []Section
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: sections: %v", content.ErrInvalid, err)
	}
	for i := range out {
		out[i].Type = Kind(strings.ToLower(strings.TrimSpace(string(out[i].Type))))
		if out[i].Type == "" {
			return nil, fmt.Errorf("%w: section %d has no type", content.ErrInvalid, i)
		}
	}
	return out, nil
}

// CarouselConfig builds the engine config for a sliding or paged section.
// Timing fields come from base. ok is false for static and marquee sections.
func CarouselConfig(s Section, base carousel.Config) (carousel.Config, bool) {
	l := s.Layout()
	cfg := base
	cfg.TotalItems = len(s.Items)
	cfg.PerPage = l.PerPage
	switch l.Behavior {
	case Slide:
		cfg.Mode = carousel.Windowed
	case Paged:
		cfg.Mode = carousel.Paginated
	default:
		return carousel.Config{}, false
	}
	return cfg, true
}

// MarqueeConfig builds the marquee config for a scrolling section.
func MarqueeConfig(s Section, base carousel.MarqueeConfig) (carousel.MarqueeConfig, bool) {
	if s.Layout().Behavior != Scroll {
		return carousel.MarqueeConfig{}, false
	}
	cfg := base
	cfg.Items = len(s.Items)
	return cfg, true
}
