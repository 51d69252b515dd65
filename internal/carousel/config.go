// Package carousel implements the slider engine behind every rotating page
// section: a windowed (wrap-around) mode, a paginated (clamped) mode and a
// continuously scrolling marquee.
package carousel

import (
	"time"

	"github.com/llehouerou/showcase/internal/viewport"
)

const (
	DefaultAutoAdvanceInterval = 5 * time.Second
	DefaultResumeDelay         = 3 * time.Second
	DefaultSwipeThreshold      = 50 // px
)

// Mode selects how position moves.
type Mode int

const (
	// Windowed steps one item at a time and wraps around.
	Windowed Mode = iota
	// Paginated steps a whole narrow page at a time and clamps at the ends.
	Paginated
)

func (m Mode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Paginated:
		return "paginated"
	}
	return "unknown"
}

// PerPage holds how many items are visible at once for each viewport class.
type PerPage struct {
	Wide   int
	Narrow int
}

// For returns the page size for class.
func (p PerPage) For(class viewport.Class) int {
	if class == viewport.Narrow {
		return p.Narrow
	}
	return p.Wide
}

// Config is immutable for the lifetime of a carousel, except TotalItems
// which can be changed through SetTotal.
type Config struct {
	Mode                Mode
	TotalItems          int
	PerPage             PerPage
	AutoAdvanceInterval time.Duration
	ResumeDelay         time.Duration
	SwipeThreshold      int
}

// withDefaults fills zero or negative timing and threshold values.
func (c Config) withDefaults() Config {
	if c.TotalItems < 0 {
		c.TotalItems = 0
	}
	if c.AutoAdvanceInterval <= 0 {
		c.AutoAdvanceInterval = DefaultAutoAdvanceInterval
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = DefaultResumeDelay
	}
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = DefaultSwipeThreshold
	}
	return c
}

// inert reports whether navigation is disabled: nothing to show, or a
// narrow page size that would divide by zero.
func (c Config) inert() bool {
	return c.TotalItems <= 0 || c.PerPage.Narrow <= 0
}

// canAutoAdvance reports whether the collection overflows a narrow page.
func (c Config) canAutoAdvance() bool {
	return !c.inert() && c.TotalItems > c.PerPage.Narrow
}
