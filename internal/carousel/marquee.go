package carousel

import (
	"math"
	"time"

	"github.com/llehouerou/showcase/internal/sched"
)

const (
	DefaultMarqueeVelocity = 0.5 // px per frame
	DefaultFrameInterval   = 16 * time.Millisecond
	DefaultItemWidth       = 160 // px
)

// MarqueeConfig describes a continuously scrolling strip.
type MarqueeConfig struct {
	Items         int
	ItemWidth     float64       // px
	Velocity      float64       // px per frame
	FrameInterval time.Duration // delay between frames
}

func (c MarqueeConfig) withDefaults() MarqueeConfig {
	if c.Items < 0 {
		c.Items = 0
	}
	if c.ItemWidth <= 0 {
		c.ItemWidth = DefaultItemWidth
	}
	if c.Velocity <= 0 {
		c.Velocity = DefaultMarqueeVelocity
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = DefaultFrameInterval
	}
	return c
}

// Marquee scrolls a duplicated item strip leftward at constant velocity.
// It ignores gestures and never pauses.
type Marquee struct {
	cfg    MarqueeConfig
	sched  sched.Scheduler
	offset float64
	frame  sched.Timer
	closed bool
}

// NewMarquee creates a marquee and schedules its first frame. An empty
// strip or a nil scheduler never animates.
func NewMarquee(cfg MarqueeConfig, s sched.Scheduler) *Marquee {
	m := &Marquee{cfg: cfg.withDefaults(), sched: s}
	m.schedule()
	return m
}

// Config returns the effective configuration.
func (m *Marquee) Config() MarqueeConfig { return m.cfg }

// Offset returns the current scroll offset in px, always in [0, LoopWidth).
func (m *Marquee) Offset() float64 { return m.offset }

// LoopWidth is the width of one copy of the strip.
func (m *Marquee) LoopWidth() float64 {
	return m.cfg.ItemWidth * float64(m.cfg.Items)
}

// Running reports whether a frame is scheduled.
func (m *Marquee) Running() bool { return m.frame != nil }

// Strip returns the item indices in render order: the list twice, so the
// seam at LoopWidth is never visible.
func (m *Marquee) Strip() []int {
	out := make([]int, 0, m.cfg.Items*2)
	for range 2 {
		for i := range m.cfg.Items {
			out = append(out, i)
		}
	}
	return out
}

// Step advances the strip by one frame.
func (m *Marquee) Step() {
	loop := m.LoopWidth()
	if loop <= 0 {
		return
	}
	m.offset = math.Mod(m.offset+m.cfg.Velocity, loop)
}

// Close cancels the pending frame.
func (m *Marquee) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.frame != nil {
		m.frame.Stop()
		m.frame = nil
	}
}

func (m *Marquee) schedule() {
	if m.closed || m.sched == nil || m.cfg.Items == 0 {
		return
	}
	m.frame = m.sched.AfterFunc(m.cfg.FrameInterval, m.onFrame)
}

func (m *Marquee) onFrame() {
	m.frame = nil
	if m.closed {
		return
	}
	m.Step()
	m.schedule()
}
