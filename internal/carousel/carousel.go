package carousel

import (
	"github.com/llehouerou/showcase/internal/sched"
	"github.com/llehouerou/showcase/internal/viewport"
)

// Carousel tracks the anchor position of one section's slider.
//
// All methods, and all callbacks delivered by the scheduler, must run on the
// same goroutine. The carousel owns at most one auto-advance timer and at
// most one resume timer.
type Carousel struct {
	cfg   Config
	step  stepper
	sched sched.Scheduler
	class viewport.Class

	position    int
	interacting bool

	gesture  bool // a gesture started and has not ended
	startX   int
	currentX int

	advance sched.Timer
	resume  sched.Timer

	unsubscribe func()
	closed      bool
}

// New creates a carousel at position 0. A nil scheduler disables
// auto-advance and the resume cooldown (static rendering).
func New(cfg Config, s sched.Scheduler, class viewport.Class) *Carousel {
	cfg = cfg.withDefaults()
	c := &Carousel{
		cfg:   cfg,
		step:  stepperFor(cfg.Mode),
		sched: s,
		class: class,
	}
	c.arm()
	return c
}

// Attach subscribes the carousel to viewport class changes. The current
// class is adopted immediately.
func (c *Carousel) Attach(cl *viewport.Classifier) {
	if c.closed {
		return
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.unsubscribe = cl.Subscribe(c.SetViewport)
	c.SetViewport(cl.Class())
}

// Config returns the effective configuration.
func (c *Carousel) Config() Config { return c.cfg }

// Position returns the anchor index.
func (c *Carousel) Position() int { return c.position }

// Class returns the viewport class the carousel is laid out for.
func (c *Carousel) Class() viewport.Class { return c.class }

// Interacting reports whether a gesture or its resume cooldown is in progress.
func (c *Carousel) Interacting() bool { return c.interacting }

// AutoAdvancing reports whether an auto-advance timer is armed.
func (c *Carousel) AutoAdvancing() bool { return c.advance != nil }

// Closed reports whether Close has been called.
func (c *Carousel) Closed() bool { return c.closed }

// MaxPosition returns the last reachable position: the start of the last
// page in paginated mode, TotalItems-1 otherwise. Returns 0 when inert.
func (c *Carousel) MaxPosition() int {
	if c.cfg.inert() {
		return 0
	}
	if c.cfg.Mode == Paginated {
		return maxPosition(c.cfg)
	}
	return c.cfg.TotalItems - 1
}

// Next moves forward one step. No-op when there is nothing to show.
func (c *Carousel) Next() {
	if c.closed || c.cfg.inert() {
		return
	}
	c.position = c.step.next(c.position, c.cfg)
}

// Prev moves back one step. No-op when there is nothing to show.
func (c *Carousel) Prev() {
	if c.closed || c.cfg.inert() {
		return
	}
	c.position = c.step.prev(c.position, c.cfg)
}

// Window returns the item indices to render for class. Empty when inert.
// Paginated carousels always return the current narrow page.
func (c *Carousel) Window(class viewport.Class) []int {
	if c.cfg.inert() {
		return nil
	}
	return c.step.window(c.position, c.cfg, class)
}

// Visible returns the window for the carousel's current class.
func (c *Carousel) Visible() []int {
	return c.Window(c.class)
}

// DotIndex returns the active narrow page for page indicators.
func (c *Carousel) DotIndex() int {
	if c.cfg.inert() {
		return 0
	}
	return c.position / c.cfg.PerPage.Narrow
}

// TotalDots returns the number of narrow pages.
func (c *Carousel) TotalDots() int {
	if c.cfg.inert() {
		return 0
	}
	n := c.cfg.PerPage.Narrow
	return (c.cfg.TotalItems + n - 1) / n
}

// GestureStart begins a swipe at x. It cancels auto-advance and any pending
// resume so no timer can move the carousel mid-swipe.
func (c *Carousel) GestureStart(x int) {
	if c.closed || c.cfg.inert() {
		return
	}
	c.gesture = true
	c.startX = x
	c.currentX = x
	c.interacting = true
	c.stopAdvance()
	c.stopResume()
}

// GestureMove records the latest x of an in-flight gesture.
func (c *Carousel) GestureMove(x int) {
	if !c.gesture {
		return
	}
	c.currentX = x
}

// GestureEnd resolves the swipe and starts the resume cooldown.
// A call without a matching GestureStart is ignored.
func (c *Carousel) GestureEnd() {
	if !c.gesture {
		return
	}
	delta := c.startX - c.currentX
	c.gesture = false
	c.startX, c.currentX = 0, 0

	switch {
	case delta > c.cfg.SwipeThreshold:
		c.Next()
	case delta < -c.cfg.SwipeThreshold:
		c.Prev()
	}
	c.scheduleResume()
}

// Gesturing reports whether a gesture is in flight.
func (c *Carousel) Gesturing() bool { return c.gesture }

// SetViewport switches the layout class. Wide cancels auto-advance, narrow
// re-arms it. An in-flight gesture keeps its captured coordinates.
func (c *Carousel) SetViewport(class viewport.Class) {
	if c.closed {
		return
	}
	c.class = class
	c.arm()
}

// SetTotal changes the collection size, reclamping the position. A size of
// zero cancels all timers.
func (c *Carousel) SetTotal(n int) {
	if c.closed {
		return
	}
	if n < 0 {
		n = 0
	}
	c.cfg.TotalItems = n
	if c.cfg.inert() {
		c.position = 0
		c.gesture = false
		c.interacting = false
		c.stopResume()
		c.stopAdvance()
		return
	}
	c.position = c.step.clamp(c.position, c.cfg)
	c.arm()
}

// Close releases timers and the viewport subscription. Nothing scheduled by
// the carousel runs after Close returns.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.stopAdvance()
	c.stopResume()
	c.gesture = false
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// arm ensures the auto-advance timer is running exactly when it should be:
// narrow layout, overflowing collection, no interaction.
func (c *Carousel) arm() {
	if c.closed || c.sched == nil || c.interacting ||
		c.class != viewport.Narrow || !c.cfg.canAutoAdvance() {
		c.stopAdvance()
		return
	}
	if c.advance != nil {
		return
	}
	c.advance = c.sched.AfterFunc(c.cfg.AutoAdvanceInterval, c.tick)
}

func (c *Carousel) tick() {
	c.advance = nil
	if c.closed || c.interacting {
		return
	}
	// In paginated mode this is a no-op at maxPosition; the timer keeps running.
	c.Next()
	c.arm()
}

func (c *Carousel) scheduleResume() {
	c.stopResume()
	if c.sched == nil {
		c.interacting = false
		return
	}
	c.resume = c.sched.AfterFunc(c.cfg.ResumeDelay, func() {
		c.resume = nil
		if c.closed {
			return
		}
		c.interacting = false
		c.arm()
	})
}

func (c *Carousel) stopAdvance() {
	if c.advance != nil {
		c.advance.Stop()
		c.advance = nil
	}
}

func (c *Carousel) stopResume() {
	if c.resume != nil {
		c.resume.Stop()
		c.resume = nil
	}
}
