// Package viewport classifies the display width into wide and narrow layouts
// and notifies subscribers when the class changes.
package viewport

import "sync"

// DefaultBreakpoint is the width (px) below which the layout is narrow.
const DefaultBreakpoint = 768

// Class is the coarse layout classification of the viewport width.
type Class int

const (
	Wide Class = iota
	Narrow
)

func (c Class) String() string {
	if c == Narrow {
		return "narrow"
	}
	return "wide"
}

// Classify returns Narrow when width is below breakpoint.
func Classify(width, breakpoint int) Class {
	if width < breakpoint {
		return Narrow
	}
	return Wide
}

// Handler receives the new class after a transition.
type Handler func(Class)

type subscription struct {
	id int
	fn Handler
}

// Classifier is the single source of truth for the viewport class. Carousels
// subscribe to it instead of tracking resize events themselves.
type Classifier struct {
	mu         sync.RWMutex
	breakpoint int
	width      int
	class      Class
	nextID     int
	subs       []subscription
}

// NewClassifier creates a classifier for the given breakpoint and initial width.
// A non-positive breakpoint falls back to DefaultBreakpoint.
func NewClassifier(breakpoint, width int) *Classifier {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Classifier{
		breakpoint: breakpoint,
		width:      width,
		class:      Classify(width, breakpoint),
	}
}

// Class returns the current class.
func (c *Classifier) Class() Class {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.class
}

// Width returns the last width passed to Resize.
func (c *Classifier) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

// Breakpoint returns the configured breakpoint.
func (c *Classifier) Breakpoint() int {
	return c.breakpoint
}

// Resize records a new width. Subscribers are called synchronously, in
// subscription order, only when the class changes. Returns true on a transition.
func (c *Classifier) Resize(width int) bool {
	c.mu.Lock()
	c.width = width
	next := Classify(width, c.breakpoint)
	if next == c.class {
		c.mu.Unlock()
		return false
	}
	c.class = next
	handlers := make([]Handler, len(c.subs))
	for i, s := range c.subs {
		handlers[i] = s.fn
	}
	c.mu.Unlock()

	// Handlers may subscribe or unsubscribe, so they run without the lock.
	for _, h := range handlers {
		h(next)
	}
	return true
}

// Subscribe registers fn for class transitions and returns an idempotent
// unsubscribe function.
func (c *Classifier) Subscribe(fn Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (c *Classifier) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}
