// Package sched provides one-shot timers whose callbacks run on the UI loop.
//
// Carousel state is owned by a single goroutine (the bubbletea Update loop).
// Timers created here never run their callback concurrently with that loop:
// the underlying time.Timer only posts the callback back to the loop, and the
// posted callback re-checks whether the timer was stopped in the meantime.
package sched

import (
	"sync/atomic"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns true if the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Post delivers fn to the goroutine that owns carousel state.
type Post func(fn func())

type loopScheduler struct {
	post Post
}

// New returns a Scheduler that fires callbacks through post.
func New(post Post) Scheduler {
	return &loopScheduler{post: post}
}

type loopTimer struct {
	t    *time.Timer
	done atomic.Bool // stopped or fired
}

func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		s.post(func() {
			// Stop may have won the race after the timer expired but before
			// the post reached the loop.
			if lt.done.Swap(true) {
				return
			}
			fn()
		})
	})
	return lt
}

func (t *loopTimer) Stop() bool {
	t.t.Stop()
	return !t.done.Swap(true)
}
