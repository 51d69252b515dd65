package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/sched"
)

func TestMarquee_Defaults(t *testing.T) {
	mq := NewMarquee(MarqueeConfig{Items: 2}, nil)
	cfg := mq.Config()
	assert.InDelta(t, DefaultMarqueeVelocity, cfg.Velocity, 1e-9)
	assert.Equal(t, DefaultFrameInterval, cfg.FrameInterval)
	assert.InDelta(t, float64(DefaultItemWidth*2), mq.LoopWidth(), 1e-9)
	assert.False(t, mq.Running(), "nil scheduler never animates")
}

func TestMarquee_Strip(t *testing.T) {
	mq := NewMarquee(MarqueeConfig{Items: 3}, nil)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, mq.Strip())
}

func TestMarquee_WrapsAfterOneLoop(t *testing.T) {
	mq := NewMarquee(MarqueeConfig{Items: 3, ItemWidth: 100, Velocity: 0.5}, nil)

	for range 599 {
		mq.Step()
	}
	assert.InDelta(t, 299.5, mq.Offset(), 1e-9)

	mq.Step()
	assert.InDelta(t, 0, mq.Offset(), 1e-9)
}

func TestMarquee_LoopContinuity(t *testing.T) {
	mq := NewMarquee(MarqueeConfig{Items: 4, ItemWidth: 37, Velocity: 1.5}, nil)
	loop := mq.LoopWidth()

	for range 1000 {
		before := mq.Offset()
		mq.Step()
		after := mq.Offset()

		want := math.Mod(before+1.5, loop)
		assert.InDelta(t, want, math.Mod(after, loop), 1e-6)
		assert.GreaterOrEqual(t, after, 0.0)
		assert.Less(t, after, loop)
	}
}

func TestMarquee_VelocityLongerThanLoop(t *testing.T) {
	mq := NewMarquee(MarqueeConfig{Items: 1, ItemWidth: 160, Velocity: 400}, nil)
	loop := mq.LoopWidth()

	want := 0.0
	for range 5 {
		mq.Step()
		want = math.Mod(want+400, loop)
		assert.InDelta(t, want, mq.Offset(), 1e-9)
		assert.GreaterOrEqual(t, mq.Offset(), 0.0)
		assert.Less(t, mq.Offset(), loop)
	}
}

func TestMarquee_AnimatesOnFrames(t *testing.T) {
	m := sched.NewManual()
	mq := NewMarquee(MarqueeConfig{Items: 5, ItemWidth: 100, Velocity: 0.5, FrameInterval: 16 * time.Millisecond}, m)
	assert.True(t, mq.Running())

	m.Advance(160 * time.Millisecond)
	assert.InDelta(t, 5.0, mq.Offset(), 1e-9)
	assert.Equal(t, 1, m.Pending(), "one frame request at a time")
}

func TestMarquee_EmptyNeverSchedules(t *testing.T) {
	m := sched.NewManual()
	mq := NewMarquee(MarqueeConfig{Items: 0}, m)

	assert.False(t, mq.Running())
	assert.Equal(t, 0, m.Pending())
	assert.Empty(t, mq.Strip())

	mq.Step()
	assert.Zero(t, mq.Offset())
}

func TestMarquee_CloseCancelsFrame(t *testing.T) {
	m := sched.NewManual()
	mq := NewMarquee(MarqueeConfig{Items: 2}, m)
	mq.Close()
	mq.Close()

	assert.False(t, mq.Running())
	assert.Equal(t, 0, m.Pending())
	m.Advance(time.Second)
	assert.Zero(t, mq.Offset())
}
