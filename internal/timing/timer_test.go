package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTimer_FinishesOnLastTick(t *testing.T) {
	const n = 5
	timer := NewFixedTimer(n)
	for i := 1; i < n; i++ {
		timer.Tick()
		assert.False(t, timer.IsFinished(), "tick %d", i)
	}
	timer.Tick()
	assert.True(t, timer.IsFinished())

	for i := 0; i < 10; i++ {
		timer.Tick()
		assert.True(t, timer.IsFinished(), "stays finished")
	}
	assert.Equal(t, 0, timer.Remaining())
}

func TestFixedTimer_Reset(t *testing.T) {
	timer := NewFixedTimer(2)
	timer.Tick()
	timer.Tick()
	assert.True(t, timer.IsFinished())

	timer.Reset()
	assert.False(t, timer.IsFinished())
	assert.Equal(t, 2, timer.Remaining())
	assert.Equal(t, 2, timer.Duration())
}

func TestFixedTimer_ZeroDurationIsFinished(t *testing.T) {
	assert.True(t, NewFixedTimer(0).IsFinished())
	assert.True(t, NewFixedTimer(-3).IsFinished())
}

func TestRepeatingTimer_FinishedOncePerCycle(t *testing.T) {
	timer := NewRepeatingTimer(3)
	var finished []int
	for tick := 1; tick <= 9; tick++ {
		timer.Tick()
		if timer.IsFinished() {
			finished = append(finished, tick)
		}
	}
	assert.Equal(t, []int{3, 6, 9}, finished)
}

func TestRepeatingTimer_DurationOneFiresEveryTick(t *testing.T) {
	timer := NewRepeatingTimer(1)
	for i := 0; i < 5; i++ {
		timer.Tick()
		assert.True(t, timer.IsFinished())
	}
}

func TestRepeatingTimer_CheckBeforeTickMissesFinish(t *testing.T) {
	timer := NewRepeatingTimer(2)
	hits := 0
	for i := 0; i < 4; i++ {
		if timer.IsFinished() {
			hits++
		}
		timer.Tick()
	}
	// check-then-tick sees the finish one frame late: only the tick-2 finish is observed
	assert.Equal(t, 1, hits)
}
