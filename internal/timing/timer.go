// internal/timing/timer.go
package timing

// TickTimer is a countdown measured in simulation ticks. Callers always Tick first and then
// check IsFinished; the finishing tick is the one on which the count reaches zero.
type TickTimer interface {
	Tick()
	IsFinished() bool
	Reset()
	Remaining() int
	Duration() int
}

// FixedTimer counts down once and then stays finished.
type FixedTimer struct {
	duration  int
	remaining int
}

func NewFixedTimer(duration int) *FixedTimer {
	if duration < 0 {
		duration = 0
	}
	return &FixedTimer{duration: duration, remaining: duration}
}

func (t *FixedTimer) Tick() {
	if t.remaining > 0 {
		t.remaining--
	}
}

func (t *FixedTimer) IsFinished() bool { return t.remaining == 0 }

// Reset restarts the countdown from the full duration.
func (t *FixedTimer) Reset() { t.remaining = t.duration }

func (t *FixedTimer) Remaining() int { return t.remaining }

func (t *FixedTimer) Duration() int { return t.duration }

// RepeatingTimer counts down, reports finished for exactly the tick on which it reaches zero,
// and restarts on the following Tick.
type RepeatingTimer struct {
	duration  int
	remaining int
}

func NewRepeatingTimer(duration int) *RepeatingTimer {
	if duration < 1 {
		duration = 1
	}
	return &RepeatingTimer{duration: duration, remaining: duration}
}

func (t *RepeatingTimer) Tick() {
	if t.remaining == 0 {
		t.remaining = t.duration
	}
	t.remaining--
}

func (t *RepeatingTimer) IsFinished() bool { return t.remaining == 0 }

func (t *RepeatingTimer) Reset() { t.remaining = t.duration }

func (t *RepeatingTimer) Remaining() int { return t.remaining }

func (t *RepeatingTimer) Duration() int { return t.duration }
