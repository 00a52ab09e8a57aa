package sprig

import "time"

// ValueTimer accumulates frame deltas until a target is exceeded. It is a
// plain value; keep it in a struct field and call Add every tick.
type ValueTimer struct {
	Accumulated float64 // seconds
	Target      float64 // seconds
}

// NewValueTimer returns a timer that elapses after seconds.
func NewValueTimer(seconds float64) ValueTimer {
	return ValueTimer{Target: seconds}
}

// NewValueTimerDuration returns a timer that elapses after d.
func NewValueTimerDuration(d time.Duration) ValueTimer {
	return ValueTimer{Target: d.Seconds()}
}

// Add accumulates dt seconds.
func (t *ValueTimer) Add(dt float64) {
	t.Accumulated += dt
}

// Reset clears the accumulated time, keeping the target.
func (t *ValueTimer) Reset() {
	t.Accumulated = 0
}

// Elapsed returns the accumulated time.
func (t ValueTimer) Elapsed() time.Duration {
	return secondsToDuration(t.Accumulated)
}

// TargetDuration returns the target as a duration.
func (t ValueTimer) TargetDuration() time.Duration {
	return secondsToDuration(t.Target)
}

// IsElapsed reports whether the accumulated time strictly exceeds the target.
func (t ValueTimer) IsElapsed() bool {
	return t.Accumulated > t.Target
}

// Overtime returns how far past the target the timer is, in seconds, and
// whether it has elapsed at all.
func (t ValueTimer) Overtime() (float64, bool) {
	if !t.IsElapsed() {
		return 0, false
	}
	return t.Accumulated - t.Target, true
}

// OvertimeDuration is Overtime as a duration.
func (t ValueTimer) OvertimeDuration() (time.Duration, bool) {
	over, ok := t.Overtime()
	return secondsToDuration(over), ok
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
