package game

import "time"

// throttle skips frame work when less than the target interval has elapsed
// since the last executed frame. The clock is injectable for tests.
type throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

func newThrottle(targetFPS int, now func() time.Time) *throttle {
	if now == nil {
		now = time.Now
	}
	interval := time.Duration(0)
	if targetFPS > 0 {
		interval = time.Second / time.Duration(targetFPS)
	}
	return &throttle{interval: interval, now: now}
}

// ShouldRun reports whether enough time has passed to execute a frame, and
// marks the frame as executed if so.
func (t *throttle) ShouldRun() bool {
	n := t.now()
	if !t.last.IsZero() && n.Sub(t.last) < t.interval {
		return false
	}
	t.last = n
	return true
}
