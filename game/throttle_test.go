package game

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestThrottleFirstFrameRuns(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	th := newThrottle(30, clock.now)

	if !th.ShouldRun() {
		t.Error("first frame should always run")
	}
}

func TestThrottleSkipsEarlyFrames(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	th := newThrottle(30, clock.now) // ~33.3ms interval

	th.ShouldRun()

	clock.advance(10 * time.Millisecond)
	if th.ShouldRun() {
		t.Error("frame 10ms after last executed frame should be skipped")
	}

	clock.advance(10 * time.Millisecond)
	if th.ShouldRun() {
		t.Error("frame 20ms after last executed frame should be skipped")
	}

	clock.advance(15 * time.Millisecond)
	if !th.ShouldRun() {
		t.Error("frame 35ms after last executed frame should run")
	}
}

func TestThrottleSkippedFramesDoNotResetTimer(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	th := newThrottle(30, clock.now)

	th.ShouldRun()

	// Many skipped polls must not push the next executed frame back
	for i := 0; i < 5; i++ {
		clock.advance(5 * time.Millisecond)
		th.ShouldRun()
	}
	clock.advance(10 * time.Millisecond) // 35ms total since last executed
	if !th.ShouldRun() {
		t.Error("expected frame to run once the full interval elapsed")
	}
}

func TestThrottleZeroFPSNeverSkips(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	th := newThrottle(0, clock.now)

	for i := 0; i < 3; i++ {
		if !th.ShouldRun() {
			t.Fatal("uncapped throttle should never skip")
		}
	}
}
