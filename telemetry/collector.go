package telemetry

import (
	"math"
	"time"
)

// Collector accumulates per-frame samples and emits WindowStats when a
// window worth of frames has been recorded.
type Collector struct {
	windowFrames int32
	fps          float64

	windowStart int32
	frameMs     []float64
	speeds      []float64
	resets      int
	recomputes  int
	count       int
}

// NewCollector creates a collector whose window covers windowSec seconds
// at the given target frame rate.
func NewCollector(windowSec float64, targetFPS int) *Collector {
	frames := int32(windowSec * float64(targetFPS))
	if frames < 1 {
		frames = 1
	}
	return &Collector{
		windowFrames: frames,
		fps:          float64(targetFPS),
		frameMs:      make([]float64, 0, frames),
	}
}

// RecordFrame adds one frame's samples to the current window.
func (c *Collector) RecordFrame(dur time.Duration, resets int, recomputed bool, count int) {
	c.frameMs = append(c.frameMs, float64(dur)/float64(time.Millisecond))
	c.resets += resets
	if recomputed {
		c.recomputes++
	}
	c.count = count
}

// RecordSpeed adds one particle's speed sample for the current window.
func (c *Collector) RecordSpeed(vx, vy float32) {
	c.speeds = append(c.speeds, math.Hypot(float64(vx), float64(vy)))
}

// Flush returns the aggregated stats and true once the window is full,
// then starts the next window.
func (c *Collector) Flush(frame int32) (WindowStats, bool) {
	if int32(len(c.frameMs)) < c.windowFrames {
		return WindowStats{}, false
	}

	s := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		SimTimeSec:       float64(frame) / c.fps,
		ParticleCount:    c.count,
		Resets:           c.resets,
		FieldRecomputes:  c.recomputes,
	}
	s.FrameMsMean, s.FrameMsStd, s.FrameMsP50, s.FrameMsP90, s.FrameMsP99 = ComputeFrameStats(c.frameMs)
	s.SpeedMean, s.SpeedStd = ComputeSpeedStats(c.speeds)

	c.windowStart = frame
	c.frameMs = c.frameMs[:0]
	c.speeds = c.speeds[:0]
	c.resets = 0
	c.recomputes = 0

	return s, true
}
