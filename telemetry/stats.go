// Package telemetry collects windowed frame statistics and writes them out.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Frame timing (milliseconds)
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP90  float64 `csv:"frame_ms_p90"`
	FrameMsP99  float64 `csv:"frame_ms_p99"`

	// Particle activity
	ParticleCount int     `csv:"particles"`
	SpeedMean     float64 `csv:"speed_mean"`
	SpeedStd      float64 `csv:"speed_std"`
	Resets        int     `csv:"resets"`

	// Field activity
	FieldRecomputes int `csv:"field_recomputes"`
}

// ComputeFrameStats calculates mean, stddev, and percentiles from frame
// durations in milliseconds.
func ComputeFrameStats(ms []float64) (mean, std, p50, p90, p99 float64) {
	if len(ms) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(ms, nil)
	if len(ms) > 1 {
		std = stat.StdDev(ms, nil)
	}

	sorted := make([]float64, len(ms))
	copy(sorted, ms)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	p99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)

	return mean, std, p50, p90, p99
}

// ComputeSpeedStats calculates mean and stddev of particle speeds.
func ComputeSpeedStats(speeds []float64) (mean, std float64) {
	if len(speeds) == 0 {
		return 0, 0
	}
	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}
	return mean, std
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_std", s.FrameMsStd,
		"frame_ms_p50", s.FrameMsP50,
		"frame_ms_p90", s.FrameMsP90,
		"frame_ms_p99", s.FrameMsP99,
		"particles", s.ParticleCount,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"resets", s.Resets,
		"field_recomputes", s.FieldRecomputes,
	)
}
