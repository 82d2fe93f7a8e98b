package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// TrigGenerator derives cell directions from a time-varying product of
// sine and cosine of linear functions of the cell coordinate.
type TrigGenerator struct {
	XFreq, YFreq   float64
	XDrift, YDrift float64
}

// At returns the unit direction vector for a cell.
func (t TrigGenerator) At(cx, cy int, frame int32) (float32, float32) {
	ft := float64(frame)
	angle := math.Sin(float64(cx)*t.XFreq+ft*t.XDrift) *
		math.Cos(float64(cy)*t.YFreq+ft*t.YDrift) * 2 * math.Pi
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// NoiseGenerator derives cell directions from 3D simplex noise over
// (cell x, cell y, frame). Produces smoother, less periodic flow than the
// trig generator.
type NoiseGenerator struct {
	noise     opensimplex.Noise
	scale     float64
	timeScale float64
}

// NewNoiseGenerator creates a noise generator with the given seed.
func NewNoiseGenerator(seed int64, scale, timeScale float64) *NoiseGenerator {
	return &NoiseGenerator{
		noise:     opensimplex.NewNormalized(seed),
		scale:     scale,
		timeScale: timeScale,
	}
}

// At returns the unit direction vector for a cell.
func (n *NoiseGenerator) At(cx, cy int, frame int32) (float32, float32) {
	v := n.noise.Eval3(float64(cx)*n.scale, float64(cy)*n.scale, float64(frame)*n.timeScale)
	angle := v * 2 * math.Pi
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
