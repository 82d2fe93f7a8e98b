package renderer

import (
	"image/color"
	"math"

	"github.com/pthm-cable/drift/sim"
)

// GlowPoint is a single point primitive in the per-frame glow batch.
type GlowPoint struct {
	X, Y   float32
	Radius float32
	Color  color.RGBA
}

// BatchOptions holds the glow styling parameters.
type BatchOptions struct {
	HueSpeed   float64 // Degrees per frame
	HueSpread  float64 // Degrees per world unit of position
	Saturation float64
	Lightness  float64
	GlowRadius []float64 // Layer radius factors: core, mid, outer
	GlowAlpha  []float64 // Layer alpha factors
}

// BuildBatch converts particle trails into glow points, appending to dst
// (pass dst[:0] to reuse the backing array frame to frame). Each trail
// sample of each particle with at least two trail points emits one point
// per glow layer: a bright core and progressively larger, fainter halos
// that fake a bloom effect under additive blending.
func BuildBatch(dst []GlowPoint, particles []sim.Particle, frame int32, opts BatchOptions) []GlowPoint {
	for i := range particles {
		p := &particles[i]

		if p.TrailLen < 2 {
			continue
		}

		lifeRatio := float32(p.Age) / float32(p.MaxAge)

		// Fade in over the first 20% of life, gentle fade out at the end
		fadeIn := float32(math.Min(float64(lifeRatio)*5, 1))
		fadeIn *= fadeIn
		fadeOut := float32(math.Min(float64(1-lifeRatio)*3+0.7, 1))

		baseAlpha := p.Opacity * fadeIn * fadeOut
		if baseAlpha < 0.01 {
			continue
		}

		for j := uint8(0); j < p.TrailLen; j++ {
			x := p.TrailX[j]
			y := p.TrailY[j]

			// Older samples fade quadratically
			trailFade := 1 - float32(j)/float32(p.TrailLen)
			trailFade *= trailFade

			alpha := baseAlpha * trailFade
			if alpha < 0.01 {
				continue
			}

			hue := float64(frame)*opts.HueSpeed + float64(x+y)*opts.HueSpread
			c := HSL(hue, opts.Saturation, opts.Lightness)

			for layer := range opts.GlowRadius {
				a := float64(alpha) * opts.GlowAlpha[layer] * 255
				if a < 1 {
					continue
				}
				dst = append(dst, GlowPoint{
					X:      x,
					Y:      y,
					Radius: p.Size * float32(opts.GlowRadius[layer]),
					Color:  withAlpha(c, uint8(a)),
				})
			}
		}
	}
	return dst
}
