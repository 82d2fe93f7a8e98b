package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/sim"
)

// Glow draws the particle batch with additive blending on top of a
// persistent frame buffer. Each frame starts with a low-alpha fade
// rectangle instead of an opaque clear, so previous frames bleed through
// as cumulative trails.
type Glow struct {
	width, height int32
	opts          BatchOptions
	fade          rl.Color
	batch         []GlowPoint
}

// NewGlow creates a glow renderer.
func NewGlow(width, height int32, fadeAlpha float64, opts BatchOptions) *Glow {
	return &Glow{
		width:  width,
		height: height,
		opts:   opts,
		fade:   rl.Color{R: 5, G: 8, B: 18, A: uint8(fadeAlpha * 255)},
	}
}

// Resize updates the fade rectangle to cover the new surface.
func (g *Glow) Resize(width, height int32) {
	g.width = width
	g.height = height
}

// BeginFrame applies the cumulative fade over last frame's contents.
func (g *Glow) BeginFrame() {
	rl.DrawRectangle(0, 0, g.width, g.height, g.fade)
}

// Draw batches all trails into point primitives and submits them inside a
// single additive blend block.
func (g *Glow) Draw(particles []sim.Particle, frame int32) {
	g.batch = BuildBatch(g.batch[:0], particles, frame, g.opts)

	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range g.batch {
		pt := &g.batch[i]
		rl.DrawCircleV(
			rl.Vector2{X: pt.X, Y: pt.Y},
			pt.Radius,
			rl.Color{R: pt.Color.R, G: pt.Color.G, B: pt.Color.B, A: pt.Color.A},
		)
	}
	rl.EndBlendMode()
}
