// Package sim advances the flow particles each frame.
package sim

import (
	"math"
	"math/rand"
)

// MaxTrail is the hard cap on trail history length.
const MaxTrail = 16

// Particle is a single flow particle with a bounded trail of recent
// positions (most recent first).
type Particle struct {
	X, Y       float32
	VelX, VelY float32
	Age        int32
	MaxAge     int32
	Opacity    float32
	Size       float32
	TrailX     [MaxTrail]float32
	TrailY     [MaxTrail]float32
	TrailLen   uint8
}

// Sampler provides flow vectors at world positions. ok is false outside
// the field, in which case no force is applied.
type Sampler interface {
	Sample(x, y float32) (fx, fy float32, ok bool)
}

// Options holds the simulation tuning parameters.
type Options struct {
	Count        int
	TrailCap     int
	Damping      float32
	FlowStrength float32
	MaxSpeed     float32
	Margin       float32
	LifespanMin  int32
	LifespanMax  int32
}

// System owns a fixed-size set of particles. Slots are reused in place;
// particles are never removed.
type System struct {
	Particles []Particle

	width, height float32
	sampler       Sampler
	rng           *rand.Rand
	opts          Options
	trailCap      uint8

	resets int
}

// NewSystem creates a particle system with all slots seeded at random
// on-screen positions.
func NewSystem(width, height float32, sampler Sampler, rng *rand.Rand, opts Options) *System {
	trailCap := opts.TrailCap
	if trailCap < 1 {
		trailCap = 1
	}
	if trailCap > MaxTrail {
		trailCap = MaxTrail
	}
	s := &System{
		Particles: make([]Particle, opts.Count),
		width:     width,
		height:    height,
		sampler:   sampler,
		rng:       rng,
		opts:      opts,
		trailCap:  uint8(trailCap),
	}
	for i := range s.Particles {
		s.respawn(&s.Particles[i])
	}
	return s
}

// SetSampler swaps the flow source (used when the GPU field replaces the
// CPU grid after init).
func (s *System) SetSampler(sampler Sampler) {
	s.sampler = sampler
}

// Resize updates the surface bounds particles are confined to.
func (s *System) Resize(width, height float32) {
	s.width = width
	s.height = height
}

// TakeResets returns the number of particle resets since the last call.
func (s *System) TakeResets() int {
	n := s.resets
	s.resets = 0
	return n
}

// Update advances all particles by one frame. Particles are independent;
// there is no inter-particle interaction.
func (s *System) Update() {
	m := s.opts.Margin
	for i := range s.Particles {
		p := &s.Particles[i]

		// Lifecycle reset: expired or left the surface plus margin
		if p.Age > p.MaxAge || p.X < -m || p.X > s.width+m || p.Y < -m || p.Y > s.height+m {
			s.respawn(p)
			s.resets++
			continue
		}

		// Steer by the flow cell containing the particle; positions
		// outside the grid get no force this frame
		if fx, fy, ok := s.sampler.Sample(p.X, p.Y); ok {
			p.VelX += fx * s.opts.FlowStrength
			p.VelY += fy * s.opts.FlowStrength
		}

		p.VelX *= s.opts.Damping
		p.VelY *= s.opts.Damping

		// Clamp speed, skipping the sqrt when clearly under the limit
		maxSq := s.opts.MaxSpeed * s.opts.MaxSpeed
		velSq := p.VelX*p.VelX + p.VelY*p.VelY
		if velSq > maxSq {
			scale := s.opts.MaxSpeed / float32(math.Sqrt(float64(velSq)))
			p.VelX *= scale
			p.VelY *= scale
		}

		p.X += p.VelX
		p.Y += p.VelY

		// Push the new position onto the trail, evicting the oldest
		for j := int(s.trailCap) - 1; j > 0; j-- {
			p.TrailX[j] = p.TrailX[j-1]
			p.TrailY[j] = p.TrailY[j-1]
		}
		p.TrailX[0] = p.X
		p.TrailY[0] = p.Y
		if p.TrailLen < s.trailCap {
			p.TrailLen++
		}

		p.Age++
	}
}

// respawn reinitializes a particle slot in place.
func (s *System) respawn(p *Particle) {
	lifespan := s.opts.LifespanMin
	if s.opts.LifespanMax > s.opts.LifespanMin {
		lifespan += s.rng.Int31n(s.opts.LifespanMax - s.opts.LifespanMin)
	}
	if lifespan < 1 {
		lifespan = 1
	}
	*p = Particle{
		X:       s.rng.Float32() * s.width,
		Y:       s.rng.Float32() * s.height,
		VelX:    (s.rng.Float32()*2 - 1) * 0.3,
		VelY:    (s.rng.Float32()*2 - 1) * 0.3,
		MaxAge:  lifespan,
		Opacity: 0.5 + s.rng.Float32()*0.5,
		Size:    1.0 + s.rng.Float32()*1.5,
	}
}
