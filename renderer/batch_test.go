package renderer

import (
	"testing"

	"github.com/pthm-cable/drift/sim"
)

func testBatchOptions() BatchOptions {
	return BatchOptions{
		HueSpeed:   0.5,
		HueSpread:  0.05,
		Saturation: 0.8,
		Lightness:  0.6,
		GlowRadius: []float64{1.0, 2.5, 5.0},
		GlowAlpha:  []float64{1.0, 0.35, 0.12},
	}
}

// testParticle returns a mid-life particle with n trail points.
func testParticle(n uint8) sim.Particle {
	p := sim.Particle{
		X: 100, Y: 100,
		Age:     100,
		MaxAge:  400,
		Opacity: 1,
		Size:    2,
	}
	for j := uint8(0); j < n; j++ {
		p.TrailX[j] = 100 - float32(j)
		p.TrailY[j] = 100
	}
	p.TrailLen = n
	return p
}

func TestBatchSkipsShortTrails(t *testing.T) {
	particles := []sim.Particle{testParticle(0), testParticle(1)}
	batch := BuildBatch(nil, particles, 0, testBatchOptions())
	if len(batch) != 0 {
		t.Errorf("expected empty batch for trails shorter than 2, got %d points", len(batch))
	}
}

func TestBatchEmitsLayersPerSample(t *testing.T) {
	particles := []sim.Particle{testParticle(4)}
	opts := testBatchOptions()
	batch := BuildBatch(nil, particles, 0, opts)

	// The most recent sample has full alpha and must emit all three layers.
	// Older samples may drop faint outer layers, so only bound the total.
	if len(batch) < 3 {
		t.Fatalf("expected at least 3 points, got %d", len(batch))
	}
	maxPoints := 4 * len(opts.GlowRadius)
	if len(batch) > maxPoints {
		t.Fatalf("expected at most %d points, got %d", maxPoints, len(batch))
	}

	// Core, mid, outer for the first sample: increasing radius, decreasing alpha
	core, mid, outer := batch[0], batch[1], batch[2]
	if !(core.Radius < mid.Radius && mid.Radius < outer.Radius) {
		t.Errorf("expected increasing layer radii, got %f, %f, %f",
			core.Radius, mid.Radius, outer.Radius)
	}
	if !(core.Color.A > mid.Color.A && mid.Color.A > outer.Color.A) {
		t.Errorf("expected decreasing layer alpha, got %d, %d, %d",
			core.Color.A, mid.Color.A, outer.Color.A)
	}
}

func TestBatchTrailAlphaFalloff(t *testing.T) {
	particles := []sim.Particle{testParticle(4)}
	batch := BuildBatch(nil, particles, 0, testBatchOptions())

	// Compare the core layer of consecutive trail samples
	var coreAlphas []uint8
	for _, pt := range batch {
		if pt.Radius == 2.0 { // size 2 * core factor 1.0
			coreAlphas = append(coreAlphas, pt.Color.A)
		}
	}
	for i := 1; i < len(coreAlphas); i++ {
		if coreAlphas[i] >= coreAlphas[i-1] {
			t.Errorf("sample %d: alpha %d not below previous %d",
				i, coreAlphas[i], coreAlphas[i-1])
		}
	}
}

func TestBatchReusesBackingArray(t *testing.T) {
	particles := []sim.Particle{testParticle(4)}
	batch := BuildBatch(nil, particles, 0, testBatchOptions())
	ptr := &batch[0]

	batch = BuildBatch(batch[:0], particles, 1, testBatchOptions())
	if &batch[0] != ptr {
		t.Error("expected batch to reuse the backing array")
	}
}

func TestBatchHueCyclesWithTime(t *testing.T) {
	particles := []sim.Particle{testParticle(2)}
	a := BuildBatch(nil, particles, 0, testBatchOptions())
	b := BuildBatch(nil, particles, 200, testBatchOptions())

	if a[0].Color.R == b[0].Color.R && a[0].Color.G == b[0].Color.G && a[0].Color.B == b[0].Color.B {
		t.Error("expected hue to cycle between frame 0 and frame 200")
	}
}
