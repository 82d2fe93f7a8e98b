package field

import (
	"math"
	"testing"
)

func TestGridDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		cellSize      float32
		wantCols      int
		wantRows      int
	}{
		{"exact fit", 1280, 720, 40, 32, 18},
		{"partial cell rounds up", 1290, 730, 40, 33, 19},
		{"tiny surface clamps to 1x1", 10, 10, 40, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.width, tt.height, tt.cellSize, 10, TrigGenerator{XFreq: 0.3, YFreq: 0.3})
			if g.Cols() != tt.wantCols || g.Rows() != tt.wantRows {
				t.Errorf("got %dx%d, want %dx%d", g.Cols(), g.Rows(), tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestGridResize(t *testing.T) {
	g := New(1280, 720, 40, 10, TrigGenerator{XFreq: 0.3, YFreq: 0.3})
	g.Resize(800, 600)

	if g.Cols() != 20 || g.Rows() != 15 {
		t.Errorf("after resize got %dx%d, want 20x15", g.Cols(), g.Rows())
	}

	// Sampling beyond the new bounds must report not-ok
	if _, _, ok := g.Sample(801, 10); ok {
		t.Error("expected out-of-bounds sample to be not-ok after shrink")
	}
}

func TestUpdateCadence(t *testing.T) {
	gen := TrigGenerator{XFreq: 0.3, YFreq: 0.31, XDrift: 0.01, YDrift: 0.013}
	g := New(400, 400, 40, 5, gen)

	// Snapshot after the frame-0 recompute
	x0, y0, ok := g.Sample(200, 200)
	if !ok {
		t.Fatal("expected in-bounds sample")
	}

	// Off-cadence frames must not change the field
	for frame := int32(1); frame < 5; frame++ {
		if g.Update(frame) {
			t.Errorf("frame %d: recompute on off-cadence frame", frame)
		}
		x, y, _ := g.Sample(200, 200)
		if x != x0 || y != y0 {
			t.Errorf("frame %d: field changed between recomputes", frame)
		}
	}

	// On-cadence frame recomputes with the new time value
	if !g.Update(5) {
		t.Error("expected recompute on frame 5")
	}
	x1, y1, _ := g.Sample(200, 200)
	if x1 == x0 && y1 == y0 {
		t.Error("expected field to change on cadence frame with drifting generator")
	}
}

func TestResizeRecomputesAtCurrentFrame(t *testing.T) {
	gen := TrigGenerator{XFreq: 0.3, YFreq: 0.31, XDrift: 0.01, YDrift: 0.013}
	g := New(400, 400, 40, 10, gen)

	// Advance off-cadence so the grid still holds frame-0 vectors
	g.Update(7)
	x0, y0, _ := g.Sample(200, 200)

	g.Resize(400, 400)

	// The resize recompute must use the current frame, not frame 0
	wantX, wantY := gen.At(5, 5, 7)
	x1, y1, ok := g.Sample(200, 200)
	if !ok {
		t.Fatal("expected in-bounds sample")
	}
	if x1 != wantX || y1 != wantY {
		t.Errorf("after resize got (%f, %f), want frame-7 vector (%f, %f)", x1, y1, wantX, wantY)
	}
	if x1 == x0 && y1 == y0 {
		t.Error("resize left stale frame-0 vectors in place")
	}
}

func TestSampleBounds(t *testing.T) {
	g := New(400, 400, 40, 1, TrigGenerator{XFreq: 0.3, YFreq: 0.3})

	if _, _, ok := g.Sample(-1, 100); ok {
		t.Error("negative x should be out of bounds")
	}
	if _, _, ok := g.Sample(100, -1); ok {
		t.Error("negative y should be out of bounds")
	}
	if _, _, ok := g.Sample(400, 100); ok {
		t.Error("x past last cell should be out of bounds")
	}
	if _, _, ok := g.Sample(399, 399); !ok {
		t.Error("last cell should be in bounds")
	}
}

func TestGeneratorsProduceUnitVectors(t *testing.T) {
	gens := map[string]Generator{
		"trig":  TrigGenerator{XFreq: 0.3, YFreq: 0.31, XDrift: 0.01, YDrift: 0.013},
		"noise": NewNoiseGenerator(42, 0.08, 0.002),
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			for cy := 0; cy < 8; cy++ {
				for cx := 0; cx < 8; cx++ {
					fx, fy := gen.At(cx, cy, 17)
					mag := math.Sqrt(float64(fx*fx + fy*fy))
					if math.Abs(mag-1) > 1e-5 {
						t.Fatalf("cell (%d,%d): |v| = %f, want 1", cx, cy, mag)
					}
				}
			}
		})
	}
}

func TestNoiseGeneratorDeterministic(t *testing.T) {
	a := NewNoiseGenerator(7, 0.08, 0.002)
	b := NewNoiseGenerator(7, 0.08, 0.002)

	ax, ay := a.At(3, 4, 100)
	bx, by := b.At(3, 4, 100)
	if ax != bx || ay != by {
		t.Error("same seed should produce identical vectors")
	}
}
