// Package field provides the coarse flow field grid that steers particles.
package field

import "math"

// Generator produces a direction vector for a grid cell at a given frame.
type Generator interface {
	At(cx, cy int, frame int32) (fx, fy float32)
}

// Grid is a coarse grid of 2D direction vectors covering the surface.
// Vectors are recomputed wholesale every UpdateInterval frames; stale
// values are reused between recomputes.
type Grid struct {
	cols, rows     int
	cellSize       float32
	updateInterval int32
	vecs           []float32 // [x0, y0, x1, y1, ...] interleaved, row-major
	gen            Generator
	lastFrame      int32
}

// New creates a grid sized to cover width x height at the given cell size
// and computes the initial vectors for frame 0.
func New(width, height, cellSize float32, updateInterval int32, gen Generator) *Grid {
	if updateInterval < 1 {
		updateInterval = 1
	}
	g := &Grid{
		cellSize:       cellSize,
		updateInterval: updateInterval,
		gen:            gen,
	}
	g.Resize(width, height)
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Resize reallocates the grid to cover the new surface size and recomputes
// all vectors immediately at the most recent frame seen by Update.
func (g *Grid) Resize(width, height float32) {
	g.cols = int(math.Ceil(float64(width / g.cellSize)))
	g.rows = int(math.Ceil(float64(height / g.cellSize)))
	if g.cols < 1 {
		g.cols = 1
	}
	if g.rows < 1 {
		g.rows = 1
	}
	g.vecs = make([]float32, g.cols*g.rows*2)
	g.recompute(g.lastFrame)
}

// Update recomputes the field if the frame counter is on the update cadence.
// Returns true if a recompute happened.
func (g *Grid) Update(frame int32) bool {
	g.lastFrame = frame
	if frame%g.updateInterval != 0 {
		return false
	}
	g.recompute(frame)
	return true
}

func (g *Grid) recompute(frame int32) {
	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			fx, fy := g.gen.At(cx, cy, frame)
			idx := (cy*g.cols + cx) * 2
			g.vecs[idx] = fx
			g.vecs[idx+1] = fy
		}
	}
}

// Sample returns the flow vector for the cell containing the world position.
// ok is false when the position falls outside the grid; callers skip force
// application in that case.
func (g *Grid) Sample(x, y float32) (fx, fy float32, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cx := int(x / g.cellSize)
	cy := int(y / g.cellSize)
	if cx >= g.cols || cy >= g.rows {
		return 0, 0, false
	}
	idx := (cy*g.cols + cx) * 2
	return g.vecs[idx], g.vecs[idx+1], true
}
