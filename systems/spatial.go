package systems

import (
	"math"
	"slices"
)

// maxGridCells caps grid resolution per axis so a tiny threshold over a
// large surface cannot allocate an enormous grid.
const maxGridCells = 256

// GridIndex finds links with a uniform cell grid rebuilt every call.
// Cells are at least threshold wide, so every partner of a particle lies in
// its own cell or one of the eight around it. Results match BruteForce.
type GridIndex struct {
	cellSize float32
	cols     int
	rows     int
	minX     float32
	minY     float32
	cells    [][]int // particle indices per cell
}

// NewGridIndex creates an empty grid; it sizes itself on each Find.
func NewGridIndex() *GridIndex {
	return &GridIndex{}
}

// Find implements LinkFinder.
func (g *GridIndex) Find(dst []Link, ps []Particle, threshold float32) []Link {
	if threshold <= 0 || len(ps) < 2 {
		return dst
	}
	g.rebuild(ps, threshold)

	start := len(dst)
	for i := range ps {
		a := &ps[i]
		col, row := g.cellOf(a.X, a.Y)

		for dr := -1; dr <= 1; dr++ {
			r := row + dr
			if r < 0 || r >= g.rows {
				continue
			}
			for dc := -1; dc <= 1; dc++ {
				c := col + dc
				if c < 0 || c >= g.cols {
					continue
				}
				for _, j := range g.cells[r*g.cols+c] {
					if j <= i {
						continue
					}
					if l, ok := linkBetween(a, &ps[j], threshold); ok {
						l.I, l.J = i, j
						dst = append(dst, l)
					}
				}
			}
		}
	}

	slices.SortFunc(dst[start:], func(a, b Link) int {
		if a.I != b.I {
			return a.I - b.I
		}
		return a.J - b.J
	})
	return dst
}

// rebuild sizes the grid to the particles' extent and bins every particle.
func (g *GridIndex) rebuild(ps []Particle, threshold float32) {
	minX, minY := ps[0].X, ps[0].Y
	maxX, maxY := minX, minY
	for i := 1; i < len(ps); i++ {
		p := &ps[i]
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	extent := max(maxX-minX, maxY-minY)
	cellSize := max(threshold, extent/maxGridCells)

	g.cellSize = cellSize
	g.minX = minX
	g.minY = minY
	g.cols = int(math.Floor(float64((maxX-minX)/cellSize))) + 1
	g.rows = int(math.Floor(float64((maxY-minY)/cellSize))) + 1

	n := g.cols * g.rows
	if cap(g.cells) < n {
		g.cells = make([][]int, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}

	for i := range ps {
		col, row := g.cellOf(ps[i].X, ps[i].Y)
		idx := row*g.cols + col
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// cellOf returns the grid cell for a position, clamped to the grid.
func (g *GridIndex) cellOf(x, y float32) (col, row int) {
	col = int((x - g.minX) / g.cellSize)
	row = int((y - g.minY) / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
