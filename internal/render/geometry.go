// Package render turns the simulation's changed-cell lists into drawable
// quads. The geometry math is kept free of GUI dependencies so it builds and
// tests headless; the actual drawing lives behind the ebiten build tag.
package render

import (
	"sparselife/internal/sim"
	"sparselife/internal/view"
)

// Quad is a screen-space square covering one live cell.
type Quad struct {
	X, Y, Size float64
}

// cellQuad computes the screen rectangle for a cell given the window size,
// pan offset and grid scale.
func cellQuad(c sim.Cell, w, h float64, offset view.Vec, gridSize float64) Quad {
	center := view.Screen(c.X, c.Y, w, h, offset, gridSize)
	size := gridSize * h
	return Quad{
		X:    center.X - size/2,
		Y:    center.Y - size/2,
		Size: size,
	}
}

// Quads maps every cell to its screen quad, dropping quads that fall
// entirely outside the window.
func Quads(cells []sim.Cell, w, h float64, offset view.Vec, gridSize float64) []Quad {
	out := make([]Quad, 0, len(cells))
	for _, c := range cells {
		q := cellQuad(c, w, h, offset, gridSize)
		if q.X+q.Size < 0 || q.Y+q.Size < 0 || q.X > w || q.Y > h {
			continue
		}
		out = append(out, q)
	}
	return out
}
