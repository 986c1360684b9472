// Package view holds the pure coordinate arithmetic shared by the input and
// rendering layers: conversions between window pixels, normalized view space
// and grid cells, including pan offset and aspect-ratio correction.
package view

import "math"

// Vec is a 2D vector in either pixel or normalized view coordinates.
type Vec struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by f.
func (v Vec) Mul(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// normalize maps a window pixel position into [0,1] view space. The x axis is
// shifted and stretched so that view space stays square regardless of the
// window's aspect ratio.
func normalize(w, h float64, pos Vec) Vec {
	aspect := w / h
	shift := (w - h) / 2
	return Vec{
		X: (pos.X - shift) * aspect / w,
		Y: pos.Y / h,
	}
}

// CellAt converts a window pixel position into the grid cell under it, given
// the current pan offset and grid size (cell edge length in view space).
func CellAt(w, h float64, pos, offset Vec, gridSize float64) (int, int) {
	n := normalize(w, h, pos)
	fx := n.X/gridSize + offset.X/gridSize
	fy := n.Y/gridSize + offset.Y/gridSize
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// Screen converts a grid cell into the window pixel position of its center,
// the inverse of CellAt.
func Screen(x, y int, w, h float64, offset Vec, gridSize float64) Vec {
	shift := (w - h) / 2
	nx := (float64(x)+0.5)*gridSize - offset.X
	ny := (float64(y)+0.5)*gridSize - offset.Y
	return Vec{X: nx*h + shift, Y: ny * h}
}

// PanDelta converts a pixel-space drag delta into a view-space pan delta.
func PanDelta(w, h float64, pixDiff Vec) Vec {
	ratio := w / h
	return Vec{
		X: pixDiff.X / w * ratio,
		Y: pixDiff.Y / h,
	}
}

// ZoomTarget returns the view-space point a zoom should keep fixed: the
// position under the mouse, or the view origin when the cursor is unknown.
func ZoomTarget(w, h float64, mouse Vec, hasMouse bool, offset Vec) Vec {
	if !hasMouse {
		return Vec{}
	}
	return normalize(w, h, mouse).Add(offset)
}
