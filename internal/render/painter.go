//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparselife/internal/sim"
	"sparselife/internal/view"
)

// CellPainter draws live cells as scaled quads stamped from a single white
// pixel.
type CellPainter struct {
	pixel *ebiten.Image
	cells []sim.Cell
}

// NewCellPainter constructs a painter.
func NewCellPainter() *CellPainter {
	p := &CellPainter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// SetCells replaces the cell list to draw. Callers pass the list from a
// ChangeSet whenever one arrives; between changes the painter keeps drawing
// the previous list.
func (p *CellPainter) SetCells(cells []sim.Cell) {
	p.cells = cells
}

// Draw stamps every visible cell onto dst.
func (p *CellPainter) Draw(dst *ebiten.Image, offset view.Vec, gridSize float64, col color.RGBA) {
	bounds := dst.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	for _, q := range Quads(p.cells, w, h, offset, gridSize) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(q.Size, q.Size)
		op.GeoM.Translate(q.X, q.Y)
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		dst.DrawImage(p.pixel, op)
	}
}
