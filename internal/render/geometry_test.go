package render

import (
	"math"
	"testing"

	"sparselife/internal/sim"
	"sparselife/internal/view"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestQuadsCoverVisibleCells(t *testing.T) {
	cells := []sim.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	quads := Quads(cells, 800, 800, view.Vec{}, 0.1)
	if len(quads) != 2 {
		t.Fatalf("%d quads, want 2", len(quads))
	}
	// Cell (0,0) is centered at (40,40) with an 80px edge in an 800px
	// square window at grid size 0.1.
	q := quads[0]
	if !approx(q.Size, 80) || !approx(q.X, 0) || !approx(q.Y, 0) {
		t.Fatalf("quad for origin cell = %+v, want {0 0 80}", q)
	}
}

func TestQuadsCullOffscreenCells(t *testing.T) {
	cells := []sim.Cell{{X: 0, Y: 0}, {X: 500, Y: 500}, {X: -500, Y: 0}}
	quads := Quads(cells, 800, 800, view.Vec{}, 0.1)
	if len(quads) != 1 {
		t.Fatalf("%d quads after culling, want 1", len(quads))
	}
}

func TestQuadsFollowPanOffset(t *testing.T) {
	noPan := Quads([]sim.Cell{{X: 2, Y: 3}}, 800, 800, view.Vec{}, 0.1)
	panned := Quads([]sim.Cell{{X: 2, Y: 3}}, 800, 800, view.Vec{X: 0.1}, 0.1)
	if len(noPan) != 1 || len(panned) != 1 {
		t.Fatal("cell culled unexpectedly")
	}
	if !approx(panned[0].X, noPan[0].X-80) {
		t.Fatalf("pan of one cell width moved quad from %v to %v", noPan[0].X, panned[0].X)
	}
}
