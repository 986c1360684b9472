package view

import "testing"

func TestCellAtSquareWindow(t *testing.T) {
	cases := []struct {
		pos    Vec
		offset Vec
		wantX  int
		wantY  int
	}{
		{Vec{40, 40}, Vec{}, 0, 0},
		{Vec{120, 40}, Vec{}, 1, 0},
		{Vec{40, 120}, Vec{}, 0, 1},
		{Vec{799, 799}, Vec{}, 9, 9},
		// Negative pan shifts the visible grid region.
		{Vec{40, 40}, Vec{-0.1, 0}, -1, 0},
		{Vec{40, 40}, Vec{0.25, 0.15}, 3, 2},
	}

	for _, tc := range cases {
		x, y := CellAt(800, 800, tc.pos, tc.offset, 0.1)
		if x != tc.wantX || y != tc.wantY {
			t.Fatalf("CellAt(%v, offset %v) = (%d,%d), want (%d,%d)", tc.pos, tc.offset, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestCellAtWideWindowCentersGrid(t *testing.T) {
	// In a 1600x800 window the square view region is centered, so the
	// horizontal midpoint still lands in the middle of the grid.
	x, y := CellAt(1600, 800, Vec{800, 400}, Vec{}, 0.1)
	if x != 5 || y != 5 {
		t.Fatalf("center of wide window = (%d,%d), want (5,5)", x, y)
	}
}

func TestScreenRoundTrip(t *testing.T) {
	offsets := []Vec{{}, {0.3, -0.2}, {-1.5, 0.75}}
	cells := [][2]int{{0, 0}, {3, 7}, {-4, -1}, {25, -13}}

	for _, off := range offsets {
		for _, c := range cells {
			pos := Screen(c[0], c[1], 1280, 720, off, 0.05)
			x, y := CellAt(1280, 720, pos, off, 0.05)
			if x != c[0] || y != c[1] {
				t.Fatalf("round trip of (%d,%d) offset %v = (%d,%d)", c[0], c[1], off, x, y)
			}
		}
	}
}

func TestPanDeltaAspect(t *testing.T) {
	d := PanDelta(1600, 800, Vec{160, 80})
	if d.X != 0.2 || d.Y != 0.1 {
		t.Fatalf("PanDelta = %v, want {0.2 0.1}", d)
	}
}
