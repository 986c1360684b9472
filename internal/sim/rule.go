package sim

// neighbors returns the 8 cells adjacent to c, diagonals included.
func neighbors(c Cell) [8]Cell {
	return [8]Cell{
		{c.X - 1, c.Y - 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X - 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y + 1},
	}
}

// NextGeneration computes one step of Conway's Game of Life over a sparse,
// unbounded grid. Rather than inspecting the 8 neighbors of every candidate
// cell, it makes a single pass over the live cells and accumulates neighbor
// counts, so the cost is proportional to the live population, not the grid
// area. A cell is alive in the next generation iff its count is exactly 3, or
// exactly 2 and it was already alive. Cells with zero live neighbors never
// become candidates, which is correct since they cannot satisfy either rule.
func NextGeneration(live Set) Set {
	counts := make(map[Cell]int, len(live)*4)
	for c := range live {
		for _, n := range neighbors(c) {
			counts[n]++
		}
	}

	next := make(Set, len(live))
	for c, count := range counts {
		if count == 3 || (count == 2 && live.Contains(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}
