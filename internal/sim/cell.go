// Package sim implements the sparse Game of Life engine: the step rule over
// an unbounded grid, the auto-play timer, the deferred-input queue and the
// background step scheduler, all tied together by the Simulation facade.
package sim

// Cell is a grid coordinate. Coordinates are signed and unbounded.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Set holds the live cells of one generation.
type Set map[Cell]struct{}

// NewSet builds a Set from the provided cells.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is alive.
func (s Set) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Cells returns the live cells as a slice. Order is unspecified.
func (s Set) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}
