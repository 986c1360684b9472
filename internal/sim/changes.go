package sim

import "sparselife/internal/view"

// ChangeSet reports what changed since the consumer last polled. Each field
// is paired with a set flag; an unset field means "unchanged, skip it".
// Repeated updates within one poll window coalesce to the latest value.
type ChangeSet struct {
	Cells    []Cell
	CellsSet bool

	Scale    float64
	ScaleSet bool

	Offset    view.Vec
	OffsetSet bool
}

// Empty reports whether nothing changed.
func (c ChangeSet) Empty() bool {
	return !c.CellsSet && !c.ScaleSet && !c.OffsetSet
}

// Merge folds other into c, later values winning per field.
func (c *ChangeSet) Merge(other ChangeSet) {
	if other.CellsSet {
		c.Cells = other.Cells
		c.CellsSet = true
	}
	if other.ScaleSet {
		c.Scale = other.Scale
		c.ScaleSet = true
	}
	if other.OffsetSet {
		c.Offset = other.Offset
		c.OffsetSet = true
	}
}
