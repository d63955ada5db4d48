package domain

// CompletionState is the sparse habit-by-slot completion grid. Cells are
// materialized only when written; a missing cell reads as false. There is no
// delete: shrinking the grid leaves previously written cells in place, where
// they drop out of the stats while out of range and read back unchanged when
// the range grows again.
type CompletionState struct {
	cells map[int]map[int]bool
}

// NewCompletionState returns an empty completion grid.
func NewCompletionState() *CompletionState {
	return &CompletionState{cells: make(map[int]map[int]bool)}
}

// Set overwrites the cell at (habit, slot), creating the row on first write.
func (c *CompletionState) Set(habit, slot int, value bool) {
	if c.cells == nil {
		c.cells = make(map[int]map[int]bool)
	}
	row, ok := c.cells[habit]
	if !ok {
		row = make(map[int]bool)
		c.cells[habit] = row
	}
	row[slot] = value
}

// Toggle flips the cell at (habit, slot).
func (c *CompletionState) Toggle(habit, slot int) {
	c.Set(habit, slot, !c.IsSet(habit, slot))
}

// IsSet reads the cell at (habit, slot). Missing cells read as false for any
// index, including indices outside the current grid bounds.
func (c *CompletionState) IsSet(habit, slot int) bool {
	return c.cells[habit][slot]
}
