package domain

// Tracker owns one grid's configuration and completion state and serves its
// derived stats. The stats triple is cached and recomputed only after a
// mutation of the state, the habit count, or the slot count; renames never
// invalidate it. All access is single-goroutine: mutations arrive one at a
// time from the UI event loop, and nothing outlives the tracker.
type Tracker struct {
	grid  *GridConfig
	state *CompletionState

	stats      Stats
	statsValid bool
}

// NewTracker starts a tracker over the given grid with an empty completion
// state.
func NewTracker(grid *GridConfig) *Tracker {
	return &Tracker{
		grid:  grid,
		state: NewCompletionState(),
	}
}

// Variant returns the grid variant.
func (t *Tracker) Variant() Variant {
	return t.grid.Variant()
}

// HabitCount returns the number of visible habit rows.
func (t *Tracker) HabitCount() int {
	return t.grid.HabitCount()
}

// WeekCount returns the configured week count.
func (t *Tracker) WeekCount() int {
	return t.grid.WeekCount()
}

// SlotCount returns the number of time-slot columns.
func (t *Tracker) SlotCount() int {
	return t.grid.SlotCount()
}

// HabitName returns the display name at index, or "" when out of range.
func (t *Tracker) HabitName(index int) string {
	return t.grid.HabitName(index)
}

// HabitNames returns the visible habit names, one per row.
func (t *Tracker) HabitNames() []string {
	return t.grid.HabitNames()
}

// SetHabitCount changes the habit count through the grid's clamping rules.
func (t *Tracker) SetHabitCount(n int) {
	t.grid.SetHabitCount(n)
	t.statsValid = false
}

// SetWeekCount changes the week count through the grid's clamping rules.
func (t *Tracker) SetWeekCount(n int) {
	t.grid.SetWeekCount(n)
	t.statsValid = false
}

// RenameHabit replaces a habit's display name. Names do not feed the stats,
// so the cached triple stays valid.
func (t *Tracker) RenameHabit(index int, name string) {
	t.grid.RenameHabit(index, name)
}

// SetCell overwrites one completion cell.
func (t *Tracker) SetCell(habit, slot int, value bool) {
	t.state.Set(habit, slot, value)
	t.statsValid = false
}

// ToggleCell flips one completion cell.
func (t *Tracker) ToggleCell(habit, slot int) {
	t.state.Toggle(habit, slot)
	t.statsValid = false
}

// IsSet reads one completion cell; missing cells read as false.
func (t *Tracker) IsSet(habit, slot int) bool {
	return t.state.IsSet(habit, slot)
}

// Stats returns the derived triple, recomputing it only when a prior
// mutation invalidated the cached value.
func (t *Tracker) Stats() Stats {
	if !t.statsValid {
		t.stats = ComputeStats(t.state, t.grid.HabitCount(), t.grid.SlotCount())
		t.statsValid = true
	}
	return t.stats
}
