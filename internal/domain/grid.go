// Package domain contains the core business entities for Habit Hub.
// These entities represent the fundamental concepts of the habit grid
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid sizing limits. Counts outside these ranges are clamped, never rejected.
const (
	MinHabits   = 1
	MaxHabits   = 10
	MinWeeks    = 1
	MaxWeeks    = 12
	DaysPerWeek = 7
)

// Starting dimensions used when no configuration overrides them.
const (
	DefaultHabitCount = 3
	DefaultWeekCount  = 4
)

// DefaultHabitNames returns the starter habit names.
func DefaultHabitNames() []string {
	return []string{"Exercise", "Read", "Meditate"}
}

// ClampHabitCount clamps n into [MinHabits, MaxHabits].
func ClampHabitCount(n int) int {
	if n < MinHabits {
		return MinHabits
	}
	if n > MaxHabits {
		return MaxHabits
	}
	return n
}

// ClampWeekCount clamps n into [MinWeeks, MaxWeeks].
func ClampWeekCount(n int) int {
	if n < MinWeeks {
		return MinWeeks
	}
	if n > MaxWeeks {
		return MaxWeeks
	}
	return n
}

// ParseCount parses numeric user input for a habit or week count.
// Anything that does not parse as an integer falls back to 1; range
// clamping happens at the setter, not here.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// GridConfig holds the grid dimensions and the per-habit display names.
// The name list grows lazily when the habit count increases and is never
// truncated when it decreases, so names survive a shrink/regrow cycle.
type GridConfig struct {
	variant Variant
	habits  int
	weeks   int
	names   []string
}

// NewGridConfig builds a grid for the given variant. Counts are clamped and
// the name list is padded with generated names up to the habit count. The
// initial name list may be longer than the habit count; extra names are kept.
func NewGridConfig(variant Variant, habits, weeks int, names []string) *GridConfig {
	g := &GridConfig{
		variant: variant,
		habits:  ClampHabitCount(habits),
		weeks:   ClampWeekCount(weeks),
	}
	g.names = append(g.names, names...)
	g.ensureNames()
	return g
}

// DefaultGridConfig builds the starting grid: 3 habits, 4 weeks.
func DefaultGridConfig(variant Variant) *GridConfig {
	return NewGridConfig(variant, DefaultHabitCount, DefaultWeekCount, DefaultHabitNames())
}

// Variant returns the grid variant.
func (g *GridConfig) Variant() Variant {
	return g.variant
}

// HabitCount returns the number of visible habit rows.
func (g *GridConfig) HabitCount() int {
	return g.habits
}

// WeekCount returns the configured week count, regardless of variant.
func (g *GridConfig) WeekCount() int {
	return g.weeks
}

// SlotCount returns the number of time-slot columns: the week count in the
// weeks-variant, always DaysPerWeek in the days-variant.
func (g *GridConfig) SlotCount() int {
	if g.variant == VariantDaily {
		return DaysPerWeek
	}
	return g.weeks
}

// SetHabitCount sets the habit count, clamped to [MinHabits, MaxHabits].
// Growing past the current name list appends "Habit N" placeholders;
// shrinking keeps every existing name.
func (g *GridConfig) SetHabitCount(n int) {
	g.habits = ClampHabitCount(n)
	g.ensureNames()
}

// SetWeekCount sets the week count, clamped to [MinWeeks, MaxWeeks].
// Days-variant grids ignore it: their slot axis is fixed.
func (g *GridConfig) SetWeekCount(n int) {
	if g.variant == VariantDaily {
		return
	}
	g.weeks = ClampWeekCount(n)
}

// RenameHabit replaces the display name at index. Any string is accepted,
// including empty or duplicate names; out-of-range indices are ignored.
func (g *GridConfig) RenameHabit(index int, name string) {
	if index < 0 || index >= len(g.names) {
		return
	}
	g.names[index] = name
}

// HabitName returns the display name at index, or "" when out of range.
func (g *GridConfig) HabitName(index int) string {
	if index < 0 || index >= len(g.names) {
		return ""
	}
	return g.names[index]
}

// HabitNames returns a copy of the visible habit names, one per row.
func (g *GridConfig) HabitNames() []string {
	out := make([]string, g.habits)
	copy(out, g.names[:g.habits])
	return out
}

func (g *GridConfig) ensureNames() {
	for i := len(g.names); i < g.habits; i++ {
		g.names = append(g.names, fmt.Sprintf("Habit %d", i+1))
	}
}
