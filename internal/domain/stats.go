package domain

import "math"

// Stats is the derived completed/remaining/percentage triple for a grid.
type Stats struct {
	Completed  int
	Remaining  int
	Percentage int
}

// Total returns the number of cells the stats were computed over.
func (s Stats) Total() int {
	return s.Completed + s.Remaining
}

// ComputeStats counts completed cells inside the current grid bounds and
// derives the remaining count and rounded percentage. Cells written outside
// the bounds are not counted. An empty grid yields a zero percentage rather
// than dividing by zero.
func ComputeStats(state *CompletionState, habits, slots int) Stats {
	if habits < 0 {
		habits = 0
	}
	if slots < 0 {
		slots = 0
	}

	total := habits * slots
	completed := 0
	for h := 0; h < habits; h++ {
		for t := 0; t < slots; t++ {
			if state.IsSet(h, t) {
				completed++
			}
		}
	}

	stats := Stats{
		Completed: completed,
		Remaining: total - completed,
	}
	if total > 0 {
		stats.Percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return stats
}
