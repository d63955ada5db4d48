// Package chart renders the two-segment donut used by the stats panel.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sosanka7-alt/habit-progress-hub/internal/ports"
)

// Ring geometry, in terminal rows. Columns are scaled by cellAspect because
// a terminal cell is roughly twice as tall as it is wide.
const (
	outerRadius = 5.0
	innerRadius = 2.8
	cellAspect  = 0.5
)

const (
	cellBlank = iota
	cellFirst
	cellSecond
)

// Renderer draws donut charts sized for the stats panel.
type Renderer struct{}

// New creates a donut renderer.
func New() *Renderer {
	return &Renderer{}
}

// Donut renders segment a clockwise from twelve o'clock for its share of the
// ring and segment b for the rest, followed by one legend line per segment.
// A zero-total chart renders the whole ring in b's color.
func (r *Renderer) Donut(a, b ports.ChartValue) string {
	aStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color))
	bStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color))

	boundary := segmentShare(a.Count, b.Count) * 2 * math.Pi

	span := int(outerRadius)
	rows := make([]string, 0, 2*span+1)
	for y := -span; y <= span; y++ {
		cells := make([]int, 0, 4*span+1)
		for x := -2 * span; x <= 2*span; x++ {
			fx := float64(x) * cellAspect
			fy := float64(y)
			dist := math.Hypot(fx, fy)
			if dist < innerRadius || dist > outerRadius {
				cells = append(cells, cellBlank)
				continue
			}
			// Angle measured clockwise from twelve o'clock.
			angle := math.Atan2(fx, -fy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle < boundary {
				cells = append(cells, cellFirst)
			} else {
				cells = append(cells, cellSecond)
			}
		}
		rows = append(rows, renderRow(cells, aStyle, bStyle))
	}

	legendA := fmt.Sprintf("%s %-9s %3d", aStyle.Render("●"), a.Label, a.Count)
	legendB := fmt.Sprintf("%s %-9s %3d", bStyle.Render("●"), b.Label, b.Count)

	return lipgloss.JoinVertical(lipgloss.Center,
		strings.Join(rows, "\n"),
		"",
		legendA,
		legendB,
	)
}

// segmentShare returns a's fraction of the ring, 0 when both counts are zero.
func segmentShare(a, b int) float64 {
	total := a + b
	if total <= 0 {
		return 0
	}
	return float64(a) / float64(total)
}

// renderRow styles one canvas row, grouping consecutive same-color cells into
// a single render call.
func renderRow(cells []int, aStyle, bStyle lipgloss.Style) string {
	var row strings.Builder
	i := 0
	for i < len(cells) {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		run := strings.Repeat("█", j-i)
		switch cells[i] {
		case cellBlank:
			row.WriteString(strings.Repeat(" ", j-i))
		case cellFirst:
			row.WriteString(aStyle.Render(run))
		case cellSecond:
			row.WriteString(bStyle.Render(run))
		}
		i = j
	}
	return row.String()
}
