package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/sosanka7-alt/habit-progress-hub/internal/ports"
)

// nameColWidth is the fixed width of the habit name column. Names longer
// than this are shortened for display only; the stored name is untouched.
const nameColWidth = 14

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.ColorTitle)).
		MarginBottom(1)

	var sections []string
	sections = append(sections, titleStyle.Render(
		fmt.Sprintf("%s Habit Hub - %s Grid", m.theme.IconApp, m.tracker.Variant().Label())))
	sections = append(sections, m.viewConfigLine())
	sections = append(sections, "")
	sections = append(sections, m.viewGrid())
	sections = append(sections, "")
	sections = append(sections, m.viewStatsPanel())
	sections = append(sections, "")

	switch {
	case m.renameMode:
		sections = append(sections, m.viewOverlay("Rename habit:", m.renameInput.View(), "enter save · esc cancel"))
	case m.countMode:
		prompt := "How many habits?"
		if m.countTarget == targetWeeks {
			prompt = "How many weeks?"
		}
		sections = append(sections, m.viewOverlay(prompt, m.countInput.View(), "enter apply · esc cancel"))
	case m.searchMode:
		sections = append(sections, m.viewOverlay("Jump to habit:", m.searchInput.View(), "enter jump · esc cancel"))
	default:
		sections = append(sections, m.viewHelp())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewConfigLine shows the current grid dimensions against their limits.
func (m Model) viewConfigLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHeader))
	if m.tracker.Variant().HasFixedSlots() {
		return style.Render(fmt.Sprintf("Habits %d of %d", m.tracker.HabitCount(), domain.MaxHabits))
	}
	return style.Render(fmt.Sprintf("Habits %d of %d   Weeks %d of %d",
		m.tracker.HabitCount(), domain.MaxHabits,
		m.tracker.WeekCount(), domain.MaxWeeks))
}

// viewGrid renders the habit rows with one checkbox cell per time slot.
func (m Model) viewGrid() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorHeader))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorName))
	checkedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorCompleted))
	uncheckedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	cursorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(m.theme.ColorCursor))

	slots := m.tracker.SlotCount()

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", nameColWidth))
	for s := 0; s < slots; s++ {
		header.WriteString(fmt.Sprintf("%-4s", m.tracker.Variant().SlotLabel(s)))
	}

	lines := []string{headerStyle.Render(header.String())}
	for h := 0; h < m.tracker.HabitCount(); h++ {
		var row strings.Builder
		row.WriteString(nameStyle.Render(padName(m.tracker.HabitName(h), nameColWidth)))
		for s := 0; s < slots; s++ {
			icon := m.theme.IconUnchecked
			style := uncheckedStyle
			if m.tracker.IsSet(h, s) {
				icon = m.theme.IconChecked
				style = checkedStyle
			}
			cell := fmt.Sprintf(" %s  ", icon)
			if h == m.cursorRow && s == m.cursorCol {
				row.WriteString(cursorStyle.Render(cell))
			} else {
				row.WriteString(style.Render(cell))
			}
		}
		lines = append(lines, row.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewStatsPanel renders the donut chart next to the big percentage figure.
func (m Model) viewStatsPanel() string {
	stats := m.tracker.Stats()

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHeader))
	detail := detailStyle.Render(fmt.Sprintf("%d of %d cells", stats.Completed, stats.Total()))

	percent := renderBigPercent(stats.Percentage, m.theme.ColorCompleted, m.width)
	right := lipgloss.JoinVertical(lipgloss.Center, percent, "", detail)

	panel := right
	if m.chart != nil {
		donut := m.chart.Donut(
			ports.ChartValue{Label: "Completed", Count: stats.Completed, Color: m.theme.ColorCompleted},
			ports.ChartValue{Label: "Remaining", Count: stats.Remaining, Color: m.theme.ColorRemaining},
		)
		panel = lipgloss.JoinHorizontal(lipgloss.Center, donut, "   ", right)
	}

	if stats.Percentage == 100 && stats.Total() > 0 {
		bannerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorCompleted))
		panel = lipgloss.JoinVertical(lipgloss.Center,
			panel, "", bannerStyle.Render("Perfect grid! Every cell checked."))
	}

	return panel
}

// viewOverlay renders an active text input with its prompt and key hint.
func (m Model) viewOverlay(prompt, input, hint string) string {
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	return lipgloss.JoinVertical(lipgloss.Center,
		promptStyle.Render(prompt),
		input,
		hintStyle.Render(hint),
	)
}

// viewHelp renders the two-line key reference shown when no overlay is open.
func (m Model) viewHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	notify := "off"
	if m.notificationsEnabled {
		notify = "on"
	}
	second := fmt.Sprintf("+/- habits · </> weeks · H/W type a count · tab notify: %s", notify)
	if m.tracker.Variant().HasFixedSlots() {
		second = fmt.Sprintf("+/- habits · H type a count · tab notify: %s", notify)
	}
	return helpStyle.Render("↑↓←→ move · space toggle · r rename · / find · q quit\n" + second)
}

// padName fits a habit name into the fixed name column, shortening the
// displayed text with an ellipsis when it would overflow.
func padName(name string, width int) string {
	runes := []rune(name)
	if len(runes) >= width {
		return string(runes[:width-2]) + "… "
	}
	return name + strings.Repeat(" ", width-len(runes))
}
