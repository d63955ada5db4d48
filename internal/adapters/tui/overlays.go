package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
)

// updateRenameInput handles keys while the rename overlay is active.
func (m Model) updateRenameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.tracker.RenameHabit(m.cursorRow, m.renameInput.Value())
			m.renameMode = false
			m.renameInput.Blur()
			return m, nil
		case "esc":
			m.renameMode = false
			m.renameInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// updateCountInput handles keys while the numeric count overlay is active.
func (m Model) updateCountInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			count := domain.ParseCount(m.countInput.Value())
			if m.countTarget == targetHabits {
				m.tracker.SetHabitCount(count)
			} else {
				m.tracker.SetWeekCount(count)
			}
			m.clampCursor()
			m.checkGridComplete()
			m.countMode = false
			m.countInput.Blur()
			return m, nil
		case "esc":
			m.countMode = false
			m.countInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.countInput, cmd = m.countInput.Update(msg)
	return m, cmd
}

// updateSearchInput handles keys while the habit search overlay is active.
func (m Model) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if idx, ok := bestMatch(m.searchInput.Value(), m.tracker.HabitNames()); ok {
				m.cursorRow = idx
			}
			m.searchMode = false
			m.searchInput.Blur()
			return m, nil
		case "esc":
			m.searchMode = false
			m.searchInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// bestMatch returns the index of the strongest fuzzy match for query
// among names, or false when nothing matches well enough.
func bestMatch(query string, names []string) (int, bool) {
	if query == "" {
		return 0, false
	}
	for _, match := range fuzzy.Find(query, names) {
		if match.Score > 0 {
			return match.Index, true
		}
	}
	return 0, false
}
