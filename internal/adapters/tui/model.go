// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sosanka7-alt/habit-progress-hub/internal/config"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/sosanka7-alt/habit-progress-hub/internal/ports"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// countTarget identifies which grid dimension a numeric overlay edits.
type countTarget int

const (
	targetHabits countTarget = iota
	targetWeeks
)

// Model represents the TUI state.
type Model struct {
	tracker *domain.Tracker
	chart   ports.ChartRenderer
	theme   config.ThemeConfig
	width   int
	height  int

	cursorRow int
	cursorCol int

	// Overlay modes. At most one is active at a time.
	renameMode  bool
	renameInput textinput.Model
	countMode   bool
	countTarget countTarget
	countInput  textinput.Model
	searchMode  bool
	searchInput textinput.Model

	// celebrated latches after the completion callback fires so a full
	// grid only notifies once. It re-arms when the percentage drops
	// back below 100.
	celebrated     bool
	onGridComplete func(domain.Stats)

	// Notifications
	notificationsEnabled bool
	notificationToggle   func(bool)
}

// NewModel creates a new TUI model for the given tracker.
func NewModel(tracker *domain.Tracker, chart ports.ChartRenderer, theme *config.ThemeConfig) Model {
	ri := textinput.New()
	ri.Placeholder = "Habit name"
	ri.CharLimit = 40
	ri.Width = 24

	ci := textinput.New()
	ci.Placeholder = "1"
	ci.CharLimit = 3
	ci.Width = 6

	si := textinput.New()
	si.Placeholder = "Habit to find"
	si.CharLimit = 40
	si.Width = 24

	return Model{
		tracker:     tracker,
		chart:       chart,
		theme:       resolveTheme(theme),
		renameInput: ri,
		countInput:  ci,
		searchInput: si,
	}
}

// SetOnGridComplete sets the callback invoked the first time every cell
// in the grid is checked.
func (m *Model) SetOnGridComplete(fn func(domain.Stats)) {
	m.onGridComplete = fn
}

// SetNotifications wires the notification toggle: tab flips the enabled
// state and reports it through the callback.
func (m *Model) SetNotifications(enabled bool, toggle func(bool)) {
	m.notificationsEnabled = enabled
	m.notificationToggle = toggle
}

// SetSize fixes the render size without waiting for a window size
// message. A zero height skips vertical centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window sizing applies in every mode, including overlays.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	// Overlay modes capture all keys until confirmed or cancelled.
	if m.renameMode {
		return m.updateRenameInput(msg)
	}
	if m.countMode {
		return m.updateCountInput(msg)
	}
	if m.searchMode {
		return m.updateSearchInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.notificationsEnabled = !m.notificationsEnabled
			if m.notificationToggle != nil {
				m.notificationToggle(m.notificationsEnabled)
			}
			return m, nil

		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
			}
			return m, nil

		case "down", "j":
			if m.cursorRow < m.tracker.HabitCount()-1 {
				m.cursorRow++
			}
			return m, nil

		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
			return m, nil

		case "right", "l":
			if m.cursorCol < m.tracker.SlotCount()-1 {
				m.cursorCol++
			}
			return m, nil

		case " ", "enter", "x":
			m.tracker.ToggleCell(m.cursorRow, m.cursorCol)
			m.checkGridComplete()
			return m, nil

		case "+", "=":
			m.tracker.SetHabitCount(m.tracker.HabitCount() + 1)
			m.checkGridComplete()
			return m, nil

		case "-", "_":
			m.tracker.SetHabitCount(m.tracker.HabitCount() - 1)
			m.clampCursor()
			m.checkGridComplete()
			return m, nil

		case ">", ".":
			if !m.tracker.Variant().HasFixedSlots() {
				m.tracker.SetWeekCount(m.tracker.WeekCount() + 1)
				m.checkGridComplete()
			}
			return m, nil

		case "<", ",":
			if !m.tracker.Variant().HasFixedSlots() {
				m.tracker.SetWeekCount(m.tracker.WeekCount() - 1)
				m.clampCursor()
				m.checkGridComplete()
			}
			return m, nil

		case "H":
			m.countMode = true
			m.countTarget = targetHabits
			m.countInput.Reset()
			m.countInput.Focus()
			return m, m.countInput.Cursor.BlinkCmd()

		case "W":
			if m.tracker.Variant().HasFixedSlots() {
				return m, nil
			}
			m.countMode = true
			m.countTarget = targetWeeks
			m.countInput.Reset()
			m.countInput.Focus()
			return m, m.countInput.Cursor.BlinkCmd()

		case "r":
			m.renameMode = true
			m.renameInput.SetValue(m.tracker.HabitName(m.cursorRow))
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
			return m, m.renameInput.Cursor.BlinkCmd()

		case "/":
			m.searchMode = true
			m.searchInput.Reset()
			m.searchInput.Focus()
			return m, m.searchInput.Cursor.BlinkCmd()
		}
	}

	return m, nil
}

// checkGridComplete fires the completion callback once when the grid
// reaches 100%, and re-arms as soon as it drops back below.
func (m *Model) checkGridComplete() {
	stats := m.tracker.Stats()
	if stats.Percentage == 100 && stats.Total() > 0 {
		if !m.celebrated {
			m.celebrated = true
			if m.onGridComplete != nil {
				m.onGridComplete(stats)
			}
		}
		return
	}
	m.celebrated = false
}

// clampCursor pulls the cursor back inside the grid after a dimension shrinks.
func (m *Model) clampCursor() {
	if maxRow := m.tracker.HabitCount() - 1; m.cursorRow > maxRow {
		m.cursorRow = maxRow
	}
	if maxCol := m.tracker.SlotCount() - 1; m.cursorCol > maxCol {
		m.cursorCol = maxCol
	}
}
