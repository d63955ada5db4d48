package tui

// Key-flow tests for the grid Model. Each test drives a complete user
// interaction through Update so regressions in key dispatch, guard
// conditions, or callback wiring fail fast here.

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds a sequence of keys through Update and returns the final model.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		result, _ := m.Update(key(k))
		m = result.(Model)
	}
	return m
}

func weeklyModel() Model {
	tracker := domain.NewTracker(domain.DefaultGridConfig(domain.VariantWeekly))
	m := NewModel(tracker, nil, nil)
	m.width = 80
	m.height = 24
	return m
}

func dailyModel() Model {
	tracker := domain.NewTracker(domain.DefaultGridConfig(domain.VariantDaily))
	m := NewModel(tracker, nil, nil)
	m.width = 80
	m.height = 24
	return m
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

func TestModel_Navigation_MovesCursor(t *testing.T) {
	m := weeklyModel()
	m = press(m, "right", "right", "down")
	if m.cursorRow != 1 || m.cursorCol != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", m.cursorRow, m.cursorCol)
	}
}

func TestModel_Navigation_VimKeys(t *testing.T) {
	m := weeklyModel()
	m = press(m, "l", "l", "j", "j", "h", "k")
	if m.cursorRow != 1 || m.cursorCol != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", m.cursorRow, m.cursorCol)
	}
}

func TestModel_Navigation_StopsAtEdges(t *testing.T) {
	m := weeklyModel()
	m = press(m, "up", "left")
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("cursor moved past origin: (%d,%d)", m.cursorRow, m.cursorCol)
	}

	for i := 0; i < 20; i++ {
		m = press(m, "right", "down")
	}
	if m.cursorRow != m.tracker.HabitCount()-1 {
		t.Errorf("cursorRow = %d, want %d", m.cursorRow, m.tracker.HabitCount()-1)
	}
	if m.cursorCol != m.tracker.SlotCount()-1 {
		t.Errorf("cursorCol = %d, want %d", m.cursorCol, m.tracker.SlotCount()-1)
	}
}

// ---------------------------------------------------------------------------
// Toggling cells
// ---------------------------------------------------------------------------

func TestModel_SpaceKey_ChecksCell(t *testing.T) {
	m := weeklyModel()
	m = press(m, " ")
	if !m.tracker.IsSet(0, 0) {
		t.Error("space should check the cell under the cursor")
	}
	if got := m.tracker.Stats().Completed; got != 1 {
		t.Errorf("Completed = %d, want 1", got)
	}
}

func TestModel_SpaceKey_SecondPressUnchecks(t *testing.T) {
	m := weeklyModel()
	m = press(m, " ", " ")
	if m.tracker.IsSet(0, 0) {
		t.Error("second space should uncheck the cell")
	}
}

func TestModel_EnterAndX_AlsoToggle(t *testing.T) {
	m := weeklyModel()
	m = press(m, "enter")
	if !m.tracker.IsSet(0, 0) {
		t.Error("enter should toggle the cell")
	}
	m = press(m, "right", "x")
	if !m.tracker.IsSet(0, 1) {
		t.Error("x should toggle the cell")
	}
}

func TestModel_Toggle_FollowsCursor(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "right", "right", " ")
	if !m.tracker.IsSet(1, 2) {
		t.Error("toggle should apply to the cell under the cursor")
	}
	if m.tracker.IsSet(0, 0) {
		t.Error("origin cell should be untouched")
	}
}

// ---------------------------------------------------------------------------
// Dimension keys
// ---------------------------------------------------------------------------

func TestModel_PlusMinus_ChangeHabitCount(t *testing.T) {
	m := weeklyModel()
	m = press(m, "+")
	if got := m.tracker.HabitCount(); got != 4 {
		t.Errorf("HabitCount = %d, want 4", got)
	}
	m = press(m, "-", "-")
	if got := m.tracker.HabitCount(); got != 2 {
		t.Errorf("HabitCount = %d, want 2", got)
	}
}

func TestModel_PlusKey_ClampsAtMax(t *testing.T) {
	m := weeklyModel()
	for i := 0; i < 15; i++ {
		m = press(m, "+")
	}
	if got := m.tracker.HabitCount(); got != domain.MaxHabits {
		t.Errorf("HabitCount = %d, want %d", got, domain.MaxHabits)
	}
}

func TestModel_MinusKey_ClampsAtMin(t *testing.T) {
	m := weeklyModel()
	for i := 0; i < 15; i++ {
		m = press(m, "-")
	}
	if got := m.tracker.HabitCount(); got != domain.MinHabits {
		t.Errorf("HabitCount = %d, want %d", got, domain.MinHabits)
	}
}

func TestModel_AngleKeys_ChangeWeekCount(t *testing.T) {
	m := weeklyModel()
	m = press(m, ">")
	if got := m.tracker.WeekCount(); got != 5 {
		t.Errorf("WeekCount = %d, want 5", got)
	}
	for i := 0; i < 20; i++ {
		m = press(m, ">")
	}
	if got := m.tracker.WeekCount(); got != domain.MaxWeeks {
		t.Errorf("WeekCount = %d, want %d", got, domain.MaxWeeks)
	}
	for i := 0; i < 20; i++ {
		m = press(m, "<")
	}
	if got := m.tracker.WeekCount(); got != domain.MinWeeks {
		t.Errorf("WeekCount = %d, want %d", got, domain.MinWeeks)
	}
}

func TestModel_WeekKeys_NoopForDaily(t *testing.T) {
	m := dailyModel()
	m = press(m, ">", ">", "<")
	if got := m.tracker.SlotCount(); got != domain.DaysPerWeek {
		t.Errorf("SlotCount = %d, want %d", got, domain.DaysPerWeek)
	}
}

func TestModel_Shrink_ClampsCursor(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "down", "-", "-")
	if m.cursorRow != 0 {
		t.Errorf("cursorRow = %d, want 0 after shrinking to 1 habit", m.cursorRow)
	}

	m = weeklyModel()
	m = press(m, "right", "right", "right", "<", "<", "<")
	if m.cursorCol != 0 {
		t.Errorf("cursorCol = %d, want 0 after shrinking to 1 week", m.cursorCol)
	}
}

func TestModel_Shrink_KeepsHiddenChecksForRegrow(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "down", " ", "-", "-", "+", "+")
	if !m.tracker.IsSet(2, 0) {
		t.Error("check on a hidden row should survive shrink and regrow")
	}
}

// ---------------------------------------------------------------------------
// Count overlay
// ---------------------------------------------------------------------------

func TestModel_CountOverlay_SetsHabitCount(t *testing.T) {
	m := weeklyModel()
	m = press(m, "H")
	if !m.countMode {
		t.Fatal("[H] should open the count overlay")
	}
	m = press(m, "7", "enter")
	if m.countMode {
		t.Error("enter should close the count overlay")
	}
	if got := m.tracker.HabitCount(); got != 7 {
		t.Errorf("HabitCount = %d, want 7", got)
	}
}

func TestModel_CountOverlay_ClampsLargeInput(t *testing.T) {
	m := weeklyModel()
	m = press(m, "H", "99", "enter")
	if got := m.tracker.HabitCount(); got != domain.MaxHabits {
		t.Errorf("HabitCount = %d, want %d", got, domain.MaxHabits)
	}
}

func TestModel_CountOverlay_GarbageFallsBackToOne(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "H", "abc", "enter")
	if got := m.tracker.HabitCount(); got != 1 {
		t.Errorf("HabitCount = %d, want 1", got)
	}
	if m.cursorRow != 0 {
		t.Errorf("cursorRow = %d, want 0 after collapse to 1 habit", m.cursorRow)
	}
}

func TestModel_CountOverlay_WeeksTarget(t *testing.T) {
	m := weeklyModel()
	m = press(m, "W", "2", "enter")
	if got := m.tracker.WeekCount(); got != 2 {
		t.Errorf("WeekCount = %d, want 2", got)
	}
	if got := m.tracker.HabitCount(); got != 3 {
		t.Errorf("HabitCount = %d, want 3 (untouched)", got)
	}
}

func TestModel_CountOverlay_EscCancels(t *testing.T) {
	m := weeklyModel()
	m = press(m, "H", "9", "esc")
	if m.countMode {
		t.Error("esc should close the count overlay")
	}
	if got := m.tracker.HabitCount(); got != 3 {
		t.Errorf("HabitCount = %d, want 3 after cancel", got)
	}
}

func TestModel_CountOverlay_WeeksKeyNoopForDaily(t *testing.T) {
	m := dailyModel()
	m = press(m, "W")
	if m.countMode {
		t.Error("[W] should not open an overlay for the daily grid")
	}
}

// ---------------------------------------------------------------------------
// Rename overlay
// ---------------------------------------------------------------------------

func TestModel_RenameOverlay_PrefillsCurrentName(t *testing.T) {
	m := weeklyModel()
	m = press(m, "r")
	if !m.renameMode {
		t.Fatal("[r] should open the rename overlay")
	}
	if got := m.renameInput.Value(); got != "Exercise" {
		t.Errorf("rename input = %q, want %q", got, "Exercise")
	}
}

func TestModel_RenameFlow_SavesNewName(t *testing.T) {
	m := weeklyModel()
	m = press(m, "r", "ctrl+u", "Gym", "enter")
	if m.renameMode {
		t.Error("enter should close the rename overlay")
	}
	if got := m.tracker.HabitName(0); got != "Gym" {
		t.Errorf("HabitName(0) = %q, want %q", got, "Gym")
	}
}

func TestModel_RenameFlow_TargetsCursorRow(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "r", "ctrl+u", "Books", "enter")
	if got := m.tracker.HabitName(1); got != "Books" {
		t.Errorf("HabitName(1) = %q, want %q", got, "Books")
	}
	if got := m.tracker.HabitName(0); got != "Exercise" {
		t.Errorf("HabitName(0) = %q, want %q", got, "Exercise")
	}
}

func TestModel_RenameFlow_EmptyNameAllowed(t *testing.T) {
	m := weeklyModel()
	m = press(m, "r", "ctrl+u", "enter")
	if got := m.tracker.HabitName(0); got != "" {
		t.Errorf("HabitName(0) = %q, want empty", got)
	}
}

func TestModel_RenameFlow_EscKeepsOldName(t *testing.T) {
	m := weeklyModel()
	m = press(m, "r", "ctrl+u", "Ignored", "esc")
	if got := m.tracker.HabitName(0); got != "Exercise" {
		t.Errorf("HabitName(0) = %q, want %q after cancel", got, "Exercise")
	}
}

// ---------------------------------------------------------------------------
// Search overlay
// ---------------------------------------------------------------------------

func TestModel_SearchFlow_JumpsToMatch(t *testing.T) {
	m := weeklyModel()
	m = press(m, "/")
	if !m.searchMode {
		t.Fatal("[/] should open the search overlay")
	}
	m = press(m, "Medi", "enter")
	if m.searchMode {
		t.Error("enter should close the search overlay")
	}
	if m.cursorRow != 2 {
		t.Errorf("cursorRow = %d, want 2 (Meditate)", m.cursorRow)
	}
}

func TestModel_SearchFlow_NoMatchKeepsCursor(t *testing.T) {
	m := weeklyModel()
	m = press(m, "down", "/", "zzz", "enter")
	if m.cursorRow != 1 {
		t.Errorf("cursorRow = %d, want 1 when nothing matches", m.cursorRow)
	}
}

func TestModel_SearchFlow_EscCancels(t *testing.T) {
	m := weeklyModel()
	m = press(m, "/", "Medi", "esc")
	if m.cursorRow != 0 {
		t.Errorf("cursorRow = %d, want 0 after cancel", m.cursorRow)
	}
}

// ---------------------------------------------------------------------------
// Completion callback
// ---------------------------------------------------------------------------

func TestModel_CompletionCallback_FiresOnceAtFullGrid(t *testing.T) {
	var calls []domain.Stats
	m := weeklyModel()
	m.SetOnGridComplete(func(s domain.Stats) {
		calls = append(calls, s)
	})

	m = press(m, "H", "1", "enter", "W", "1", "enter")
	if len(calls) != 0 {
		t.Fatalf("callback fired before the grid was complete: %d calls", len(calls))
	}

	m = press(m, " ")
	if len(calls) != 1 {
		t.Fatalf("callback calls = %d, want 1 after completing the grid", len(calls))
	}
	if calls[0].Percentage != 100 || calls[0].Completed != 1 {
		t.Errorf("callback stats = %+v, want 1 completed at 100%%", calls[0])
	}
}

func TestModel_CompletionCallback_RearmsBelowFull(t *testing.T) {
	var calls int
	m := weeklyModel()
	m.SetOnGridComplete(func(domain.Stats) { calls++ })

	m = press(m, "H", "1", "enter", "W", "1", "enter")
	m = press(m, " ", " ", " ")
	if calls != 2 {
		t.Errorf("callback calls = %d, want 2 (complete, uncheck, complete again)", calls)
	}
}

func TestModel_CompletionCallback_FiresOnShrinkToComplete(t *testing.T) {
	var calls int
	m := weeklyModel()
	m.SetOnGridComplete(func(domain.Stats) { calls++ })

	m = press(m, " ", "-", "-")
	if calls != 0 {
		t.Fatalf("callback calls = %d, want 0 while weeks remain unchecked", calls)
	}
	m = press(m, "<", "<", "<")
	if calls != 1 {
		t.Errorf("callback calls = %d, want 1 after shrinking to the checked cell", calls)
	}
}

func TestModel_CompletionCallback_GrowthRearms(t *testing.T) {
	var calls int
	m := weeklyModel()
	m.SetOnGridComplete(func(domain.Stats) { calls++ })

	m = press(m, "H", "1", "enter", "W", "1", "enter", " ")
	if calls != 1 {
		t.Fatalf("callback calls = %d, want 1", calls)
	}
	m = press(m, "+", "down", " ")
	if calls != 2 {
		t.Errorf("callback calls = %d, want 2 after filling the grown grid", calls)
	}
}

// ---------------------------------------------------------------------------
// Notifications toggle
// ---------------------------------------------------------------------------

func TestModel_TabKey_TogglesNotifications(t *testing.T) {
	var got []bool
	m := weeklyModel()
	m.SetNotifications(true, func(enabled bool) {
		got = append(got, enabled)
	})

	m = press(m, "tab")
	if m.notificationsEnabled {
		t.Error("tab should disable notifications")
	}
	m = press(m, "tab")
	if !m.notificationsEnabled {
		t.Error("second tab should re-enable notifications")
	}
	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("toggle callback values = %v, want [false true]", got)
	}
}

// ---------------------------------------------------------------------------
// Variant picker
// ---------------------------------------------------------------------------

func testPicker() pickerModel {
	return pickerModel{
		title: "How do you want to track?",
		items: []PickerItem{
			{Label: "Weekly", Desc: "weeks"},
			{Label: "Daily", Desc: "days"},
		},
		theme: resolveTheme(nil),
	}
}

func TestPicker_ArrowKeysMoveCursor(t *testing.T) {
	m := testPicker()

	result, _ := m.Update(key("down"))
	m = result.(pickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	result, _ = m.Update(key("down"))
	m = result.(pickerModel)
	if m.cursor != 1 {
		t.Error("cursor should stop at the last item")
	}

	result, _ = m.Update(key("k"))
	m = result.(pickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after k", m.cursor)
	}
}

func TestPicker_EnterSelects(t *testing.T) {
	m := testPicker()
	result, cmd := m.Update(key("enter"))
	m = result.(pickerModel)

	if !m.chosen {
		t.Error("enter should mark the picker chosen")
	}
	if cmd == nil {
		t.Fatal("enter should quit the picker program")
	}
}

func TestPicker_EscAborts(t *testing.T) {
	m := testPicker()
	result, _ := m.Update(key("esc"))
	m = result.(pickerModel)

	if !m.aborted {
		t.Error("esc should abort the picker")
	}
}

func TestPicker_ViewListsItems(t *testing.T) {
	m := testPicker()
	view := m.View()

	for _, want := range []string{"How do you want to track?", "Weekly", "Daily", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("picker view should contain %q", want)
		}
	}
}

// ---------------------------------------------------------------------------
// Quit and window sizing
// ---------------------------------------------------------------------------

func TestModel_QuitKey_ReturnsQuitCmd(t *testing.T) {
	m := weeklyModel()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("[q] should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("[q] command should produce tea.QuitMsg")
	}
}

func TestModel_WindowSize_AppliesDuringOverlay(t *testing.T) {
	m := weeklyModel()
	m = press(m, "r")
	result, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = result.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if !m.renameMode {
		t.Error("resizing should not close the rename overlay")
	}
}
