package app

import (
	"testing"
	"time"

	"github.com/zhubert/studdy/internal/ui"
)

func TestFocus_TabCyclesThroughGrid(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 150, 44)

	want := []Focus{FocusHabits, FocusScheduler, FocusTasks, FocusNotes, FocusGoals, FocusTimer}
	for _, f := range want {
		sendKey(m, "tab")
		if m.Focus() != f {
			t.Fatalf("focus = %v, want %v", m.Focus(), f)
		}
		for i, p := range m.panels {
			if p.IsFocused() != (Focus(i) == f) {
				t.Errorf("panel %v focused = %v", Focus(i), p.IsFocused())
			}
		}
	}

	sendKey(m, "shift+tab")
	if m.Focus() != FocusGoals {
		t.Errorf("shift+tab from Timer: focus = %v, want Goals", m.Focus())
	}
}

func TestFocus_NumberKeys(t *testing.T) {
	tests := []struct {
		key  string
		want Focus
	}{
		{"1", FocusTimer},
		{"2", FocusHabits},
		{"3", FocusScheduler},
		{"4", FocusTasks},
		{"5", FocusNotes},
		{"6", FocusGoals},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := testModelWithSize(testConfig(), 150, 44)
			sendKey(m, tt.key)
			if m.Focus() != tt.want {
				t.Errorf("focus = %v, want %v", m.Focus(), tt.want)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 150, 44)
	if !isQuit(sendKey(m, "q")) {
		t.Error("q on the timer panel should quit")
	}

	m, _ = testModelWithSize(testConfig(), 150, 44)
	sendKey(m, "tab") // habit name input
	if !isQuit(sendKey(m, "ctrl+c")) {
		t.Error("ctrl+c should quit while typing")
	}
}

func TestTypingSuppressesShortcuts(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 150, 44)
	sendKey(m, "tab")
	if !m.focused().Typing() {
		t.Fatal("habit name input should be typing")
	}

	for _, key := range []string{"q", "?", ",", "Q", "3"} {
		if isQuit(sendKey(m, key)) {
			t.Fatalf("%q quit while typing", key)
		}
	}
	if m.modal.IsVisible() {
		t.Errorf("modal %T opened while typing", m.modal.State)
	}
	if m.Focus() != FocusHabits {
		t.Errorf("focus = %v, want Habits", m.Focus())
	}
	if got := m.habits.HabitName(); got != "q?,Q3" {
		t.Errorf("habit name = %q, want q?,Q3", got)
	}
}

func TestHelpModal(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 150, 44)

	sendKey(m, "?")
	state, ok := m.modal.State.(*ui.HelpState)
	if !ok {
		t.Fatalf("modal = %T, want HelpState", m.modal.State)
	}
	if sc := state.SelectedShortcut(); sc == nil || sc.Key != "Tab" {
		t.Fatalf("selected = %+v, want Tab", sc)
	}

	cmd := sendKey(m, "enter")
	if m.modal.IsVisible() {
		t.Fatal("enter should close help")
	}
	if cmd == nil {
		t.Fatal("expected the shortcut to be triggered")
	}
	send(m, cmd())
	if m.Focus() != FocusHabits {
		t.Errorf("focus = %v, want Habits", m.Focus())
	}

	m.setFocus(FocusTimer)
	sendKey(m, "?")
	sendKey(m, "esc")
	if m.modal.IsVisible() {
		t.Error("esc should close help")
	}
}

func TestGetHelpSections_Order(t *testing.T) {
	m, _ := testModel(testConfig())
	sections := m.getHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)

	if len(sections) != len(categoryOrder) {
		t.Fatalf("got %d sections, want %d", len(sections), len(categoryOrder))
	}
	for i, s := range sections {
		if s.Title != categoryOrder[i] {
			t.Errorf("section %d = %q, want %q", i, s.Title, categoryOrder[i])
		}
		if len(s.Shortcuts) == 0 {
			t.Errorf("section %q is empty", s.Title)
		}
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"Tab", "tab"},
		{"Shift+Tab", "shift+tab"},
		{"q", "q"},
		{"Q", "Q"},
		{",", ","},
		{"3", "3"},
		{"Ctrl+P", ""},
		{"Space", ""},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			if got := normalizeHelpDisplayKey(tt.display); got != tt.want {
				t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}

func TestAddEventModal(t *testing.T) {
	m, clock := testModelWithSize(testConfig(), 150, 44)
	clock.Advance(4*time.Hour + 40*time.Minute) // 14:10
	today := m.store.Today()

	send(m, ui.OpenAddEventMsg{Day: today})
	state, ok := m.modal.State.(*ui.AddEventState)
	if !ok {
		t.Fatalf("modal = %T, want AddEventState", m.modal.State)
	}
	if state.Slot() != "14:00" {
		t.Errorf("slot = %q, want the current hour 14:00", state.Slot())
	}

	sendKey(m, "enter")
	if !m.modal.IsVisible() || m.modal.GetError() == "" {
		t.Error("an empty label should keep the modal open with an error")
	}
	if m.store.EventCount(today) != 0 {
		t.Error("no event should be stored")
	}

	sendKey(m, "esc")
	if m.modal.IsVisible() {
		t.Error("esc should close the modal")
	}

	send(m, ui.OpenAddEventMsg{Day: today.AddDays(2)})
	if state := m.modal.State.(*ui.AddEventState); state.Slot() != "09:00" {
		t.Errorf("slot for another day = %q, want 09:00", state.Slot())
	}
	sendKey(m, "esc")

	send(m, ui.OpenAddEventMsg{})
	state = m.modal.State.(*ui.AddEventState)
	if state.Day != today || state.Slot() != "14:00" {
		t.Errorf("unset day = %v %s, want today at 14:00", state.Day, state.Slot())
	}
}
