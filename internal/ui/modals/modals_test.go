package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/calendar"
)

var testDay = calendar.Date{Year: 2026, Month: 10, Day: 16}

// =============================================================================
// AddEventState Tests
// =============================================================================

func TestNewAddEventState_DefaultSlot(t *testing.T) {
	tests := []struct {
		name        string
		defaultSlot string
		want        string
	}{
		{"valid slot kept", "09:00", "09:00"},
		{"last slot kept", "23:00", "23:00"},
		{"invalid slot falls back", "09:30", "00:00"},
		{"empty falls back", "", "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAddEventState(testDay, tt.defaultSlot)
			if got := s.Slot(); got != tt.want {
				t.Errorf("Slot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddEventState_Title(t *testing.T) {
	s := NewAddEventState(testDay, "10:00")
	if !strings.Contains(s.Title(), "2026-10-16") {
		t.Errorf("Title() = %q, want the day", s.Title())
	}
	if !strings.Contains(s.Render(), "Add Event") {
		t.Error("Render() should include the title")
	}
}

func TestAddEventState_LabelTrimmed(t *testing.T) {
	s := NewAddEventState(testDay, "10:00")
	s.label = "  Gym  "
	if got := s.Label(); got != "Gym" {
		t.Errorf("Label() = %q, want %q", got, "Gym")
	}
}

func TestAddEventState_EnterAndEscInterceptedByForm(t *testing.T) {
	s := NewAddEventState(testDay, "10:00")
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		next, cmd := s.Update(msg)
		if cmd != nil {
			t.Errorf("%s: expected nil cmd", msg.String())
		}
		if next != s {
			t.Errorf("%s: state replaced", msg.String())
		}
	}
	if s.Slot() != "10:00" {
		t.Errorf("slot changed to %q", s.Slot())
	}
}

// =============================================================================
// SettingsState Tests
// =============================================================================

func newTestSettings(notifications bool) *SettingsState {
	return NewSettingsState(
		[]string{"tomato", "nord"},
		[]string{"Tomato", "Nord"},
		"tomato",
		notifications,
	)
}

func TestSettingsState_Initial(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		s := newTestSettings(enabled)
		if s.NotificationsEnabled != enabled {
			t.Errorf("NotificationsEnabled = %v, want %v", s.NotificationsEnabled, enabled)
		}
		if s.ThemeChanged() {
			t.Error("theme should not start changed")
		}
		if s.SelectedTheme() != "tomato" {
			t.Errorf("SelectedTheme() = %q", s.SelectedTheme())
		}
	}
}

func TestSettingsState_ThemeChanged(t *testing.T) {
	s := newTestSettings(true)
	s.selectedTheme = "nord"
	if !s.ThemeChanged() {
		t.Error("ThemeChanged() should be true after selecting nord")
	}
}

func TestSettingsState_SyncFromMultiSelect(t *testing.T) {
	s := newTestSettings(true)
	s.generalOptions = nil
	s.syncFromMultiSelect()
	if s.NotificationsEnabled {
		t.Error("clearing the option should disable notifications")
	}

	s.generalOptions = []string{optionNotifications}
	s.syncFromMultiSelect()
	if !s.NotificationsEnabled {
		t.Error("selecting the option should enable notifications")
	}
}

func TestSettingsState_Render(t *testing.T) {
	rendered := newTestSettings(true).Render()
	for _, want := range []string{"Settings", "Theme"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

// =============================================================================
// HelpState Tests
// =============================================================================

func testSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Shortcuts: []HelpShortcut{
				{Key: "tab", Desc: "Next panel"},
				{Key: "shift+tab", Desc: "Previous panel"},
			},
		},
		{
			Title: "General",
			Shortcuts: []HelpShortcut{
				{Key: "Q", Desc: "New quote"},
			},
		},
	}
}

func TestNewHelpState_SelectsFirstShortcut(t *testing.T) {
	s := NewHelpState(testSections())
	sc := s.SelectedShortcut()
	if sc == nil {
		t.Fatal("expected a shortcut to be selected")
	}
	if sc.Key != "tab" {
		t.Errorf("selected %q, want tab", sc.Key)
	}
}

func TestHelpState_Navigate(t *testing.T) {
	s := NewHelpState(testSections())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	sc := s.SelectedShortcut()
	if sc == nil || sc.Key != "shift+tab" {
		t.Errorf("after down, selected %v, want shift+tab", sc)
	}
}

func TestHelpState_Empty(t *testing.T) {
	s := NewHelpState(nil)
	if s.SelectedShortcut() != nil {
		t.Error("empty help should have no selection")
	}
	if s.IsFiltering() {
		t.Error("should not start filtering")
	}
}

func TestHelpState_Render(t *testing.T) {
	rendered := NewHelpState(testSections()).Render()
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "Next panel"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

// =============================================================================
// Form Theme Tests
// =============================================================================

func TestFormStyles(t *testing.T) {
	for _, isDark := range []bool{true, false} {
		s := formStyles(isDark)

		if !s.Focused.Base.GetBorderLeft() {
			t.Error("focused field should carry the left bar")
		}
		if s.Blurred.Base.GetBorderLeft() {
			t.Error("blurred field should not carry the left bar")
		}

		tests := []struct {
			name string
			got  string
			want string
		}{
			{"selected prefix", s.Focused.SelectedPrefix.Value(), "[x] "},
			{"unselected prefix", s.Focused.UnselectedPrefix.Value(), "[ ] "},
			{"focused selector", s.Focused.SelectSelector.Value(), "● "},
			{"blurred selector keeps the column", s.Blurred.SelectSelector.Value(), "  "},
			{"error indicator", s.Focused.ErrorIndicator.Value(), " !"},
		}
		for _, tt := range tests {
			if tt.got != tt.want {
				t.Errorf("dark=%v %s = %q, want %q", isDark, tt.name, tt.got, tt.want)
			}
		}
	}
}
