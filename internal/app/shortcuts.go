package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/quotes"
	"github.com/zhubert/studdy/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all app-level shortcuts.
type Shortcut struct {
	Key         string                 // The key binding (e.g., "tab", ",")
	DisplayKey  string                 // Display name in help (e.g., "Shift+Tab"); defaults to Key
	Description string                 // Human-readable description
	Category    string                 // Section for help modal grouping
	NotTyping   bool                   // Must not fire while a text input has the keyboard
	Handler     func(m *Model) tea.Cmd // Action to perform
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryGeneral    = "General"
	CategoryTimer      = "Pomodoro"
	CategoryHabits     = "Habits"
	CategorySchedule   = "Schedule"
	CategoryTasks      = "Tasks"
	CategoryNotes      = "Notes"
	CategoryGoals      = "Goals"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryGeneral,
	CategoryTimer,
	CategoryHabits,
	CategorySchedule,
	CategoryTasks,
	CategoryNotes,
	CategoryGoals,
}

// ShortcutRegistry is the central registry of app-level shortcuts. Entries
// here appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{Key: "tab", DisplayKey: "Tab", Description: "Next panel", Category: CategoryNavigation, Handler: shortcutNextPanel},
	{Key: "shift+tab", DisplayKey: "Shift+Tab", Description: "Previous panel", Category: CategoryNavigation, Handler: shortcutPrevPanel},
	{Key: "1", Description: "Focus Pomodoro", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusTimer)},
	{Key: "2", Description: "Focus Habits", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusHabits)},
	{Key: "3", Description: "Focus Schedule", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusScheduler)},
	{Key: "4", Description: "Focus Tasks", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusTasks)},
	{Key: "5", Description: "Focus Notes", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusNotes)},
	{Key: "6", Description: "Focus Goals", Category: CategoryNavigation, NotTyping: true, Handler: focusShortcut(FocusGoals)},

	// General
	{Key: ",", Description: "Settings", Category: CategoryGeneral, NotTyping: true, Handler: shortcutSettings},
	{Key: "Q", Description: "New motivation quote", Category: CategoryGeneral, NotTyping: true, Handler: shortcutShuffleQuote},
	{Key: "q", Description: "Quit", Category: CategoryGeneral, NotTyping: true, Handler: shortcutQuit},
}

// DisplayOnlyShortcuts are panel keys listed in the help modal for
// reference. The panels handle them; they cannot be run from help.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "?", Description: "This help", Category: CategoryGeneral},
	{DisplayKey: "Ctrl+C", Description: "Quit from anywhere", Category: CategoryGeneral},

	{DisplayKey: "↑/↓", Description: "Select work, break or start", Category: CategoryTimer},
	{DisplayKey: "←/→", Description: "Adjust the selected slider", Category: CategoryTimer},
	{DisplayKey: "Enter", Description: "Start a work session", Category: CategoryTimer},

	{DisplayKey: "Enter", Description: "Leave the name for the calendar", Category: CategoryHabits},
	{DisplayKey: "Arrows", Description: "Move between days", Category: CategoryHabits},
	{DisplayKey: "Space", Description: "Mark or unmark a day", Category: CategoryHabits},
	{DisplayKey: "i", Description: "Edit the habit name", Category: CategoryHabits},

	{DisplayKey: "[ / ]", Description: "Previous / next day", Category: CategorySchedule},
	{DisplayKey: "t", Description: "Jump to today", Category: CategorySchedule},
	{DisplayKey: "a", Description: "Add an event", Category: CategorySchedule},
	{DisplayKey: "Ctrl+Y", Description: "Copy the day's agenda", Category: CategorySchedule},

	{DisplayKey: "Enter", Description: "Add the typed task", Category: CategoryTasks},
	{DisplayKey: "Space", Description: "Mark a task done or open", Category: CategoryTasks},

	{DisplayKey: "Ctrl+P", Description: "Toggle markdown preview", Category: CategoryNotes},
	{DisplayKey: "Ctrl+Y", Description: "Copy the note", Category: CategoryNotes},

	{DisplayKey: "Enter", Description: "Add the typed goal", Category: CategoryGoals},
	{DisplayKey: "Space", Description: "Mark a goal achieved", Category: CategoryGoals},
}

// isShortcutApplicable checks the shortcut's guards against the current state
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.NotTyping && m.focused().Typing() {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Cmd, bool) {
	// Help is handled here because shortcutHelp reads the registry
	if key == "?" {
		if m.focused().Typing() {
			return nil, false
		}
		return shortcutHelp(m), true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "typing", m.focused().Typing())
			return nil, false
		}
		return s.Handler(m), true
	}
	return nil, false
}

// getHelpSections builds the help modal sections from the registry and
// the display-only list, in categoryOrder
func (m *Model) getHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	for _, s := range append(append([]Shortcut{}, registry...), displayOnly...) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// normalizeHelpDisplayKey maps a key shown in the help modal back to the
// registry key. Display-only shortcuts map to "".
func normalizeHelpDisplayKey(displayKey string) string {
	for _, s := range ShortcutRegistry {
		if s.Key == displayKey || (s.DisplayKey != "" && strings.EqualFold(s.DisplayKey, displayKey)) {
			return s.Key
		}
	}
	return ""
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNextPanel(m *Model) tea.Cmd {
	return m.cycleFocus(1)
}

func shortcutPrevPanel(m *Model) tea.Cmd {
	return m.cycleFocus(-1)
}

func focusShortcut(f Focus) func(m *Model) tea.Cmd {
	return func(m *Model) tea.Cmd {
		return m.setFocus(f)
	}
}

func shortcutSettings(m *Model) tea.Cmd {
	var names, display []string
	for _, name := range ui.ThemeNames() {
		names = append(names, string(name))
		display = append(display, ui.GetTheme(name).Name)
	}
	m.modal.Show(ui.NewSettingsState(names, display, string(ui.CurrentThemeName()), m.config.NotificationsEnabled()))
	return nil
}

func shortcutShuffleQuote(m *Model) tea.Cmd {
	m.header.SetQuote(quotes.Next(m.header.Quote()))
	return nil
}

func shortcutHelp(m *Model) tea.Cmd {
	m.modal.Show(ui.NewHelpState(m.getHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)))
	return nil
}

func shortcutQuit(m *Model) tea.Cmd {
	return tea.Quit
}
