// Package ui provides the user interface components for the studdy dashboard.
//
// # Overview
//
// The ui package implements the visual components of studdy using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View pattern
// established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌──────────────────────────────────────────────────────┐
//	│ Header (title bar + quote, 2 lines)                  │
//	│ Celebration strip (1 line)                           │
//	├─────────────────┬─────────────────┬──────────────────┤
//	│ Pomodoro        │ Habits          │ Schedule         │
//	├─────────────────┼─────────────────┼──────────────────┤
//	│ Tasks           │ Notes           │ Goals + chart    │
//	├─────────────────┴─────────────────┴──────────────────┤
//	│ Footer (1 line)                                      │
//	└──────────────────────────────────────────────────────┘
//
// # Components
//
// Header: App title and tagline on a gradient, the date and running
// countdown on the right, and the motivation quote underneath.
//
// Footer: Key bindings of the focused panel followed by the global ones,
// replaced by a flash message for a few seconds after an action.
//
// Celebration: One-shot confetti, balloons and time's-up animations.
//
// Panels: TimerPanel, HabitPanel, SchedulerPanel, TasksPanel, NotesPanel and
// GoalsPanel all implement Panel. A panel never changes session state
// itself. It renders what the app gives it through setters and returns
// request messages (AddTaskMsg, StartTimerMsg, ...) that the app applies.
//
// Modal: Popup dialogs whose states live in the modals subpackage:
//   - AddEventState: pick a time slot and label for the scheduler
//   - SettingsState: theme and desktop notifications
//   - HelpState: searchable list of keyboard shortcuts
//
// # Focus System
//
// Exactly one panel is focused. Tab and Shift+Tab cycle through the grid.
// While a panel's Typing reports true, printable keys go to its text input
// instead of the app's single-key shortcuts.
//
// # Styles
//
// All styles are defined in styles.go and rebuilt from the active Theme by
// SetTheme. Themes are listed in theme.go.
package ui
