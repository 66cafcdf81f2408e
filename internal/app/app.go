package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/chart"
	"github.com/zhubert/studdy/internal/config"
	"github.com/zhubert/studdy/internal/logger"
	"github.com/zhubert/studdy/internal/pomodoro"
	"github.com/zhubert/studdy/internal/quotes"
	"github.com/zhubert/studdy/internal/session"
	"github.com/zhubert/studdy/internal/ui"
)

// Focus identifies the focused dashboard panel. The order is the grid
// order, left to right and top to bottom, which is also the tab order.
type Focus int

const (
	FocusTimer Focus = iota
	FocusHabits
	FocusScheduler
	FocusTasks
	FocusNotes
	FocusGoals
	focusCount
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusTimer:
		return "Timer"
	case FocusHabits:
		return "Habits"
	case FocusScheduler:
		return "Scheduler"
	case FocusTasks:
		return "Tasks"
	case FocusNotes:
		return "Notes"
	case FocusGoals:
		return "Goals"
	default:
		return "Unknown"
	}
}

// Options configures a Model beyond what the preferences file holds.
type Options struct {
	// ConfigPath is where the Settings modal saves preferences. Empty
	// means settings apply to this run only.
	ConfigPath string
	// Clock drives the session store. Nil means the system clock.
	Clock session.Clock
	// Quote is the initial header quote. Empty picks one at random.
	Quote string
}

// Model is the main Bubble Tea model
type Model struct {
	config     *config.Config
	configPath string
	version    string // App version (injected at build time)
	store      *session.Store
	log        *slog.Logger

	header      *ui.Header
	footer      *ui.Footer
	celebration *ui.Celebration
	modal       *ui.Modal

	timer     *ui.TimerPanel
	habits    *ui.HabitPanel
	scheduler *ui.SchedulerPanel
	tasks     *ui.TasksPanel
	notes     *ui.NotesPanel
	goals     *ui.GoalsPanel
	panels    [focusCount]ui.Panel

	width  int
	height int
	focus  Focus

	// timerGen identifies the current tick chain. Every start bumps it so
	// ticks scheduled for an earlier run are dropped.
	timerGen     int
	breakMinutes int // break slider value when the running session started
}

// New creates a new app model
func New(cfg *config.Config, version string, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ui.SetThemeByName(cfg.Theme)

	store := session.New(opts.Clock)
	today := store.Today()

	m := &Model{
		config:      cfg,
		configPath:  opts.ConfigPath,
		version:     version,
		store:       store,
		log:         logger.ComponentLogger("App"),
		header:      ui.NewHeader(),
		footer:      ui.NewFooter(),
		celebration: ui.NewCelebration(),
		modal:       ui.NewModal(),
		timer:       ui.NewTimerPanel(cfg.WorkMinutes(), cfg.BreakMinutes()),
		habits:      ui.NewHabitPanel(today),
		scheduler:   ui.NewSchedulerPanel(today),
		tasks:       ui.NewTasksPanel(session.Categories),
		notes:       ui.NewNotesPanel(store.Note()),
		goals:       ui.NewGoalsPanel(),
		focus:       FocusTimer,
	}
	m.panels = [focusCount]ui.Panel{m.timer, m.habits, m.scheduler, m.tasks, m.notes, m.goals}

	quote := opts.Quote
	if quote == "" {
		quote = quotes.Random()
	}
	m.header.SetQuote(quote)

	m.panels[m.focus].SetFocused(true)
	m.syncPanels()
	return m
}

// Init starts the cursor blink of the initially focused panel
func (m *Model) Init() tea.Cmd {
	return m.panels[m.focus].SetFocused(true)
}

// Store returns the session store
func (m *Model) Store() *session.Store {
	return m.store
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// focused returns the focused panel
func (m *Model) focused() ui.Panel {
	return m.panels[m.focus]
}

// setFocus moves focus to f and returns the newly focused panel's command
func (m *Model) setFocus(f Focus) tea.Cmd {
	f = (f%focusCount + focusCount) % focusCount
	if f == m.focus {
		return nil
	}
	m.panels[m.focus].SetFocused(false)
	m.focus = f
	m.log.Debug("focus changed", "panel", f.String())
	return m.panels[m.focus].SetFocused(true)
}

// cycleFocus moves focus forward or backward through the grid
func (m *Model) cycleFocus(delta int) tea.Cmd {
	return m.setFocus(m.focus + Focus(delta))
}

// syncPanels pushes the store's current data into the panels and header.
// It runs after every update so the view always renders current state.
func (m *Model) syncPanels() {
	today := m.store.Today()

	for _, c := range session.Categories {
		m.tasks.SetTasks(c, m.store.Tasks(c))
	}

	m.habits.SetToday(today)
	m.habits.SetDone(m.store.HabitDays(m.habits.HabitName()))

	m.scheduler.SetToday(today)
	m.scheduler.SetEvents(m.store.Events(m.scheduler.Day()))

	m.goals.SetGoals(m.store.Goals())
	m.goals.SetChartRows(chart.Aggregate(m.store.StudyData()))

	m.header.SetStatus(m.headerStatus())
	m.footer.SetBindings(m.focused().Bindings())
}

// headerStatus is the right side of the title bar: today's date, plus the
// countdown while a work session runs
func (m *Model) headerStatus() string {
	now := m.store.Now()
	status := now.Format("Mon Jan 2")
	t := m.store.Timer()
	if t.State() == pomodoro.StateRunning {
		status = fmt.Sprintf("⏳ %s · %s", pomodoro.FormatRemaining(t.End.Sub(now)), status)
	}
	return status
}
