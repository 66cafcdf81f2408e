package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/clipboard"
	"github.com/zhubert/studdy/internal/config"
	"github.com/zhubert/studdy/internal/errors"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/notification"
	"github.com/zhubert/studdy/internal/pomodoro"
	"github.com/zhubert/studdy/internal/session"
	"github.com/zhubert/studdy/internal/ui"
)

// TimerTickMsg polls the running work session. Gen ties the tick to the
// start that scheduled it.
type TimerTickMsg struct {
	Gen  int
	Time time.Time
}

// NotificationFailedMsg reports a desktop notification that could not be
// delivered
type NotificationFailedMsg struct {
	Err error
}

// Update handles messages. Every message may change the store, so after
// routing it the pending effects are drained and the panels re-synced.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.update(msg)}
	cmds = append(cmds, m.drainEffects()...)
	m.syncPanels()
	return m, tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			return cmd
		}
		// Key not handled here, fall through to the focused panel

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return nil
		}
		return ui.FlashTick()

	case ui.CelebrationTickMsg:
		return m.celebration.Update(msg)

	case TimerTickMsg:
		return m.handleTimerTick(msg)

	case NotificationFailedMsg:
		m.log.Warn("notification failed", "error", msg.Err)
		return m.ShowFlashWarning("Could not send desktop notification")

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	// Panel requests
	case ui.StartTimerMsg:
		return m.handleStartTimer(msg)
	case ui.ToggleHabitMsg:
		return m.handleToggleHabit(msg)
	case ui.OpenAddEventMsg:
		return m.openAddEvent(msg.Day)
	case ui.AddTaskMsg:
		return m.handleAddTask(msg)
	case ui.ToggleTaskMsg:
		return m.handleToggleTask(msg)
	case ui.NoteChangedMsg:
		m.store.SetNote(msg.Text)
		return nil
	case ui.AddGoalMsg:
		if m.store.AddGoal(msg.Text) {
			m.log.Info("goal added", "goal", msg.Text)
		}
		return nil
	case ui.ToggleGoalMsg:
		if _, err := m.store.ToggleGoal(msg.ID); err != nil {
			return m.flashErr(err, "Could not update goal")
		}
		return nil
	case ui.CopyMsg:
		return m.handleCopy(msg)
	}

	// Anything else (cursor blinks, form internals) goes to whatever has
	// the keyboard
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return cmd
	}
	return m.focused().Update(msg)
}

// handleKeyPress handles keys that belong to the app rather than a panel.
// Returns handled=false when the key should go to the focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	m.log.Debug("key pressed", "key", key, "focus", m.focus.String(), "modal", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg), true
	}

	// ctrl+c always quits
	if key == keys.CtrlC {
		return tea.Quit, true
	}

	if cmd, handled := m.ExecuteShortcut(key); handled {
		return cmd, true
	}
	return nil, false
}

// drainEffects starts the celebration for each effect the store queued and,
// for a finished work session, the time's-up message and notification.
func (m *Model) drainEffects() []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.store.DrainEffects() {
		m.log.Debug("effect", "effect", e.String())
		cmds = append(cmds, m.celebration.Start(e))
		if e != session.EffectTimesUp {
			continue
		}
		m.timer.SetMessage(notification.TimesUpMessage(0))
		if m.config.NotificationsEnabled() {
			cmds = append(cmds, sendTimesUpNotification(m.breakMinutes))
		}
	}
	return cmds
}

func sendTimesUpNotification(breakMinutes int) tea.Cmd {
	return func() tea.Msg {
		if err := notification.TimesUp(breakMinutes); err != nil {
			return NotificationFailedMsg{Err: err}
		}
		return nil
	}
}

// timerTick schedules the next poll of the current tick chain
func (m *Model) timerTick() tea.Cmd {
	gen := m.timerGen
	interval := m.config.TickInterval()
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TimerTickMsg{Gen: gen, Time: t}
	})
}

func (m *Model) handleStartTimer(msg ui.StartTimerMsg) tea.Cmd {
	end := m.store.StartTimer(msg.WorkMinutes)
	m.breakMinutes = pomodoro.ClampBreak(msg.BreakMinutes)
	m.timerGen++
	m.timer.SetMessage("")
	m.timer.SetStatus(pomodoro.StateRunning, end.Sub(m.store.Now()))
	m.log.Info("work session started", "minutes", pomodoro.ClampWork(msg.WorkMinutes), "gen", m.timerGen)
	return m.timerTick()
}

func (m *Model) handleTimerTick(msg TimerTickMsg) tea.Cmd {
	if msg.Gen != m.timerGen {
		m.log.Debug("stale timer tick dropped", "gen", msg.Gen, "current", m.timerGen)
		return nil
	}
	st := m.store.TickTimer()
	m.timer.SetStatus(st.State, st.Remaining)
	if st.State == pomodoro.StateRunning {
		return m.timerTick()
	}
	return nil
}

func (m *Model) handleToggleHabit(msg ui.ToggleHabitMsg) tea.Cmd {
	if msg.Habit == "" {
		return m.ShowFlashWarning("Name the habit before marking days")
	}
	marked := m.store.ToggleHabitDay(msg.Habit, msg.Day)
	m.log.Debug("habit day toggled", "habit", msg.Habit, "day", msg.Day.String(), "marked", marked)
	return nil
}

func (m *Model) handleAddTask(msg ui.AddTaskMsg) tea.Cmd {
	if _, err := m.store.AddTask(msg.Category, msg.Text); err != nil {
		return m.flashErr(err, "Could not add task")
	}
	return nil
}

func (m *Model) handleToggleTask(msg ui.ToggleTaskMsg) tea.Cmd {
	if _, err := m.store.ToggleTask(msg.Category, msg.ID); err != nil {
		return m.flashErr(err, "Could not update task")
	}
	return nil
}

// openAddEvent shows the Add Event modal for day, or today when day is
// unset. The slot defaults to the current hour when day is today.
func (m *Model) openAddEvent(day calendar.Date) tea.Cmd {
	if day.IsZero() {
		day = m.store.Today()
	}
	slot := calendar.Slot(9)
	if day == m.store.Today() {
		slot = calendar.Slot(m.store.Now().Hour())
	}
	m.modal.Show(ui.NewAddEventState(day, slot))
	return nil
}

func (m *Model) handleCopy(msg ui.CopyMsg) tea.Cmd {
	if err := clipboard.WriteText(msg.Text); err != nil {
		if errors.Is(err, errors.KindInvalid) {
			return m.ShowFlashInfo("Nothing to copy")
		}
		return m.flashErr(err, "Failed to copy to clipboard")
	}
	return m.ShowFlashSuccess(fmt.Sprintf("Copied %s to clipboard", msg.What))
}
