package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/config"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/ui"
)

// handleModalKey routes modal key events to the handler for the modal's
// state type
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	// ctrl+c quits even with a modal open
	if key == keys.CtrlC {
		return tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *ui.AddEventState:
		return m.handleAddEventModal(key, msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return cmd
}

// handleAddEventModal handles key events for the Add Event modal
func (m *Model) handleAddEventModal(key string, msg tea.KeyPressMsg, state *ui.AddEventState) tea.Cmd {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		label := state.Label()
		if label == "" {
			m.modal.SetError("Give the event a label")
			return nil
		}
		added, err := m.store.AddEvent(state.Day, state.Slot(), label)
		if err != nil {
			m.log.Error("failed to add event", "day", state.Day.String(), "error", err)
			m.modal.SetError(err.Error())
			return nil
		}
		m.modal.Hide()
		if added {
			return m.ShowFlashSuccess("Added " + state.Slot() + " " + label)
		}
		return nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return cmd
}

// handleSettingsModal handles key events for the Settings modal. Enter
// applies the choices to this run and saves them as preferences.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) tea.Cmd {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		m.config.SetNotificationsEnabled(state.NotificationsEnabled)
		if state.ThemeChanged() {
			ui.SetThemeByName(state.SelectedTheme())
			m.config.Theme = string(ui.CurrentThemeName())
			m.notes.RefreshStyles()
		}
		if m.configPath != "" {
			if err := config.Save(m.configPath, m.config); err != nil {
				m.log.Error("failed to save settings", "error", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return nil
			}
		}
		m.modal.Hide()
		return m.ShowFlashSuccess("Settings saved")
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return cmd
}

// handleHelpModal handles key events for the help modal
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) tea.Cmd {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return nil
	case keys.Enter:
		if shortcut := state.SelectedShortcut(); shortcut != nil {
			m.modal.Hide()
			return func() tea.Msg {
				return ui.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return cmd
}

// handleHelpShortcutTrigger runs a shortcut chosen in the help modal.
// Display-only entries do nothing.
func (m *Model) handleHelpShortcutTrigger(key string) tea.Cmd {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return nil
	}
	cmd, _ := m.ExecuteShortcut(normalizedKey)
	return cmd
}
