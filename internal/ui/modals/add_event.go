package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/studdy/internal/calendar"
)

// AddEventState is the modal for scheduling an event on a day.
type AddEventState struct {
	Day calendar.Date

	slot  string
	label string

	form *huh.Form
}

func (*AddEventState) modalState() {}

func (s *AddEventState) Title() string { return "Add Event · " + s.Day.String() }

func (s *AddEventState) Help() string {
	return "Tab: next field  Enter: add  Esc: cancel"
}

func (s *AddEventState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AddEventState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Slot returns the selected "HH:00" time slot.
func (s *AddEventState) Slot() string {
	return s.slot
}

// Label returns the trimmed event label.
func (s *AddEventState) Label() string {
	return strings.TrimSpace(s.label)
}

// NewAddEventState creates the Add Event modal for day. The slot selector
// starts on defaultSlot when it is one of the hourly slots.
func NewAddEventState(day calendar.Date, defaultSlot string) *AddEventState {
	s := &AddEventState{Day: day, slot: calendar.Slot(0)}
	if calendar.IsSlot(defaultSlot) {
		s.slot = defaultSlot
	}

	slots := calendar.TimeSlots()
	options := make([]huh.Option[string], len(slots))
	for i, slot := range slots {
		options[i] = huh.NewOption(slot, slot)
	}

	s.form = newModalForm(
		huh.NewSelect[string]().
			Title("Time").
			Options(options...).
			Height(6).
			Value(&s.slot),
		huh.NewInput().
			Title("Event").
			Placeholder("e.g. Study session").
			CharLimit(ModalInputCharLimit).
			Value(&s.label),
	)
	return s
}
