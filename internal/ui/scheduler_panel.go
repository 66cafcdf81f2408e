package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/session"
)

// OpenAddEventMsg asks the app to open the Add Event modal for a day.
type OpenAddEventMsg struct {
	Day calendar.Date
}

// CopyMsg asks the app to put text on the clipboard.
type CopyMsg struct {
	What string // shown in the confirmation flash
	Text string
}

// SchedulerPanel lists the events of one selected day.
type SchedulerPanel struct {
	panelBase

	day    calendar.Date
	today  calendar.Date
	events []session.Event
	scroll int
}

// NewSchedulerPanel creates a scheduler showing today.
func NewSchedulerPanel(today calendar.Date) *SchedulerPanel {
	return &SchedulerPanel{day: today, today: today}
}

func (p *SchedulerPanel) Title() string { return "Schedule" }

func (p *SchedulerPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	return nil
}

func (p *SchedulerPanel) Typing() bool { return false }

func (p *SchedulerPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "[/]", Desc: "day"},
		{Key: "t", Desc: "today"},
		{Key: "a", Desc: "add event"},
		{Key: "ctrl+y", Desc: "copy agenda"},
	}
}

// Day returns the selected day.
func (p *SchedulerPanel) Day() calendar.Date { return p.day }

// SetToday updates today's date, used by the "t" key and the day label.
func (p *SchedulerPanel) SetToday(today calendar.Date) { p.today = today }

// SetEvents replaces the listed events. They are expected in display order.
func (p *SchedulerPanel) SetEvents(events []session.Event) {
	p.events = events
	p.scroll = min(p.scroll, max(len(p.events)-1, 0))
}

func (p *SchedulerPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !p.focused {
		return nil
	}

	switch keyMsg.String() {
	case "[", keys.Left, "h":
		p.setDay(p.day.AddDays(-1))
	case "]", keys.Right, "l":
		p.setDay(p.day.AddDays(1))
	case "t":
		p.setDay(p.today)
	case keys.Up, "k":
		p.scroll = max(p.scroll-1, 0)
	case keys.Down, "j":
		p.scroll = min(p.scroll+1, max(len(p.events)-1, 0))
	case "a", keys.Enter:
		return sendMsg(OpenAddEventMsg{Day: p.day})
	case keys.CtrlY:
		return sendMsg(CopyMsg{What: "agenda", Text: p.AgendaText()})
	}
	return nil
}

func (p *SchedulerPanel) setDay(day calendar.Date) {
	if day != p.day {
		p.day = day
		p.scroll = 0
	}
}

// AgendaText renders the day's events as plain text.
func (p *SchedulerPanel) AgendaText() string {
	var b strings.Builder
	b.WriteString(p.day.String())
	for _, e := range p.events {
		fmt.Fprintf(&b, "\n%s  %s", e.Time, e.Label)
	}
	return b.String()
}

func (p *SchedulerPanel) View() string {
	label := fmt.Sprintf("◀ %s %s ▶", p.day.Weekday().String()[:3], p.day)
	switch {
	case p.day == p.today:
		label += MutedStyle.Render("  today")
	case p.day == p.today.AddDays(1):
		label += MutedStyle.Render("  tomorrow")
	case p.day == p.today.AddDays(-1):
		label += MutedStyle.Render("  yesterday")
	}

	lines := []string{SectionTitleStyle.Render(label)}
	if len(p.events) == 0 {
		lines = append(lines, "", MutedStyle.Render("No events. Press a to add one."))
		return p.frame(p.Title(), strings.Join(lines, "\n"))
	}

	var rows []string
	for i, e := range p.events {
		row := TimerClockStyle.Render(e.Time) + "  " + ItemStyle.Render(e.Label)
		if p.focused && i == p.scroll {
			row = ItemSelectedStyle.Render(e.Time + "  " + e.Label)
		}
		rows = append(rows, row)
	}
	lines = append(lines, windowLines(rows, p.scroll, p.innerHeight()-1)...)

	return p.frame(p.Title(), strings.Join(lines, "\n"))
}
