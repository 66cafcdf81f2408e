package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/keys"
)

// ToggleHabitMsg asks the app to flip habit completion on a day.
type ToggleHabitMsg struct {
	Habit string
	Day   calendar.Date
}

// habitCellWidth is the display width of one day cell, e.g. "✓12 ".
const habitCellWidth = 4

// HabitPanel is a habit name input over the current month's calendar grid.
type HabitPanel struct {
	panelBase

	input   textinput.Model
	onInput bool

	today  calendar.Date
	cursor int // day of month under the cursor
	done   map[int]bool
}

// NewHabitPanel creates a habit panel showing today's month.
func NewHabitPanel(today calendar.Date) *HabitPanel {
	ti := textinput.New()
	ti.Placeholder = "habit name, e.g. Read 20 pages"
	ti.CharLimit = TextInputCharLimit
	ti.Prompt = "› "

	p := &HabitPanel{input: ti, onInput: true, done: make(map[int]bool)}
	p.SetToday(today)
	return p
}

func (p *HabitPanel) Title() string { return "Habits" }

func (p *HabitPanel) SetSize(width, height int) {
	p.panelBase.SetSize(width, height)
	p.input.SetWidth(max(p.innerWidth()-2, 1))
}

func (p *HabitPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	return p.syncInputFocus()
}

func (p *HabitPanel) syncInputFocus() tea.Cmd {
	if p.focused && p.onInput {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

func (p *HabitPanel) Typing() bool { return p.focused && p.onInput }

func (p *HabitPanel) Bindings() []KeyBinding {
	if p.onInput {
		return []KeyBinding{{Key: "enter/↓", Desc: "to calendar"}}
	}
	return []KeyBinding{
		{Key: "arrows", Desc: "move"},
		{Key: "space", Desc: "toggle day"},
		{Key: "i", Desc: "edit name"},
	}
}

// HabitName returns the trimmed habit name.
func (p *HabitPanel) HabitName() string {
	return strings.TrimSpace(p.input.Value())
}

// SetHabitName replaces the habit name.
func (p *HabitPanel) SetHabitName(name string) {
	p.input.SetValue(name)
}

// Month returns the year and month shown.
func (p *HabitPanel) Month() (int, int) {
	return p.today.Year, int(p.today.Month)
}

// SetToday moves the grid to today's month and puts the cursor on today.
func (p *HabitPanel) SetToday(today calendar.Date) {
	if today.Year != p.today.Year || today.Month != p.today.Month {
		p.cursor = today.Day
	}
	p.today = today
}

// SetDone marks the days on which the current habit was done. Days outside
// the shown month are ignored.
func (p *HabitPanel) SetDone(days []calendar.Date) {
	clear(p.done)
	for _, d := range days {
		if d.Year == p.today.Year && d.Month == p.today.Month {
			p.done[d.Day] = true
		}
	}
}

// CursorDate returns the date under the grid cursor.
func (p *HabitPanel) CursorDate() calendar.Date {
	return calendar.Date{Year: p.today.Year, Month: p.today.Month, Day: p.cursor}
}

func (p *HabitPanel) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}
	keyMsg, isKey := msg.(tea.KeyPressMsg)

	if p.onInput {
		if isKey {
			switch keyMsg.String() {
			case keys.Enter, keys.Down:
				p.onInput = false
				return p.syncInputFocus()
			}
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !isKey {
		return nil
	}
	days := calendar.DaysIn(p.today.Year, p.today.Month)
	switch keyMsg.String() {
	case keys.Left, "h":
		p.cursor = max(p.cursor-1, 1)
	case keys.Right, "l":
		p.cursor = min(p.cursor+1, days)
	case keys.Down, "j":
		p.cursor = min(p.cursor+7, days)
	case keys.Up, "k":
		if p.cursor <= 7 {
			p.onInput = true
			return p.syncInputFocus()
		}
		p.cursor -= 7
	case "i", "/":
		p.onInput = true
		return p.syncInputFocus()
	case keys.Space, keys.Enter, "x":
		return sendMsg(ToggleHabitMsg{Habit: p.HabitName(), Day: p.CursorDate()})
	}
	return nil
}

func (p *HabitPanel) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n")

	month := fmt.Sprintf("%s %d", p.today.Month, p.today.Year)
	if p.HabitName() != "" {
		month += MutedStyle.Render(fmt.Sprintf(" · %d done", len(p.done)))
	}
	b.WriteString(SectionTitleStyle.Render(month))
	b.WriteString("\n")

	for _, label := range calendar.WeekdayLabels {
		b.WriteString(CalendarHeaderStyle.Render(runewidth.FillRight(label[:2], habitCellWidth)))
	}

	for _, week := range calendar.MonthGrid(p.today.Year, p.today.Month) {
		b.WriteString("\n")
		for _, day := range week {
			b.WriteString(p.renderCell(day))
		}
	}

	return p.frame(p.Title(), b.String())
}

func (p *HabitPanel) renderCell(day int) string {
	if day == 0 {
		return strings.Repeat(" ", habitCellWidth)
	}

	mark := " "
	style := CalendarDayStyle
	if p.done[day] {
		mark = "✓"
		style = CalendarDoneStyle
	}
	if day == p.today.Day {
		style = style.Inherit(CalendarTodayStyle)
	}
	if p.focused && !p.onInput && day == p.cursor {
		style = CalendarCursorStyle
	}

	cell := runewidth.FillRight(fmt.Sprintf("%s%2d", mark, day), habitCellWidth-1)
	return style.Render(cell) + " "
}
