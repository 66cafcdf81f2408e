package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/pomodoro"
)

// StartTimerMsg asks the app to start a work session.
type StartTimerMsg struct {
	WorkMinutes  int
	BreakMinutes int
}

type timerField int

const (
	timerFieldWork timerField = iota
	timerFieldBreak
	timerFieldStart
	timerFieldCount
)

// TimerPanel shows the work and break sliders, the start button and the
// countdown.
type TimerPanel struct {
	panelBase

	work   int
	brk    int
	cursor timerField

	state     pomodoro.State
	remaining time.Duration
	message   string
}

// NewTimerPanel creates a timer panel with the given slider values, clamped
// to their ranges.
func NewTimerPanel(workMinutes, breakMinutes int) *TimerPanel {
	return &TimerPanel{
		work:   pomodoro.ClampWork(workMinutes),
		brk:    pomodoro.ClampBreak(breakMinutes),
		cursor: timerFieldStart,
	}
}

func (p *TimerPanel) Title() string { return "Pomodoro" }

func (p *TimerPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	return nil
}

func (p *TimerPanel) Typing() bool { return false }

func (p *TimerPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "←/→", Desc: "adjust"},
		{Key: "enter", Desc: "start"},
	}
}

// WorkMinutes returns the work slider value
func (p *TimerPanel) WorkMinutes() int { return p.work }

// BreakMinutes returns the break slider value
func (p *TimerPanel) BreakMinutes() int { return p.brk }

// SetStatus updates the countdown display
func (p *TimerPanel) SetStatus(state pomodoro.State, remaining time.Duration) {
	p.state = state
	p.remaining = remaining
}

// SetMessage sets the line shown under the countdown
func (p *TimerPanel) SetMessage(msg string) {
	p.message = msg
}

func (p *TimerPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !p.focused {
		return nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		p.cursor = (p.cursor + timerFieldCount - 1) % timerFieldCount
	case keys.Down, "j":
		p.cursor = (p.cursor + 1) % timerFieldCount
	case keys.Left, "h", "-":
		p.adjust(-1)
	case keys.Right, "l", "+", "=":
		p.adjust(1)
	case keys.Enter, keys.Space, "s":
		if p.cursor != timerFieldStart && keyMsg.String() != "s" {
			p.cursor = timerFieldStart
			return nil
		}
		p.message = ""
		return sendMsg(StartTimerMsg{WorkMinutes: p.work, BreakMinutes: p.brk})
	}
	return nil
}

func (p *TimerPanel) adjust(delta int) {
	switch p.cursor {
	case timerFieldWork:
		p.work = pomodoro.ClampWork(p.work + delta)
	case timerFieldBreak:
		p.brk = pomodoro.ClampBreak(p.brk + delta)
	}
}

func (p *TimerPanel) View() string {
	w := p.innerWidth()
	var b strings.Builder

	b.WriteString(p.sliderRow("Work", p.work, pomodoro.MinWorkMinutes, pomodoro.MaxWorkMinutes, timerFieldWork, w))
	b.WriteString("\n")
	b.WriteString(p.sliderRow("Break", p.brk, pomodoro.MinBreakMinutes, pomodoro.MaxBreakMinutes, timerFieldBreak, w))
	b.WriteString("\n\n")

	button := ButtonStyle.Render("▶ Start")
	if p.focused && p.cursor == timerFieldStart {
		button = ButtonActiveStyle.Render("▶ Start")
	}
	b.WriteString(button)
	b.WriteString("\n\n")

	if p.state == pomodoro.StateRunning {
		b.WriteString(TimerClockStyle.Render("⏳ " + pomodoro.FormatRemaining(p.remaining)))
		b.WriteString(MutedStyle.Render(" remaining"))
	} else {
		b.WriteString(TimerIdleStyle.Render("Ready when you are"))
	}
	if p.message != "" {
		b.WriteString("\n")
		b.WriteString(FlashWarningStyle.Render(p.message))
	}

	return p.frame(p.Title(), b.String())
}

// sliderRow renders "Work   25 min" above a bar filled to value.
func (p *TimerPanel) sliderRow(label string, value, lo, hi int, field timerField, width int) string {
	labelStyle := TextStyle
	if p.focused && p.cursor == field {
		labelStyle = ItemSelectedStyle
	}
	head := labelStyle.Render(fmt.Sprintf("%-6s", label)) + " " + TextStyle.Render(fmt.Sprintf("%2d min", value))
	return lipgloss.JoinVertical(lipgloss.Left, head, sliderBar(value, lo, hi, width))
}

// sliderBar draws a width-cell track with a knob at value's position in [lo,hi].
func sliderBar(value, lo, hi, width int) string {
	if width < 2 {
		return ""
	}
	track := width - 1
	pos := 0
	if hi > lo {
		pos = (value - lo) * track / (hi - lo)
	}
	return SliderFillStyle.Render(strings.Repeat("━", pos)+"●") +
		SliderEmptyStyle.Render(strings.Repeat("─", track-pos))
}
