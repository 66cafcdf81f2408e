package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Panel is one tile of the dashboard grid. Panels never touch session state
// directly: they render what the app hands them through setters and report
// user intent as request messages (AddTaskMsg, StartTimerMsg, ...).
type Panel interface {
	Title() string
	SetSize(width, height int)
	SetFocused(focused bool) tea.Cmd
	IsFocused() bool
	// Typing reports whether printable keys belong to a text input, so the
	// app must not treat them as global shortcuts.
	Typing() bool
	Bindings() []KeyBinding
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// panelBase holds the size and focus bookkeeping every panel shares.
type panelBase struct {
	width   int
	height  int
	focused bool
}

func (p *panelBase) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *panelBase) IsFocused() bool {
	return p.focused
}

// innerWidth is the usable content width inside border and padding.
func (p *panelBase) innerWidth() int {
	return max(p.width-BorderSize-PanelPadding, 1)
}

// innerHeight is the usable content height below the title.
func (p *panelBase) innerHeight() int {
	return max(p.height-BorderSize-TitleHeight, 1)
}

// frame wraps content in the panel border with the title on top, clipped to
// the panel size.
func (p *panelBase) frame(title, content string) string {
	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}

	lines := strings.Split(content, "\n")
	if len(lines) > p.innerHeight() {
		lines = lines[:p.innerHeight()]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, p.innerWidth(), "…")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(title),
		strings.Join(lines, "\n"),
	)

	return style.
		Width(max(p.width, 0)).
		Height(max(p.height, 0)).
		Render(body)
}

// windowLines returns at most height lines from lines, scrolled so that the
// line at index cursor stays visible.
func windowLines(lines []string, cursor, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	start = min(start, len(lines)-height)
	return lines[start : start+height]
}

// sendMsg wraps a message in a command.
func sendMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// checkbox renders the [x] / [ ] marker used by task and goal lists.
func checkbox(done bool) string {
	if done {
		return CheckStyle.Render("[x]")
	}
	return MutedStyle.Render("[ ]")
}
