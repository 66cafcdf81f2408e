package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/chart"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/session"
)

// AddGoalMsg asks the app to add a goal.
type AddGoalMsg struct {
	Text string
}

// ToggleGoalMsg asks the app to flip a goal's achieved flag.
type ToggleGoalMsg struct {
	ID string
}

// GoalsPanel is the goal input, the goal list and the study metric chart.
type GoalsPanel struct {
	panelBase

	input  textinput.Model
	goals  []session.Goal
	rows   []chart.Row
	cursor int // 0 is the input, i+1 is goals[i]
}

// NewGoalsPanel creates an empty goals panel.
func NewGoalsPanel() *GoalsPanel {
	ti := textinput.New()
	ti.Placeholder = "new goal, e.g. Finish chapter 3"
	ti.CharLimit = TextInputCharLimit
	ti.Prompt = "+ "
	return &GoalsPanel{input: ti}
}

func (p *GoalsPanel) Title() string { return "Goals" }

func (p *GoalsPanel) SetSize(width, height int) {
	p.panelBase.SetSize(width, height)
	p.input.SetWidth(max(p.innerWidth()-2, 1))
}

func (p *GoalsPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	return p.syncInputFocus()
}

func (p *GoalsPanel) syncInputFocus() tea.Cmd {
	if p.focused && p.cursor == 0 {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

func (p *GoalsPanel) Typing() bool { return p.focused && p.cursor == 0 }

func (p *GoalsPanel) Bindings() []KeyBinding {
	if p.cursor == 0 {
		return []KeyBinding{{Key: "enter", Desc: "add goal"}, {Key: "↓", Desc: "goals"}}
	}
	return []KeyBinding{{Key: "space", Desc: "toggle achieved"}, {Key: "↑/↓", Desc: "move"}}
}

// SetGoals replaces the listed goals.
func (p *GoalsPanel) SetGoals(goals []session.Goal) {
	p.goals = goals
	p.cursor = min(p.cursor, len(p.goals))
}

// SetChartRows replaces the chart series.
func (p *GoalsPanel) SetChartRows(rows []chart.Row) {
	p.rows = rows
}

func (p *GoalsPanel) move(delta int) tea.Cmd {
	p.cursor = min(max(p.cursor+delta, 0), len(p.goals))
	return p.syncInputFocus()
}

func (p *GoalsPanel) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}
	keyMsg, isKey := msg.(tea.KeyPressMsg)

	if isKey {
		switch keyMsg.String() {
		case keys.Up:
			return p.move(-1)
		case keys.Down:
			return p.move(1)
		}
	}

	if p.cursor == 0 {
		if isKey && keyMsg.String() == keys.Enter {
			text := strings.TrimSpace(p.input.Value())
			p.input.Reset()
			if text == "" {
				return nil
			}
			return sendMsg(AddGoalMsg{Text: text})
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !isKey {
		return nil
	}
	switch keyMsg.String() {
	case "k":
		return p.move(-1)
	case "j":
		return p.move(1)
	case keys.Space, keys.Enter, "x":
		return sendMsg(ToggleGoalMsg{ID: p.goals[p.cursor-1].ID})
	}
	return nil
}

func (p *GoalsPanel) View() string {
	chartHeight := max(p.innerHeight()/2, MinChartHeight)
	listHeight := max(p.innerHeight()-chartHeight-1, 2)

	achieved := 0
	var goalLines []string
	for i, g := range p.goals {
		if g.Achieved {
			achieved++
		}
		text := ItemStyle.Render(g.Text)
		if g.Achieved {
			text = CheckStyle.Render(g.Text)
		}
		line := checkbox(g.Achieved) + " " + text
		if p.focused && p.cursor == i+1 {
			line = ItemSelectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		goalLines = append(goalLines, line)
	}

	lines := []string{p.input.View()}
	if len(p.goals) > 0 {
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("achieved %d/%d", achieved, len(p.goals))))
		lines = append(lines, windowLines(goalLines, max(p.cursor-1, 0), listHeight-2)...)
	}

	lines = append(lines, "", SectionTitleStyle.Render(chart.Title))
	if graph := chart.Render(p.rows, p.innerWidth(), chartHeight-1); graph != "" {
		graphLines := strings.Split(graph, "\n")
		for i, gl := range graphLines {
			// the last two lines are the x axis and its dates
			if i >= len(graphLines)-2 {
				lines = append(lines, ChartAxisStyle.Render(gl))
			} else {
				lines = append(lines, ChartPointStyle.Render(gl))
			}
		}
	} else {
		lines = append(lines, MutedStyle.Render("Add a goal to start the chart."))
	}

	return p.frame(p.Title(), strings.Join(lines, "\n"))
}
