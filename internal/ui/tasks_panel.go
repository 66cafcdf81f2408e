package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/studdy/internal/keys"
	"github.com/zhubert/studdy/internal/session"
)

// AddTaskMsg asks the app to append a task to a category.
type AddTaskMsg struct {
	Category string
	Text     string
}

// ToggleTaskMsg asks the app to flip a task's done flag.
type ToggleTaskMsg struct {
	Category string
	ID       string
}

// taskRow addresses one selectable line: a category's input (task == -1)
// or one of its tasks.
type taskRow struct {
	category int
	task     int
}

// TasksPanel shows an add-input and the task list for each category.
type TasksPanel struct {
	panelBase

	categories []string
	inputs     []textinput.Model
	tasks      map[string][]session.Task
	cursor     int
}

// NewTasksPanel creates a tasks panel for the given categories.
func NewTasksPanel(categories []string) *TasksPanel {
	p := &TasksPanel{
		categories: categories,
		inputs:     make([]textinput.Model, len(categories)),
		tasks:      make(map[string][]session.Task, len(categories)),
	}
	for i, c := range categories {
		ti := textinput.New()
		ti.Placeholder = "add a " + c + " task"
		ti.CharLimit = TextInputCharLimit
		ti.Prompt = "+ "
		p.inputs[i] = ti
	}
	return p
}

func (p *TasksPanel) Title() string { return "Tasks" }

func (p *TasksPanel) SetSize(width, height int) {
	p.panelBase.SetSize(width, height)
	for i := range p.inputs {
		p.inputs[i].SetWidth(max(p.innerWidth()-2, 1))
	}
}

func (p *TasksPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	return p.syncInputFocus()
}

func (p *TasksPanel) Typing() bool {
	return p.focused && p.currentRow().task < 0
}

func (p *TasksPanel) Bindings() []KeyBinding {
	if p.currentRow().task < 0 {
		return []KeyBinding{{Key: "enter", Desc: "add task"}, {Key: "↑/↓", Desc: "move"}}
	}
	return []KeyBinding{{Key: "space", Desc: "toggle done"}, {Key: "↑/↓", Desc: "move"}}
}

// SetTasks replaces the tasks shown for category.
func (p *TasksPanel) SetTasks(category string, tasks []session.Task) {
	p.tasks[category] = tasks
	p.cursor = min(p.cursor, len(p.rows())-1)
}

func (p *TasksPanel) rows() []taskRow {
	var rows []taskRow
	for ci, c := range p.categories {
		rows = append(rows, taskRow{category: ci, task: -1})
		for ti := range p.tasks[c] {
			rows = append(rows, taskRow{category: ci, task: ti})
		}
	}
	return rows
}

func (p *TasksPanel) currentRow() taskRow {
	rows := p.rows()
	if len(rows) == 0 {
		return taskRow{task: -1}
	}
	return rows[min(p.cursor, len(rows)-1)]
}

func (p *TasksPanel) syncInputFocus() tea.Cmd {
	row := p.currentRow()
	var cmd tea.Cmd
	for i := range p.inputs {
		if p.focused && row.task < 0 && row.category == i {
			cmd = p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
	return cmd
}

func (p *TasksPanel) move(delta int) tea.Cmd {
	n := len(p.rows())
	p.cursor = min(max(p.cursor+delta, 0), n-1)
	return p.syncInputFocus()
}

func (p *TasksPanel) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}
	row := p.currentRow()
	keyMsg, isKey := msg.(tea.KeyPressMsg)

	if isKey {
		switch keyMsg.String() {
		case keys.Up:
			return p.move(-1)
		case keys.Down:
			return p.move(1)
		}
	}

	if row.task < 0 {
		category := p.categories[row.category]
		if isKey && keyMsg.String() == keys.Enter {
			text := strings.TrimSpace(p.inputs[row.category].Value())
			p.inputs[row.category].Reset()
			if text == "" {
				return nil
			}
			return sendMsg(AddTaskMsg{Category: category, Text: text})
		}
		var cmd tea.Cmd
		p.inputs[row.category], cmd = p.inputs[row.category].Update(msg)
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
		category := p.categories[row.category]
		return sendMsg(ToggleTaskMsg{Category: category, ID: p.tasks[category][row.task].ID})
	}
	return nil
}

func (p *TasksPanel) View() string {
	var lines []string
	cursorLine := 0

	for ri, row := range p.rows() {
		category := p.categories[row.category]
		if row.task < 0 {
			if row.category > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, SectionTitleStyle.Render(strings.ToUpper(category[:1])+category[1:]))
			if ri == p.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, p.inputs[row.category].View())
			continue
		}

		task := p.tasks[category][row.task]
		text := ItemStyle.Render(task.Text)
		if task.Done {
			text = ItemDoneStyle.Render(task.Text)
		}
		line := checkbox(task.Done) + " " + text
		if p.focused && ri == p.cursor {
			cursorLine = len(lines)
			line = ItemSelectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return p.frame(p.Title(), strings.Join(windowLines(lines, cursorLine, p.innerHeight()), "\n"))
}
