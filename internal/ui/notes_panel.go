package ui

import (
	"bytes"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/zhubert/studdy/internal/keys"
)

// NoteChangedMsg carries the full note text after an edit.
type NoteChangedMsg struct {
	Text string
}

// NotesPanel is a free-form textarea with a highlighted markdown preview.
type NotesPanel struct {
	panelBase

	textarea textarea.Model
	preview  bool
}

// NewNotesPanel creates a notes panel holding text.
func NewNotesPanel(text string) *NotesPanel {
	ta := textarea.New()
	ta.Placeholder = "Jot down anything…\n\nMarkdown is highlighted in preview (ctrl+p)."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = NoteCharLimit
	ta.SetValue(text)
	applyTextareaStyles(&ta)

	return &NotesPanel{textarea: ta}
}

func (p *NotesPanel) Title() string {
	if p.preview {
		return "Notes · preview"
	}
	return "Notes"
}

func (p *NotesPanel) SetSize(width, height int) {
	p.panelBase.SetSize(width, height)
	p.textarea.SetWidth(p.innerWidth())
	p.textarea.SetHeight(p.innerHeight())
}

func (p *NotesPanel) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	if focused && !p.preview {
		return p.textarea.Focus()
	}
	p.textarea.Blur()
	return nil
}

func (p *NotesPanel) Typing() bool { return p.focused && !p.preview }

func (p *NotesPanel) Bindings() []KeyBinding {
	return []KeyBinding{
		{Key: "ctrl+p", Desc: "preview"},
		{Key: "ctrl+y", Desc: "copy note"},
	}
}

// RefreshStyles re-applies theme colors after a theme change.
func (p *NotesPanel) RefreshStyles() {
	applyTextareaStyles(&p.textarea)
}

// Value returns the note text.
func (p *NotesPanel) Value() string {
	return p.textarea.Value()
}

// IsPreview reports whether the preview is showing.
func (p *NotesPanel) IsPreview() bool {
	return p.preview
}

func (p *NotesPanel) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.CtrlP:
			p.preview = !p.preview
			return p.SetFocused(true)
		case keys.CtrlY:
			return sendMsg(CopyMsg{What: "note", Text: p.textarea.Value()})
		}
	}
	if p.preview {
		return nil
	}

	before := p.textarea.Value()
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	if after := p.textarea.Value(); after != before {
		return tea.Batch(cmd, sendMsg(NoteChangedMsg{Text: after}))
	}
	return cmd
}

func (p *NotesPanel) View() string {
	if p.preview {
		content := MutedStyle.Render("(empty note)")
		if strings.TrimSpace(p.textarea.Value()) != "" {
			content = highlightMarkdown(p.textarea.Value())
		}
		return p.frame(p.Title(), content)
	}
	return p.frame(p.Title(), p.textarea.View())
}

// highlightMarkdown applies chroma markdown highlighting using the current
// theme's code style.
func highlightMarkdown(text string) string {
	lexer := lexers.Get("markdown")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return buf.String()
}

// applyTextareaStyles gives the textarea a transparent background so it
// matches the terminal instead of the bubbles default.
func applyTextareaStyles(ta *textarea.Model) {
	s := ta.Styles()

	base := lipgloss.NewStyle()
	text := lipgloss.NewStyle().Foreground(ColorText)
	placeholder := lipgloss.NewStyle().Foreground(ColorTextMuted)

	s.Focused.Base = base
	s.Focused.Text = text
	s.Focused.Placeholder = placeholder
	s.Focused.CursorLine = text
	s.Focused.Prompt = text

	s.Blurred.Base = base
	s.Blurred.Text = text
	s.Blurred.Placeholder = placeholder
	s.Blurred.CursorLine = text
	s.Blurred.Prompt = text

	ta.SetStyles(s)
}
