package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/studdy/internal/keys"
)

// newModalForm stacks fields into a single-group form styled with
// FormTheme. The form is initialized before it is returned so the first
// render already shows the selected values.
func newModalForm(fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)
	form.Init()
	return form
}

// updateForm passes msg to the form. Enter and Escape belong to the app's
// modal handlers and never reach huh.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	return m.(*huh.Form), cmd
}

// FormTheme styles modal forms after the dashboard panels: a thick bar in
// the theme's primary color marks the field being edited, and multi-select
// options use the same [x] boxes as the task list. Colors are read when a
// form is built, so a theme switch shows up in the next modal.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(formStyles)
}

func formStyles(isDark bool) *huh.Styles {
	t := huh.ThemeBase(isDark)
	fg := func(c color.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	f := &t.Focused
	f.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorPrimary)
	f.Card = f.Base
	f.Title = fg(ColorPrimary).Bold(true)
	f.Description = fg(ColorTextMuted)
	f.ErrorIndicator = fg(ColorWarning).SetString(" !")
	f.ErrorMessage = fg(ColorWarning)

	f.SelectSelector = fg(ColorPrimary).SetString("● ")
	f.Option = fg(ColorText)
	f.NextIndicator = fg(ColorTextMuted).MarginLeft(1).SetString("▾")
	f.PrevIndicator = fg(ColorTextMuted).MarginRight(1).SetString("▴")

	f.MultiSelectSelector = fg(ColorPrimary).SetString("● ")
	f.SelectedOption = fg(ColorSecondary)
	f.SelectedPrefix = fg(ColorSecondary).SetString("[x] ")
	f.UnselectedOption = fg(ColorText)
	f.UnselectedPrefix = fg(ColorTextMuted).SetString("[ ] ")

	f.TextInput.Cursor = fg(ColorPrimary)
	f.TextInput.Placeholder = fg(ColorTextMuted).Italic(true)
	f.TextInput.Prompt = fg(ColorPrimary)
	f.TextInput.Text = fg(ColorText)

	// Blurred fields keep their column but drop the bar and the markers.
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.Title = fg(ColorTextMuted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
	t.Help = help.New().Styles
	return t
}
