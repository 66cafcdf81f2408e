package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/studdy/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	rows := make([]string, 0, ui.PanelRows)
	for r := range ui.PanelRows {
		views := make([]string, 0, ui.PanelColumns)
		for c := range ui.PanelColumns {
			views = append(views, m.panels[r*ui.PanelColumns+c].View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.celebration.View(),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		m.footer.View(),
	)
}

// updateSizes lays the panels out as a grid under the header and effects
// strip. Leftover columns and rows go to the last panel in each direction.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.celebration.SetWidth(m.width)

	contentHeight := max(m.height-ui.HeaderHeight-ui.EffectsHeight-ui.FooterHeight, ui.PanelRows)
	colWidth := m.width / ui.PanelColumns
	rowHeight := contentHeight / ui.PanelRows

	for i, p := range m.panels {
		r, c := i/ui.PanelColumns, i%ui.PanelColumns
		w, h := colWidth, rowHeight
		if c == ui.PanelColumns-1 {
			w = m.width - colWidth*(ui.PanelColumns-1)
		}
		if r == ui.PanelRows-1 {
			h = contentHeight - rowHeight*(ui.PanelRows-1)
		}
		p.SetSize(w, h)
	}
}
