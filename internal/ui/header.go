package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle   = " STUDDY"
	appTagline = "Study smarter, not harder"
)

// Header is the two-line title bar: app name, tagline and status on a
// gradient, followed by the motivation quote.
type Header struct {
	width  int
	status string
	quote  string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the right-aligned status text (date, running timer)
func (h *Header) SetStatus(status string) {
	h.status = status
}

// SetQuote sets the motivation quote shown under the title bar
func (h *Header) SetQuote(quote string) {
	h.quote = quote
}

// Quote returns the quote currently shown
func (h *Header) Quote() string {
	return h.quote
}

// View renders the header
func (h *Header) View() string {
	left := appTitle + "  " + appTagline
	right := ""
	if h.status != "" {
		right = h.status + " "
	}

	padding := max(h.width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 1)
	bar := h.renderGradient(left + strings.Repeat(" ", padding) + right)

	quote := ""
	if h.quote != "" {
		quote = "“" + h.quote + "”"
	}
	quoteLine := HeaderQuoteStyle.Render(ansi.Truncate(quote, max(h.width-2, 0), "…"))

	return lipgloss.JoinVertical(lipgloss.Left, bar, quoteLine)
}

// parseHexColor parses a hex color string (e.g., "#E5533D") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a background fading from the theme's
// primary color to its background color. The title is bold and the tagline
// muted.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	titleLen := len([]rune(appTitle))
	taglineEnd := titleLen + 2 + len([]rune(appTagline))

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleLen)

		if i >= titleLen && i < taglineEnd {
			style = style.Foreground(mutedColor).Italic(true)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
