package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the style of a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg drives expiry of the footer flash message
type FlashTickMsg time.Time

// FlashTick returns a command that sends a flash tick after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// globalBindings are always shown after the focused panel's bindings
var globalBindings = []KeyBinding{
	{Key: "tab", Desc: "next panel"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// Footer represents the bottom footer bar with keybindings and a transient
// flash message
type Footer struct {
	width    int
	bindings []KeyBinding

	flashText    string
	flashType    FlashType
	flashExpires time.Time
	now          func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{now: time.Now}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings sets the focused panel's keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text in place of the bindings until FlashDuration passes
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashExpires = f.now().Add(FlashDuration)
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// FlashText returns the current flash message
func (f *Footer) FlashText() string {
	return f.flashText
}

// ClearIfExpired removes an expired flash. Returns true if it was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashText == "" || f.now().Before(f.flashExpires) {
		return false
	}
	f.flashText = ""
	return true
}

// View renders the footer
func (f *Footer) View() string {
	inner := max(f.width-2, 0)

	if f.flashText != "" {
		style := FlashInfoStyle
		switch f.flashType {
		case FlashSuccess:
			style = FlashSuccessStyle
		case FlashWarning:
			style = FlashWarningStyle
		case FlashError:
			style = FlashErrorStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(ansi.Truncate(f.flashText, inner, "…")))
	}

	var parts []string
	for _, b := range append(append([]KeyBinding{}, f.bindings...), globalBindings...) {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(ansi.Truncate(content, inner, "…"))
}
