package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, derived from the current theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header styles
var (
	HeaderQuoteStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Flash styles
var (
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	SectionTitleStyle lipgloss.Style
	MutedStyle        lipgloss.Style
	TextStyle         lipgloss.Style
)

// List styles
var (
	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	ItemDoneStyle     lipgloss.Style
	CheckStyle        lipgloss.Style
)

// Timer styles
var (
	TimerClockStyle   lipgloss.Style
	TimerIdleStyle    lipgloss.Style
	SliderFillStyle   lipgloss.Style
	SliderEmptyStyle  lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
)

// Calendar styles
var (
	CalendarHeaderStyle lipgloss.Style
	CalendarDayStyle    lipgloss.Style
	CalendarDoneStyle   lipgloss.Style
	CalendarTodayStyle  lipgloss.Style
	CalendarCursorStyle lipgloss.Style
)

// Chart styles
var (
	ChartPointStyle lipgloss.Style
	ChartAxisStyle  lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

// Celebration styles
var (
	TimesUpStyle lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)

	HeaderQuoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	TextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ItemSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true)

	ItemDoneStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Strikethrough(true)

	CheckStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	TimerClockStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	TimerIdleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	SliderFillStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	SliderEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorTextMuted)

	ButtonActiveStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	CalendarHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	CalendarDayStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	CalendarDoneStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	CalendarTodayStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Underline(true)

	CalendarCursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text))

	ChartPointStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ChartPoint))

	ChartAxisStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ChartLine))

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	TimesUpStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorWarning).
		Bold(true).
		Padding(0, 1)
}
