// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header: title bar plus quote line
	HeaderHeight = 2

	// EffectsHeight is the height of the celebration strip under the header
	EffectsHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelPadding is the horizontal padding inside a panel (1 left + 1 right)
	PanelPadding = 2

	// PanelColumns is the number of panel columns in the dashboard grid
	PanelColumns = 3

	// PanelRows is the number of panel rows in the dashboard grid
	PanelRows = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// MinChartHeight is the smallest chart the goals panel will draw
	MinChartHeight = 4
)

// Input limits
const (
	// TextInputCharLimit is the character limit for panel text inputs
	TextInputCharLimit = 200

	// NoteCharLimit is the character limit for the notes textarea (0 = unlimited)
	NoteCharLimit = 0
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 120

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 52

	// HelpModalMaxVisible is the number of help rows visible before scrolling
	HelpModalMaxVisible = 18
)

// Animation timing
const (
	// FlashDuration is how long a footer flash message stays visible
	FlashDuration = 3 * time.Second

	// FlashTickInterval is how often an active flash checks for expiry
	FlashTickInterval = 500 * time.Millisecond

	// CelebrationTickInterval is the frame interval of celebration effects
	CelebrationTickInterval = 120 * time.Millisecond

	// CelebrationFrames is the number of frames a celebration runs for
	CelebrationFrames = 16
)
