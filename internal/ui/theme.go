// Package ui provides theme management for the dashboard.
// Themes define the color palette used throughout the UI; the active theme
// is chosen from the preferences file, the --theme flag or the settings modal.
package ui

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (section titles, keys)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string
	TextMuted   string
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Success string // Completed tasks, achieved goals, habit check marks
	Warning string
	Error   string
	Info    string

	// Border colors
	Border      string
	BorderFocus string // Focused panel borders (defaults to Primary if empty)

	// Chart colors
	ChartPoint string
	ChartLine  string

	// CodeStyle is the chroma style used for the notes preview
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeTomato     ThemeName = "tomato"
	ThemeNord       ThemeName = "nord"
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeTomato

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeTomato: {
		Name:        "Tomato",
		Primary:     "#E5533D",
		Secondary:   "#F4A261",
		Bg:          "#1C1B1A",
		BgSelected:  "#B83A28",
		Text:        "#F7F3EE",
		TextMuted:   "#A8A29E",
		TextInverse: "#1C1B1A",
		Success:     "#6CC570",
		Warning:     "#F4C152",
		Error:       "#EF4444",
		Info:        "#7DD3FC",
		Border:      "#44403C",
		ChartPoint:  "#F4A261",
		ChartLine:   "#78716C",
		CodeStyle:   "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#5E81AC",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Success:     "#A3BE8C",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Border:      "#4C566A",
		ChartPoint:  "#88C0D0",
		ChartLine:   "#4C566A",
		CodeStyle:   "nord",
	},
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Success:     "#10B981",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Border:      "#374151",
		ChartPoint:  "#22D3EE",
		ChartLine:   "#6B7280",
		CodeStyle:   "dracula",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox",
		Primary:     "#FE8019",
		Secondary:   "#FABD2F",
		Bg:          "#282828",
		BgSelected:  "#D65D0E",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Success:     "#B8BB26",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Border:      "#504945",
		ChartPoint:  "#FABD2F",
		ChartLine:   "#665C54",
		CodeStyle:   "gruvbox",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#DC2626",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Success:     "#16A34A",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Border:      "#D1D5DB",
		ChartPoint:  "#DC2626",
		ChartLine:   "#9CA3AF",
		CodeStyle:   "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeTomato,
		ThemeNord,
		ThemeDarkPurple,
		ThemeGruvbox,
		ThemeLight,
	}
}

// IsTheme reports whether name is a built-in theme.
func IsTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Tomato if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown names fall back to the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}
