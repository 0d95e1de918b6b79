package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spacehub/space-arcade/internal/core"
)

// Theme contains the visual styles shared by the game view, menu and
// scoreboard.
type Theme struct {
	Name string

	// Palette maps game colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	Title      lipgloss.Style
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	Muted      lipgloss.Style
	Border     lipgloss.Color
	Highlight  lipgloss.Color // Selected table row background
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DarkTheme returns the default palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},
		Title:      fg("51").Bold(true),
		ItemNormal: fg("252"),
		ItemActive: fg("226").Bold(true),
		Muted:      fg("241"),
		Border:     lipgloss.Color("240"),
		Highlight:  lipgloss.Color("57"),
	}
}

// LightTheme returns a palette readable on light backgrounds: whites and
// bright yellows turn dark.
func LightTheme() Theme {
	t := DarkTheme()
	t.Name = "light"
	t.Palette = map[core.Color]lipgloss.Style{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("124"),
		core.ColorGreen:         fg("28"),
		core.ColorYellow:        fg("136"),
		core.ColorBlue:          fg("19"),
		core.ColorMagenta:       fg("90"),
		core.ColorCyan:          fg("30"),
		core.ColorWhite:         fg("238"),
		core.ColorBrightRed:     fg("160"),
		core.ColorBrightGreen:   fg("34"),
		core.ColorBrightYellow:  fg("172"),
		core.ColorBrightBlue:    fg("26"),
		core.ColorBrightMagenta: fg("127"),
		core.ColorBrightCyan:    fg("31"),
		core.ColorBrightWhite:   fg("232"),
		core.ColorOrange:        fg("166"),
		core.ColorGray:          fg("246"),
	}
	t.Title = fg("25").Bold(true)
	t.ItemNormal = fg("236")
	t.ItemActive = fg("166").Bold(true)
	t.Muted = fg("244")
	t.Border = lipgloss.Color("250")
	t.Highlight = lipgloss.Color("153")
	return t
}

// ThemeByName returns the named theme ("dark" or "light").
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	}
	return DarkTheme(), false
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t.Name == "light" {
		return DarkTheme()
	}
	return LightTheme()
}

// Style returns the style for a game color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}
