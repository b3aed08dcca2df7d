package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors used by the dialog. Views reference theme fields,
// never raw color values.
type Theme struct {
	Fg       lipgloss.Color // regular text
	FgDim    lipgloss.Color // hints, untyped mask digits
	FgBright lipgloss.Color // heading
	Border   lipgloss.Color // frame and box borders
	Accent   lipgloss.Color // titles, focused brackets
	Selected lipgloss.Color // selected radio marker
}

// TerminalTheme returns ANSI defaults so the dialog inherits the terminal's palette.
func TerminalTheme() Theme {
	return Theme{
		Fg:       lipgloss.Color("7"),
		FgDim:    lipgloss.Color("8"),
		FgBright: lipgloss.Color("15"),
		Border:   lipgloss.Color("8"),
		Accent:   lipgloss.Color("4"),
		Selected: lipgloss.Color("2"),
	}
}

func mutedStyle(t *Theme) lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.FgDim) }
func accentStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Accent) }
func borderStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Border) }
