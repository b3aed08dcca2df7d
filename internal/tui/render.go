package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box renders a bordered panel with a title using rounded Unicode corners.
// Content is padded to fill width×height (including borders).
func Box(title, content string, width, height int, theme *Theme) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	innerW := width - 2
	border := borderStyle(theme)

	var top string
	if title != "" {
		titleStr := " " + title + " "
		if lipgloss.Width(titleStr) > innerW-2 {
			titleStr = Truncate(titleStr, innerW-2)
		}
		titleLen := lipgloss.Width(titleStr)
		styled := accentStyle(theme).Bold(true).Render(titleStr)
		// "╭" + "─" + title + fill + "╮"
		trailing := max(innerW-1-titleLen, 0)
		top = border.Render("╭─") + styled + border.Render(strings.Repeat("─", trailing)+"╮")
	} else {
		top = border.Render("╭" + strings.Repeat("─", innerW) + "╮")
	}

	lines := strings.Split(content, "\n")
	innerH := height - 2
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	side := border.Render("│")
	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	for _, line := range lines {
		pad := innerW - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
			line = Truncate(line, innerW)
		}
		b.WriteString(side)
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(side)
		b.WriteByte('\n')
	}
	b.WriteString(border.Render("╰" + strings.Repeat("─", innerW) + "╯"))
	return b.String()
}

// Truncate cuts s to at most w display cells, keeping ANSI sequences intact.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "…")
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

// boxed wraps content in a Box sized to fit it.
func boxed(title, content string, theme *Theme) string {
	w := lipgloss.Width(content) + 2
	if tw := lipgloss.Width(title) + 5; tw > w {
		w = tw
	}
	h := strings.Count(content, "\n") + 3
	return Box(title, content, w, h, theme)
}
