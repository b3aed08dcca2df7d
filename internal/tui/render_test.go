package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBox(t *testing.T) {
	theme := TerminalTheme()

	t.Run("basic", func(t *testing.T) {
		got := stripANSI(Box("Title", "hello", 20, 5, &theme))
		lines := strings.Split(got, "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[0], "╭") || !strings.HasSuffix(lines[0], "╮") {
			t.Errorf("top border wrong: %q", lines[0])
		}
		if !strings.Contains(lines[0], "Title") {
			t.Errorf("title missing: %q", lines[0])
		}
		last := lines[len(lines)-1]
		if !strings.HasPrefix(last, "╰") || !strings.HasSuffix(last, "╯") {
			t.Errorf("bottom border wrong: %q", last)
		}
		for i, l := range lines {
			if w := lipgloss.Width(l); w != 20 {
				t.Errorf("line %d width = %d, want 20", i, w)
			}
		}
	})

	t.Run("content truncated", func(t *testing.T) {
		got := stripANSI(Box("", strings.Repeat("x", 50), 10, 3, &theme))
		lines := strings.Split(got, "\n")
		if w := lipgloss.Width(lines[1]); w != 10 {
			t.Errorf("content line width = %d, want 10", w)
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("hello world", 6); lipgloss.Width(got) != 6 || !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}

func TestBoxedFitsContent(t *testing.T) {
	theme := TerminalTheme()
	got := stripANSI(boxed("When", "line one\nline two", &theme))
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[2], "line two") {
		t.Errorf("content = %q", lines[2])
	}
}
