package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// digitMask is a fixed-width input derived from a Go time layout. Digit
// positions of the layout are editable, everything else is a literal
// separator. Positions the user has not typed show the reference time in a
// muted style.
type digitMask struct {
	slots    []rune
	defaults []rune
	editable []bool
	typed    []bool
	cursor   int // index in slots, always on an editable position or past the end
}

func newDigitMask(layout string, ref time.Time) digitMask {
	lay := []rune(layout)
	def := []rune(ref.Format(layout))
	n := min(len(lay), len(def))

	m := digitMask{
		slots:    make([]rune, n),
		defaults: def[:n],
		editable: make([]bool, n),
		typed:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		if lay[i] >= '0' && lay[i] <= '9' {
			m.editable[i] = true
			m.slots[i] = def[i]
		} else {
			m.slots[i] = lay[i]
		}
	}
	m.cursor = m.nextEditable(0)
	return m
}

func (m *digitMask) nextEditable(from int) int {
	for from < len(m.slots) && !m.editable[from] {
		from++
	}
	return from
}

// typeDigit writes r at the cursor and advances. It reports whether the
// mask is now full, so the caller can move focus on.
func (m *digitMask) typeDigit(r rune) bool {
	if r < '0' || r > '9' || m.cursor >= len(m.slots) {
		return false
	}
	m.slots[m.cursor] = r
	m.typed[m.cursor] = true
	m.cursor = m.nextEditable(m.cursor + 1)
	return m.cursor >= len(m.slots)
}

func (m *digitMask) backspace() {
	pos := m.cursor - 1
	for pos >= 0 && !m.editable[pos] {
		pos--
	}
	if pos < 0 {
		return
	}
	m.slots[pos] = m.defaults[pos]
	m.typed[pos] = false
	m.cursor = pos
}

// fill sets every editable position from a value formatted with the same layout.
func (m *digitMask) fill(value string) {
	runes := []rune(value)
	for i := range m.slots {
		if i < len(runes) && m.editable[i] {
			m.slots[i] = runes[i]
			m.typed[i] = true
		}
	}
	m.cursor = len(m.slots)
}

func (m *digitMask) touched() bool {
	for i, ok := range m.typed {
		if ok && m.editable[i] {
			return true
		}
	}
	return false
}

// resolved returns the full value once any digit was typed, else "".
// Untyped positions are taken from the defaults, so a non-empty result
// always matches the layout.
func (m *digitMask) resolved() string {
	if !m.touched() {
		return ""
	}
	return string(m.slots)
}

func (m *digitMask) render(focused bool, theme *Theme) string {
	cursor := lipgloss.NewStyle().Reverse(true)
	muted := mutedStyle(theme)

	var b strings.Builder
	for i, s := range m.slots {
		ch := string(s)
		switch {
		case focused && i == m.cursor:
			b.WriteString(cursor.Render(ch))
		case m.editable[i] && !m.typed[i]:
			b.WriteString(muted.Render(ch))
		default:
			b.WriteString(ch)
		}
	}
	if focused && m.cursor >= len(m.slots) {
		b.WriteString(cursor.Render(" "))
	}
	return b.String()
}

// dateTimeField is a date picker made of a date mask and a time mask.
type dateTimeField struct {
	date     digitMask
	clock    digitMask
	seed     time.Time
	endOfDay bool // a lone date means 23:59:59 rather than midnight
	edited   bool
}

func newDateTimeField(seed time.Time, endOfDay bool, display DisplayConfig, now time.Time) *dateTimeField {
	f := &dateTimeField{
		date:     newDigitMask(display.DateFormat, now),
		clock:    newDigitMask(display.TimeFormat, now),
		seed:     seed,
		endOfDay: endOfDay,
	}
	if !seed.IsZero() {
		local := seed.Local()
		f.date.fill(local.Format(display.DateFormat))
		f.clock.fill(local.Format(display.TimeFormat))
	}
	return f
}

func (f *dateTimeField) part(i int) *digitMask {
	if i == 0 {
		return &f.date
	}
	return &f.clock
}

// value returns the picked time. A field the user never edited returns its
// seed unchanged, which is the zero time for an unseeded picker.
func (f *dateTimeField) value(display DisplayConfig, now time.Time) time.Time {
	if !f.edited {
		return f.seed
	}
	return parseBound(f.date.resolved(), f.clock.resolved(), f.endOfDay, display, now)
}

// parseBound combines the date and time parts. Either part may be "" when
// untouched: a lone date means midnight, or the last second of that day
// for an upper bound, and a lone time means today. Values that do not parse
// yield the zero time.
func parseBound(dateStr, timeStr string, endOfDay bool, display DisplayConfig, now time.Time) time.Time {
	switch {
	case dateStr == "" && timeStr == "":
		return time.Time{}
	case dateStr != "" && timeStr != "":
		t, err := time.ParseInLocation(display.DateFormat+" "+display.TimeFormat, dateStr+" "+timeStr, time.Local)
		if err != nil {
			return time.Time{}
		}
		return t
	case dateStr != "":
		t, err := time.ParseInLocation(display.DateFormat, dateStr, time.Local)
		if err != nil {
			return time.Time{}
		}
		if endOfDay {
			return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
		}
		return t
	}
	t, err := time.ParseInLocation(display.TimeFormat, timeStr, time.Local)
	if err != nil {
		return time.Time{}
	}
	now = now.Local()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}
