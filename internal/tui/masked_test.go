package tui

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 12, 30, 45, 0, time.Local)

func TestDigitMaskDefaults(t *testing.T) {
	m := newDigitMask("2006-01-02", testNow)
	if got := string(m.slots); got != "2025-06-15" {
		t.Errorf("slots = %q, want reference date", got)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if m.resolved() != "" {
		t.Errorf("untouched mask resolved to %q", m.resolved())
	}
}

func TestDigitMaskTypeSkipsSeparators(t *testing.T) {
	m := newDigitMask("15:04:05", testNow)
	for _, r := range "0930" {
		if m.typeDigit(r) {
			t.Fatal("mask reported full too early")
		}
	}
	if got := m.resolved(); got != "09:30:45" {
		t.Errorf("resolved = %q, want 09:30:45", got)
	}
	m.typeDigit('0')
	if !m.typeDigit('0') {
		t.Error("mask should report full after last digit")
	}
	if got := m.resolved(); got != "09:30:00" {
		t.Errorf("resolved = %q, want 09:30:00", got)
	}
}

func TestDigitMaskRejectsNonDigits(t *testing.T) {
	m := newDigitMask("2006-01-02", testNow)
	m.typeDigit('x')
	if m.touched() {
		t.Error("non-digit should not touch the mask")
	}
}

func TestDigitMaskBackspace(t *testing.T) {
	m := newDigitMask("15:04", testNow)
	m.typeDigit('0')
	m.typeDigit('8')
	m.typeDigit('1') // crosses the ':'
	m.backspace()
	if got := string(m.slots); got != "08:30" {
		t.Errorf("slots = %q, want 08:30 after backspace", got)
	}
	m.backspace()
	m.backspace()
	if m.touched() {
		t.Error("mask should be untouched after erasing all typed digits")
	}
	m.backspace() // at start, no-op
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestDigitMaskFill(t *testing.T) {
	m := newDigitMask("2006-01-02", testNow)
	m.fill("2024-02-29")
	if got := m.resolved(); got != "2024-02-29" {
		t.Errorf("resolved = %q", got)
	}
	if m.cursor != len(m.slots) {
		t.Errorf("cursor = %d, want end", m.cursor)
	}
}

func TestParseBound(t *testing.T) {
	display := DefaultDisplayConfig()
	tests := []struct {
		name       string
		date, hour string
		endOfDay   bool
		want       time.Time
	}{
		{"both empty", "", "", false, time.Time{}},
		{"date and time", "2024-03-01", "08:15:00", false, time.Date(2024, 3, 1, 8, 15, 0, 0, time.Local)},
		{"date only", "2024-03-01", "", false, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)},
		{"date only upper bound", "2024-03-01", "", true, time.Date(2024, 3, 1, 23, 59, 59, 0, time.Local)},
		{"upper bound with time", "2024-03-01", "08:15:00", true, time.Date(2024, 3, 1, 8, 15, 0, 0, time.Local)},
		{"time only", "", "07:00:00", false, time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local)},
		{"time only upper bound", "", "07:00:00", true, time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local)},
		{"invalid month", "2024-13-01", "", true, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBound(tt.date, tt.hour, tt.endOfDay, display, testNow)
			if !got.Equal(tt.want) {
				t.Errorf("parseBound = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateTimeFieldSeed(t *testing.T) {
	display := DefaultDisplayConfig()
	seed := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)

	f := newDateTimeField(seed, true, display, testNow)
	if got := f.value(display, testNow); got != seed {
		t.Errorf("untouched value = %v, want seed %v unchanged", got, seed)
	}
	if got := f.date.resolved(); got != seed.Local().Format(display.DateFormat) {
		t.Errorf("date mask = %q", got)
	}

	blank := newDateTimeField(time.Time{}, false, display, testNow)
	if got := blank.value(display, testNow); !got.IsZero() {
		t.Errorf("unseeded value = %v, want zero", got)
	}
}
