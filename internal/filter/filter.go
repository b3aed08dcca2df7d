// Package filter defines the journal filter criteria chosen in the filter
// dialog: a time window and a log source.
package filter

import (
	"fmt"
	"strings"
	"time"
)

// TimeKind names a time window variant in the key/value form.
type TimeKind string

const (
	TimeCurrentBoot  TimeKind = "current_boot"
	TimePreviousBoot TimeKind = "previous_boot"
	TimeDates        TimeKind = "dates"
)

// SourceKind names a source variant in the key/value form.
type SourceKind string

const (
	SourceAll  SourceKind = "all"
	SourceUnit SourceKind = "unit"
	SourceFile SourceKind = "file"
)

// Keys of the key/value form.
const (
	KeyTime   = "time"
	KeySince  = "since"
	KeyUntil  = "until"
	KeySource = "source"
	KeyUnit   = "unit"
	KeyFile   = "file"
)

// TimeWindow is one of CurrentBoot, PreviousBoot or Dates.
type TimeWindow interface {
	Kind() TimeKind
	timeWindow()
}

// CurrentBoot limits entries to the running boot.
type CurrentBoot struct{}

// PreviousBoot limits entries to the boot before the running one.
type PreviousBoot struct{}

// Dates limits entries to a range. Both bounds are passed through as picked,
// including the zero time for a picker that was never filled in.
type Dates struct {
	Since time.Time
	Until time.Time
}

func (CurrentBoot) Kind() TimeKind  { return TimeCurrentBoot }
func (PreviousBoot) Kind() TimeKind { return TimePreviousBoot }
func (Dates) Kind() TimeKind        { return TimeDates }

func (CurrentBoot) timeWindow()  {}
func (PreviousBoot) timeWindow() {}
func (Dates) timeWindow()        {}

// Source is one of AllSources, Unit or File.
type Source interface {
	Kind() SourceKind
	source()
}

// AllSources does not restrict the originator of an entry.
type AllSources struct{}

// Unit restricts entries to a systemd unit.
type Unit struct {
	Name string
}

// File restricts entries to an executable or device path.
type File struct {
	Path string
}

func (AllSources) Kind() SourceKind { return SourceAll }
func (Unit) Kind() SourceKind       { return SourceUnit }
func (File) Kind() SourceKind       { return SourceFile }

func (AllSources) source() {}
func (Unit) source()       {}
func (File) source()       {}

// Options is a complete filter. A nil Time or Source means no variant was
// selected.
type Options struct {
	Time   TimeWindow
	Source Source
}

// Empty reports whether no criterion is set. An empty filter may still be
// a confirmed Result.
func (o Options) Empty() bool {
	return o.Time == nil && o.Source == nil
}

// ParseTimeKind converts s to a TimeKind.
func ParseTimeKind(s string) (TimeKind, error) {
	switch k := TimeKind(s); k {
	case TimeCurrentBoot, TimePreviousBoot, TimeDates:
		return k, nil
	}
	return "", fmt.Errorf("unknown time window %q", s)
}

// ParseSourceKind converts s to a SourceKind.
func ParseSourceKind(s string) (SourceKind, error) {
	switch k := SourceKind(s); k {
	case SourceAll, SourceUnit, SourceFile:
		return k, nil
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// String returns a compact form such as "time=dates since=... source=unit unit=sshd.service".
func (o Options) String() string {
	if o.Empty() {
		return "{}"
	}
	var parts []string
	switch t := o.Time.(type) {
	case Dates:
		parts = append(parts, "time=dates",
			"since="+formatStamp(t.Since), "until="+formatStamp(t.Until))
	case nil:
	default:
		parts = append(parts, "time="+string(t.Kind()))
	}
	switch s := o.Source.(type) {
	case Unit:
		parts = append(parts, "source=unit", "unit="+s.Name)
	case File:
		parts = append(parts, "source=file", "file="+s.Path)
	case nil:
	default:
		parts = append(parts, "source="+string(s.Kind()))
	}
	return strings.Join(parts, " ")
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
