package filter

import (
	"math"
	"time"
)

// Fields returns the key/value form. since/until are present only for
// Dates, unit only for Unit and file only for File.
func (o Options) Fields() map[string]any {
	m := make(map[string]any)
	if o.Time != nil {
		m[KeyTime] = string(o.Time.Kind())
		if d, ok := o.Time.(Dates); ok {
			m[KeySince] = d.Since
			m[KeyUntil] = d.Until
		}
	}
	if o.Source != nil {
		m[KeySource] = string(o.Source.Kind())
		switch s := o.Source.(type) {
		case Unit:
			m[KeyUnit] = s.Name
		case File:
			m[KeyFile] = s.Path
		}
	}
	return m
}

// FromFields decodes a key/value filter, typically a seed handed over by a
// caller. Unknown or missing time/source values leave the variant nil.
// Fields that do not belong to the selected variant are ignored.
func FromFields(m map[string]any) Options {
	var o Options

	switch kind, _ := m[KeyTime].(string); TimeKind(kind) {
	case TimeCurrentBoot:
		o.Time = CurrentBoot{}
	case TimePreviousBoot:
		o.Time = PreviousBoot{}
	case TimeDates:
		o.Time = Dates{
			Since: stampValue(m[KeySince]),
			Until: stampValue(m[KeyUntil]),
		}
	}

	switch kind, _ := m[KeySource].(string); SourceKind(kind) {
	case SourceAll:
		o.Source = AllSources{}
	case SourceUnit:
		name, _ := m[KeyUnit].(string)
		o.Source = Unit{Name: name}
	case SourceFile:
		path, _ := m[KeyFile].(string)
		o.Source = File{Path: path}
	}
	return o
}

// stampValue accepts the timestamp representations a seed may carry. Unix
// seconds are taken as is, so 0 is the epoch; a missing bound is nil.
// Anything else is the zero time.
func stampValue(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case int64:
		return time.Unix(t, 0)
	case *int64:
		if t != nil {
			return time.Unix(*t, 0)
		}
	case int:
		return time.Unix(int64(t), 0)
	case uint64:
		if t <= math.MaxInt64 {
			return time.Unix(int64(t), 0)
		}
	}
	return time.Time{}
}
