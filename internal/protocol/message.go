// Package protocol is the wire format between sieve and the program that
// launched it: the parent sends a seed filter, sieve answers with exactly
// one result, cancel or error message.
package protocol

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/thobiasn/sieve/internal/filter"
)

// MsgType identifies the type of a protocol message.
type MsgType string

const (
	TypeFilterSeed   MsgType = "filter:seed"   // parent -> sieve, body Filter
	TypeFilterResult MsgType = "filter:result" // sieve -> parent, body Filter
	TypeFilterCancel MsgType = "filter:cancel" // sieve -> parent, no body
	TypeError        MsgType = "error"         // sieve -> parent, body Error
)

// Envelope is the top-level wire message. Body is decoded in a second pass
// based on the Type field.
type Envelope struct {
	Type MsgType            `msgpack:"type"`
	Body msgpack.RawMessage `msgpack:"body,omitempty"`
}

// Filter mirrors the key/value form of filter.Options. Timestamps are unix
// seconds; nil marks an unset picker, so the epoch survives the trip.
type Filter struct {
	Time   string `msgpack:"time,omitempty"`
	Since  *int64 `msgpack:"since,omitempty"`
	Until  *int64 `msgpack:"until,omitempty"`
	Source string `msgpack:"source,omitempty"`
	Unit   string `msgpack:"unit,omitempty"`
	File   string `msgpack:"file,omitempty"`
}

// Error is the body for TypeError. Unavailable is set when the dialog could
// not be opened at all.
type Error struct {
	Message     string `msgpack:"message"`
	Unavailable bool   `msgpack:"unavailable,omitempty"`
}

// FromOptions converts o to its wire form.
func FromOptions(o filter.Options) Filter {
	var f Filter
	if o.Time != nil {
		f.Time = string(o.Time.Kind())
		if d, ok := o.Time.(filter.Dates); ok {
			f.Since = unixSeconds(d.Since)
			f.Until = unixSeconds(d.Until)
		}
	}
	if o.Source != nil {
		f.Source = string(o.Source.Kind())
		switch s := o.Source.(type) {
		case filter.Unit:
			f.Unit = s.Name
		case filter.File:
			f.File = s.Path
		}
	}
	return f
}

// Options converts the wire form back. Unknown kinds decode as unselected.
func (f Filter) Options() filter.Options {
	return filter.FromFields(map[string]any{
		filter.KeyTime:   f.Time,
		filter.KeySince:  f.Since,
		filter.KeyUntil:  f.Until,
		filter.KeySource: f.Source,
		filter.KeyUnit:   f.Unit,
		filter.KeyFile:   f.File,
	})
}

func unixSeconds(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	sec := t.Unix()
	return &sec
}
