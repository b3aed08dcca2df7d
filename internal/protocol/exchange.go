package protocol

import (
	"fmt"
	"io"

	"github.com/thobiasn/sieve/internal/filter"
)

// RemoteError is an error reported by sieve in a TypeError reply.
type RemoteError struct {
	Message     string
	Unavailable bool
}

func (e *RemoteError) Error() string {
	if e.Unavailable {
		return "dialog unavailable: " + e.Message
	}
	return e.Message
}

// WriteSeed sends the seed filter (parent side).
func WriteSeed(w io.Writer, seed filter.Options) error {
	body := FromOptions(seed)
	env, err := NewEnvelope(TypeFilterSeed, &body)
	if err != nil {
		return err
	}
	return WriteMsg(w, env)
}

// ReadSeed receives the seed filter (sieve side).
func ReadSeed(r io.Reader) (filter.Options, error) {
	env, err := ReadMsg(r)
	if err != nil {
		return filter.Options{}, fmt.Errorf("read seed: %w", err)
	}
	if env.Type != TypeFilterSeed {
		return filter.Options{}, fmt.Errorf("read seed: unexpected message %q", env.Type)
	}
	var f Filter
	if len(env.Body) > 0 {
		if err := env.DecodeBody(&f); err != nil {
			return filter.Options{}, fmt.Errorf("read seed: %w", err)
		}
	}
	return f.Options(), nil
}

// WriteReply sends the outcome of one dialog run (sieve side). A non-nil
// runErr wins over result. A cancelled result is sent as TypeFilterCancel,
// a confirmed one as TypeFilterResult even when nothing was selected.
func WriteReply(w io.Writer, result *filter.Result, runErr error, unavailable bool) error {
	var env *Envelope
	var err error
	switch {
	case runErr != nil:
		env, err = NewEnvelope(TypeError, &Error{Message: runErr.Error(), Unavailable: unavailable})
	case result == nil:
		env, err = NewEnvelope(TypeError, &Error{Message: "no result", Unavailable: unavailable})
	case !result.Confirmed:
		env = &Envelope{Type: TypeFilterCancel}
	default:
		body := FromOptions(result.Options)
		env, err = NewEnvelope(TypeFilterResult, &body)
	}
	if err != nil {
		return err
	}
	return WriteMsg(w, env)
}

// ReadReply receives the outcome (parent side): a confirmed result, a
// cancelled one or a *RemoteError.
func ReadReply(r io.Reader) (*filter.Result, error) {
	env, err := ReadMsg(r)
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	switch env.Type {
	case TypeFilterCancel:
		res := filter.Cancelled()
		return &res, nil
	case TypeFilterResult:
		var f Filter
		if len(env.Body) > 0 {
			if err := env.DecodeBody(&f); err != nil {
				return nil, fmt.Errorf("read reply: %w", err)
			}
		}
		res := filter.Confirm(f.Options())
		return &res, nil
	case TypeError:
		var e Error
		if err := env.DecodeBody(&e); err != nil {
			return nil, fmt.Errorf("read reply: %w", err)
		}
		return nil, &RemoteError{Message: e.Message, Unavailable: e.Unavailable}
	}
	return nil, fmt.Errorf("read reply: unexpected message %q", env.Type)
}
