package filter

// Result is the outcome of one filter dialog run. A cancelled run is an
// explicit "no change" and differs from a confirmed run where nothing was
// selected: only the latter has Confirmed set.
type Result struct {
	Confirmed bool
	Options   Options
}

// Cancelled returns the result of a dismissed dialog.
func Cancelled() Result { return Result{} }

// Confirm returns the result of accepting o.
func Confirm(o Options) Result { return Result{Confirmed: true, Options: o} }

// Fields returns the key/value form of the result. A cancelled result has
// no keys at all. A confirmed one always carries time and source, set to
// nil when no button of that group was selected.
func (r Result) Fields() map[string]any {
	if !r.Confirmed {
		return map[string]any{}
	}
	m := r.Options.Fields()
	for _, k := range []string{KeyTime, KeySource} {
		if _, ok := m[k]; !ok {
			m[k] = nil
		}
	}
	return m
}

// ResultFromFields is the inverse of Result.Fields: a map without time and
// source keys is a cancel.
func ResultFromFields(m map[string]any) Result {
	_, hasTime := m[KeyTime]
	_, hasSource := m[KeySource]
	if !hasTime && !hasSource {
		return Cancelled()
	}
	return Confirm(FromFields(m))
}

func (r Result) String() string {
	if !r.Confirmed {
		return "cancelled"
	}
	return "confirmed " + r.Options.String()
}
