// Package dialog implements the journal filter dialog: it lays out a modal
// form through a Toolkit, waits for OK or Cancel and turns the widget state
// into a filter.Result.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thobiasn/sieve/internal/filter"
	"github.com/thobiasn/sieve/internal/locale"
)

// Widget IDs. Radio button IDs equal the filter kinds they select.
const (
	IDTime     = "time"
	IDSource   = "source"
	IDSince    = "since"
	IDUntil    = "until"
	IDUnitName = "unit_name"
	IDFilePath = "file_path"
	IDOK       = "ok"
	IDCancel   = "cancel"
)

const inputMinWidth = 20

var (
	// ErrUnavailable means the toolkit could not open the dialog.
	ErrUnavailable = errors.New("filter dialog unavailable")
	// ErrUnexpectedInput means the toolkit reported an action or widget
	// state the dialog never offered.
	ErrUnexpectedInput = errors.New("unexpected dialog input")
	// ErrAlreadyRun is returned by a second Run on the same FilterDialog.
	ErrAlreadyRun = errors.New("filter dialog already run")
)

// FilterDialog runs one modal interaction. Create a new one per interaction.
type FilterDialog struct {
	tk   Toolkit
	tr   Translator
	seed filter.Options
	log  *slog.Logger
	ran  bool
}

// Option configures a FilterDialog.
type Option func(*FilterDialog)

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *FilterDialog) { d.log = l }
}

// New returns a dialog pre-populated from seed. The seed is only read.
func New(tk Toolkit, tr Translator, seed filter.Options, opts ...Option) *FilterDialog {
	d := &FilterDialog{tk: tk, tr: tr, seed: seed, log: slog.Default()}
	for _, o := range opts {
		o(d)
	}
	return d
}

// action is the closed set of inputs the dialog accepts.
type action int

const (
	actionConfirm action = iota + 1
	actionCancel
)

func parseAction(id string) (action, error) {
	switch id {
	case IDOK:
		return actionConfirm, nil
	case IDCancel:
		return actionCancel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnexpectedInput, id)
}

// Run opens the dialog, waits for one action and closes it again.
//
// It returns nil and an error wrapping ErrUnavailable if the dialog cannot be
// opened, filter.Cancelled() on cancel and the selected options on confirm,
// even when nothing was selected. Any other action fails with
// ErrUnexpectedInput. Once opened, the dialog is closed exactly once on
// every path.
func (d *FilterDialog) Run(ctx context.Context) (result *filter.Result, err error) {
	if d.ran {
		return nil, ErrAlreadyRun
	}
	d.ran = true

	if err := d.tk.OpenDialog(d.layout()); err != nil {
		d.log.Warn("open filter dialog", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		cerr := d.tk.CloseDialog()
		if cerr == nil {
			return
		}
		if err != nil {
			d.log.Warn("close filter dialog", "error", cerr)
			return
		}
		result, err = nil, fmt.Errorf("close filter dialog: %w", cerr)
	}()

	id, err := d.tk.UserInput(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dialog input: %w", err)
	}

	act, err := parseAction(id)
	if err != nil {
		d.log.Warn("filter dialog aborted", "error", err)
		return nil, err
	}
	switch act {
	case actionCancel:
		d.log.Debug("filter dialog cancelled")
		r := filter.Cancelled()
		return &r, nil
	case actionConfirm:
		opts, err := d.extract()
		if err != nil {
			return nil, err
		}
		d.log.Debug("filter dialog confirmed", "filter", opts.String())
		r := filter.Confirm(opts)
		return &r, nil
	}
	panic("unreachable")
}

// extract reads the confirmed widget state.
func (d *FilterDialog) extract() (filter.Options, error) {
	var opts filter.Options

	timeID, err := d.queryString(IDTime, CurrentButton)
	if err != nil {
		return opts, err
	}
	switch filter.TimeKind(timeID) {
	case "":
	case filter.TimeCurrentBoot:
		opts.Time = filter.CurrentBoot{}
	case filter.TimePreviousBoot:
		opts.Time = filter.PreviousBoot{}
	case filter.TimeDates:
		since, err := d.queryTime(IDSince)
		if err != nil {
			return opts, err
		}
		until, err := d.queryTime(IDUntil)
		if err != nil {
			return opts, err
		}
		opts.Time = filter.Dates{Since: since, Until: until}
	default:
		return opts, fmt.Errorf("%w: %s button %q", ErrUnexpectedInput, IDTime, timeID)
	}

	sourceID, err := d.queryString(IDSource, CurrentButton)
	if err != nil {
		return opts, err
	}
	switch filter.SourceKind(sourceID) {
	case "":
	case filter.SourceAll:
		opts.Source = filter.AllSources{}
	case filter.SourceUnit:
		name, err := d.queryString(IDUnitName, Value)
		if err != nil {
			return opts, err
		}
		opts.Source = filter.Unit{Name: name}
	case filter.SourceFile:
		path, err := d.queryString(IDFilePath, Value)
		if err != nil {
			return opts, err
		}
		opts.Source = filter.File{Path: path}
	default:
		return opts, fmt.Errorf("%w: %s button %q", ErrUnexpectedInput, IDSource, sourceID)
	}
	return opts, nil
}

func (d *FilterDialog) queryString(id string, prop Property) (string, error) {
	v, err := d.tk.QueryWidget(id, prop)
	if err != nil {
		return "", fmt.Errorf("query %s.%s: %w", id, prop, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("query %s.%s: got %T, want string", id, prop, v)
	}
	return s, nil
}

func (d *FilterDialog) queryTime(id string) (time.Time, error) {
	v, err := d.tk.QueryWidget(id, Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("query %s.%s: %w", id, Value, err)
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("query %s.%s: got %T, want time.Time", id, Value, v)
	}
	return t, nil
}

// layout builds the widget tree, pre-selecting the seed's variants.
func (d *FilterDialog) layout() Widget {
	var timeKind filter.TimeKind
	var since, until time.Time
	if d.seed.Time != nil {
		timeKind = d.seed.Time.Kind()
		if dates, ok := d.seed.Time.(filter.Dates); ok {
			since, until = dates.Since, dates.Until
		}
	}

	var sourceKind filter.SourceKind
	var unitName, filePath string
	if d.seed.Source != nil {
		sourceKind = d.seed.Source.Kind()
		switch s := d.seed.Source.(type) {
		case filter.Unit:
			unitName = s.Name
		case filter.File:
			filePath = s.Path
		}
	}

	timeButton := func(k filter.TimeKind, msgid string) RadioButton {
		return RadioButton{ID: string(k), Label: d.tr.Translate(msgid), Selected: timeKind == k}
	}
	sourceButton := func(k filter.SourceKind, msgid string) RadioButton {
		return RadioButton{ID: string(k), Label: d.tr.Translate(msgid), Selected: sourceKind == k}
	}

	return VBox{Children: []Widget{
		Heading{Text: d.tr.Translate(locale.MsgJournalFilter)},
		Spacing{},
		Frame{
			Title: d.tr.Translate(locale.MsgWhen),
			Child: RadioButtonGroup{ID: IDTime, Child: VBox{Children: []Widget{
				timeButton(filter.TimeCurrentBoot, locale.MsgCurrentBoot),
				timeButton(filter.TimePreviousBoot, locale.MsgPreviousBoot),
				HBox{Children: []Widget{
					timeButton(filter.TimeDates, locale.MsgDates),
					DateTimeField{ID: IDSince, Value: since},
					Label{Text: "-"},
					DateTimeField{ID: IDUntil, Value: until, EndOfDay: true},
				}},
			}}},
		},
		Spacing{},
		Frame{
			Title: d.tr.Translate(locale.MsgGeneratedBy),
			Child: RadioButtonGroup{ID: IDSource, Child: VBox{Children: []Widget{
				sourceButton(filter.SourceAll, locale.MsgAnySource),
				HBox{Children: []Widget{
					sourceButton(filter.SourceUnit, locale.MsgUnit),
					InputField{ID: IDUnitName, Value: unitName, MinWidth: inputMinWidth},
				}},
				HBox{Children: []Widget{
					sourceButton(filter.SourceFile, locale.MsgFile),
					InputField{ID: IDFilePath, Value: filePath, MinWidth: inputMinWidth},
				}},
			}}},
		},
		Spacing{},
		ButtonBox{Buttons: []PushButton{
			{ID: IDCancel, Label: d.tr.CancelLabel(), Role: RoleCancel},
			{ID: IDOK, Label: d.tr.OKLabel(), Role: RoleOK},
		}},
	}}
}
