package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/thobiasn/sieve/internal/dialog"
	"github.com/thobiasn/sieve/internal/locale"
)

var (
	// ErrNoTerminal is returned by OpenDialog when stdin or stdout is not a terminal.
	ErrNoTerminal = errors.New("not a terminal")
	// ErrDialogOpen is returned by OpenDialog while another dialog is open.
	ErrDialogOpen = errors.New("a dialog is already open")
	// ErrNoDialog is returned when no dialog is open.
	ErrNoDialog = errors.New("no dialog open")
)

// Toolkit is a dialog.Toolkit drawing into the terminal with Bubble Tea.
type Toolkit struct {
	display DisplayConfig
	theme   Theme
	now     func() time.Time
	tr      dialog.Translator

	in       io.Reader
	out      io.Writer
	customIO bool

	form *form
}

var _ dialog.Toolkit = (*Toolkit)(nil)

// ToolkitOption configures a Toolkit.
type ToolkitOption func(*Toolkit)

// WithIO replaces stdin/stdout. The terminal check is skipped and the
// program does not switch to the alternate screen.
func WithIO(in io.Reader, out io.Writer) ToolkitOption {
	return func(t *Toolkit) {
		t.in, t.out, t.customIO = in, out, true
	}
}

// WithClock sets the time source for picker defaults.
func WithClock(now func() time.Time) ToolkitOption {
	return func(t *Toolkit) { t.now = now }
}

// WithTranslator localizes the toolkit's own captions, such as the key hint.
// Without one they are shown in English.
func WithTranslator(tr dialog.Translator) ToolkitOption {
	return func(t *Toolkit) { t.tr = tr }
}

// NewToolkit returns a terminal toolkit. Zero display layouts fall back to
// DefaultDisplayConfig.
func NewToolkit(display DisplayConfig, theme Theme, opts ...ToolkitOption) *Toolkit {
	def := DefaultDisplayConfig()
	if display.DateFormat == "" {
		display.DateFormat = def.DateFormat
	}
	if display.TimeFormat == "" {
		display.TimeFormat = def.TimeFormat
	}
	t := &Toolkit{
		display: display,
		theme:   theme,
		now:     time.Now,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OpenDialog validates tree and makes it the open dialog. Nothing is drawn
// until UserInput runs the program.
func (t *Toolkit) OpenDialog(tree dialog.Widget) error {
	if t.form != nil {
		return ErrDialogOpen
	}
	if !t.customIO && (!isTerminal(t.in) || !isTerminal(t.out)) {
		return ErrNoTerminal
	}
	f, err := newForm(tree, t.display, &t.theme, t.now)
	if err != nil {
		return fmt.Errorf("build dialog: %w", err)
	}
	if t.tr != nil {
		f.help = t.tr.Translate(locale.MsgKeyHelp)
	}
	t.form = f
	return nil
}

// UserInput runs the dialog until a button is activated and returns its ID.
func (t *Toolkit) UserInput(ctx context.Context) (string, error) {
	if t.form == nil {
		return "", ErrNoDialog
	}
	t.form.reset()

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	}
	if !t.customIO {
		opts = append(opts, tea.WithAltScreen())
	} else {
		opts = append(opts, tea.WithoutSignalHandler())
	}

	p := tea.NewProgram(t.form, opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("run dialog: %w", err)
	}
	if t.form.action == "" {
		return "", errors.New("dialog ended without a button")
	}
	return t.form.action, nil
}

// QueryWidget reads CurrentButton of a radio group or Value of a date or
// input field.
func (t *Toolkit) QueryWidget(id string, prop dialog.Property) (any, error) {
	if t.form == nil {
		return nil, ErrNoDialog
	}
	f := t.form
	switch prop {
	case dialog.CurrentButton:
		if cur, ok := f.groups[id]; ok {
			return cur, nil
		}
	case dialog.Value:
		if field, ok := f.dates[id]; ok {
			return field.value(t.display, t.now()), nil
		}
		if ti, ok := f.inputs[id]; ok {
			return ti.Value(), nil
		}
	default:
		return nil, fmt.Errorf("unknown property %q", prop)
	}
	return nil, fmt.Errorf("widget %q has no property %s", id, prop)
}

// CloseDialog discards the open dialog.
func (t *Toolkit) CloseDialog() error {
	if t.form == nil {
		return ErrNoDialog
	}
	t.form = nil
	return nil
}
