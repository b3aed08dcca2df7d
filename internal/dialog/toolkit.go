package dialog

import "context"

// Property names a queryable widget attribute.
type Property string

const (
	// CurrentButton of a RadioButtonGroup: string ID, "" when nothing is selected.
	CurrentButton Property = "CurrentButton"
	// Value of a DateTimeField (time.Time) or InputField (string).
	Value Property = "Value"
)

// Toolkit renders a widget tree and reports user actions. Only one dialog
// is open at a time.
type Toolkit interface {
	// OpenDialog renders tree as a modal dialog.
	OpenDialog(tree Widget) error
	// UserInput blocks until the user activates a button and returns its ID.
	UserInput(ctx context.Context) (string, error)
	// QueryWidget reads a property of the widget with the given ID.
	QueryWidget(id string, prop Property) (any, error)
	// CloseDialog tears down the open dialog.
	CloseDialog() error
}

// Translator supplies display strings for the active locale.
type Translator interface {
	Translate(msgid string) string
	CancelLabel() string
	OKLabel() string
}
