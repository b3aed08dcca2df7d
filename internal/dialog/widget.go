package dialog

import "time"

// Widget is a node of a declarative widget tree handed to a Toolkit.
// The set of node types is closed; toolkits switch on the concrete type.
type Widget interface {
	widget()
}

// VBox stacks children top to bottom.
type VBox struct {
	Children []Widget
}

// HBox lays children out left to right.
type HBox struct {
	Children []Widget
}

// Heading is a dialog title.
type Heading struct {
	Text string
}

// Label is static text.
type Label struct {
	Text string
}

// Spacing is an empty line or column.
type Spacing struct{}

// Frame draws a titled border around its child.
type Frame struct {
	Title string
	Child Widget
}

// RadioButtonGroup makes the RadioButtons below it mutually exclusive.
// Its CurrentButton property is the ID of the selected button, or "".
type RadioButtonGroup struct {
	ID    string
	Child Widget
}

// RadioButton is one option of the enclosing RadioButtonGroup.
type RadioButton struct {
	ID       string
	Label    string
	Selected bool
}

// DateTimeField picks a point in time. The zero Value means the picker
// starts blank. With EndOfDay set, a date picked without a time resolves to
// the last second of that day instead of midnight.
type DateTimeField struct {
	ID       string
	Value    time.Time
	EndOfDay bool
}

// InputField is a single-line text input.
type InputField struct {
	ID       string
	Value    string
	MinWidth int
}

// ButtonRole tells a toolkit which keys map to a button.
type ButtonRole int

const (
	RoleCustom ButtonRole = iota
	RoleOK
	RoleCancel
)

// PushButton emits its ID as the user input when activated.
type PushButton struct {
	ID    string
	Label string
	Role  ButtonRole
}

// ButtonBox holds the dialog's footer buttons.
type ButtonBox struct {
	Buttons []PushButton
}

func (VBox) widget()             {}
func (HBox) widget()             {}
func (Heading) widget()          {}
func (Label) widget()            {}
func (Spacing) widget()          {}
func (Frame) widget()            {}
func (RadioButtonGroup) widget() {}
func (RadioButton) widget()      {}
func (DateTimeField) widget()    {}
func (InputField) widget()       {}
func (PushButton) widget()       {}
func (ButtonBox) widget()        {}
