package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thobiasn/sieve/internal/dialog"
	"github.com/thobiasn/sieve/internal/locale"
)

type stopKind int

const (
	stopRadio stopKind = iota
	stopDate
	stopInput
	stopButton
)

// focusStop is one position in the Tab order. part selects the date (0) or
// time (1) half of a date picker.
type focusStop struct {
	kind stopKind
	id   string
	part int
}

// form is the Bubble Tea model for one open dialog. It is a pointer model so
// the toolkit can read the final state after the program exits.
type form struct {
	tree    dialog.Widget
	display DisplayConfig
	theme   *Theme
	now     func() time.Time

	groups   map[string]string // group ID -> selected button ID
	buttonOf map[string]string // radio button ID -> group ID
	dates    map[string]*dateTimeField
	inputs   map[string]*textinput.Model
	buttons  map[string]dialog.PushButton

	stops []focusStop
	focus int

	okID, cancelID string
	help           string // key hint under the dialog

	action        string
	width, height int
}

// newForm validates tree and builds the initial state from it.
func newForm(tree dialog.Widget, display DisplayConfig, theme *Theme, now func() time.Time) (*form, error) {
	f := &form{
		tree:     tree,
		display:  display,
		theme:    theme,
		now:      now,
		groups:   make(map[string]string),
		buttonOf: make(map[string]string),
		dates:    make(map[string]*dateTimeField),
		inputs:   make(map[string]*textinput.Model),
		buttons:  make(map[string]dialog.PushButton),
		help:     locale.MsgKeyHelp,
	}
	seen := make(map[string]bool)
	if err := f.collect(tree, "", seen); err != nil {
		return nil, err
	}
	if len(f.buttons) == 0 {
		return nil, fmt.Errorf("dialog has no buttons")
	}
	f.setFocus(0)
	return f, nil
}

func (f *form) collect(w dialog.Widget, group string, seen map[string]bool) error {
	claim := func(id string) error {
		if id == "" {
			return fmt.Errorf("%T without ID", w)
		}
		if seen[id] {
			return fmt.Errorf("duplicate widget ID %q", id)
		}
		seen[id] = true
		return nil
	}

	switch n := w.(type) {
	case dialog.VBox:
		for _, c := range n.Children {
			if err := f.collect(c, group, seen); err != nil {
				return err
			}
		}
	case dialog.HBox:
		for _, c := range n.Children {
			if err := f.collect(c, group, seen); err != nil {
				return err
			}
		}
	case dialog.Frame:
		return f.collect(n.Child, group, seen)
	case dialog.RadioButtonGroup:
		if err := claim(n.ID); err != nil {
			return err
		}
		if group != "" {
			return fmt.Errorf("radio group %q nested in %q", n.ID, group)
		}
		f.groups[n.ID] = ""
		return f.collect(n.Child, n.ID, seen)
	case dialog.RadioButton:
		if err := claim(n.ID); err != nil {
			return err
		}
		if group == "" {
			return fmt.Errorf("radio button %q outside a group", n.ID)
		}
		f.buttonOf[n.ID] = group
		if n.Selected {
			f.groups[group] = n.ID
		}
		f.stops = append(f.stops, focusStop{kind: stopRadio, id: n.ID})
	case dialog.DateTimeField:
		if err := claim(n.ID); err != nil {
			return err
		}
		f.dates[n.ID] = newDateTimeField(n.Value, n.EndOfDay, f.display, f.now())
		f.stops = append(f.stops,
			focusStop{kind: stopDate, id: n.ID, part: 0},
			focusStop{kind: stopDate, id: n.ID, part: 1})
	case dialog.InputField:
		if err := claim(n.ID); err != nil {
			return err
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = n.MinWidth
		ti.SetValue(n.Value)
		f.inputs[n.ID] = &ti
		f.stops = append(f.stops, focusStop{kind: stopInput, id: n.ID})
	case dialog.ButtonBox:
		for _, b := range n.Buttons {
			if err := f.collect(b, group, seen); err != nil {
				return err
			}
		}
	case dialog.PushButton:
		if err := claim(n.ID); err != nil {
			return err
		}
		f.buttons[n.ID] = n
		switch n.Role {
		case dialog.RoleOK:
			f.okID = n.ID
		case dialog.RoleCancel:
			f.cancelID = n.ID
		}
		f.stops = append(f.stops, focusStop{kind: stopButton, id: n.ID})
	case dialog.Heading, dialog.Label, dialog.Spacing:
	default:
		return fmt.Errorf("unsupported widget %T", w)
	}
	return nil
}

func (f *form) current() focusStop {
	return f.stops[f.focus]
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.stops) == 0 {
		return nil
	}
	if prev := f.current(); prev.kind == stopInput {
		f.inputs[prev.id].Blur()
	}
	f.focus = (i + len(f.stops)) % len(f.stops)
	if next := f.current(); next.kind == stopInput {
		return f.inputs[next.id].Focus()
	}
	return nil
}

func (f *form) Init() tea.Cmd {
	return nil
}

func (f *form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
		return f, nil
	case tea.KeyMsg:
		return f, f.handleKey(msg)
	}
	if stop := f.current(); stop.kind == stopInput {
		ti, cmd := f.inputs[stop.id].Update(msg)
		*f.inputs[stop.id] = ti
		return f, cmd
	}
	return f, nil
}

func (f *form) handleKey(msg tea.KeyMsg) tea.Cmd {
	stop := f.current()
	switch msg.String() {
	case "esc":
		if f.cancelID != "" {
			return f.activate(f.cancelID)
		}
		return nil
	case "ctrl+c":
		// Without a Cancel button the program ends with no action.
		return f.activate(f.cancelID)
	case "tab", "down":
		return f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f.setFocus(f.focus - 1)
	case "enter":
		if stop.kind == stopButton {
			return f.activate(stop.id)
		}
		if f.okID != "" {
			return f.activate(f.okID)
		}
		return nil
	case " ":
		switch stop.kind {
		case stopRadio:
			f.groups[f.buttonOf[stop.id]] = stop.id
			return nil
		case stopButton:
			return f.activate(stop.id)
		}
	case "backspace":
		if stop.kind == stopDate {
			field := f.dates[stop.id]
			field.part(stop.part).backspace()
			field.edited = true
			return nil
		}
	}

	switch stop.kind {
	case stopInput:
		ti, cmd := f.inputs[stop.id].Update(msg)
		*f.inputs[stop.id] = ti
		return cmd
	case stopDate:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return nil
		}
		r := msg.Runes[0]
		if r < '0' || r > '9' {
			return nil
		}
		field := f.dates[stop.id]
		field.edited = true
		if field.part(stop.part).typeDigit(r) {
			return f.setFocus(f.focus + 1)
		}
	}
	return nil
}

func (f *form) activate(id string) tea.Cmd {
	f.action = id
	return tea.Quit
}

// reset prepares the form for another UserInput round.
func (f *form) reset() {
	f.action = ""
}

func (f *form) View() string {
	content := f.render(f.tree)
	help := mutedStyle(f.theme).Render(f.help)
	content = lipgloss.JoinVertical(lipgloss.Left, content, "", help)
	if f.width > 0 && f.height > 0 {
		return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (f *form) isFocused(kind stopKind, id string, part int) bool {
	s := f.current()
	return s.kind == kind && s.id == id && s.part == part
}

func (f *form) render(w dialog.Widget) string {
	bracket := func(ch string, focused bool) string {
		if focused {
			return accentStyle(f.theme).Render(ch)
		}
		return mutedStyle(f.theme).Render(ch)
	}

	switch n := w.(type) {
	case dialog.VBox:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, f.render(c))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	case dialog.HBox:
		parts := make([]string, 0, 2*len(n.Children))
		for i, c := range n.Children {
			if i > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, f.render(c))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	case dialog.Heading:
		return lipgloss.NewStyle().Foreground(f.theme.FgBright).Bold(true).Render(n.Text)
	case dialog.Label:
		return n.Text
	case dialog.Spacing:
		return ""
	case dialog.Frame:
		inner := f.render(n.Child)
		lines := strings.Split(inner, "\n")
		for i, l := range lines {
			lines[i] = " " + l + " "
		}
		return boxed(n.Title, strings.Join(lines, "\n"), f.theme)
	case dialog.RadioButtonGroup:
		return f.render(n.Child)
	case dialog.RadioButton:
		marker := "( )"
		if f.groups[f.buttonOf[n.ID]] == n.ID {
			marker = lipgloss.NewStyle().Foreground(f.theme.Selected).Render("(•)")
		}
		label := n.Label
		if f.isFocused(stopRadio, n.ID, 0) {
			label = lipgloss.NewStyle().Reverse(true).Render(label)
		}
		return marker + " " + label
	case dialog.DateTimeField:
		field := f.dates[n.ID]
		dateFocus := f.isFocused(stopDate, n.ID, 0)
		timeFocus := f.isFocused(stopDate, n.ID, 1)
		return bracket("[", dateFocus) + field.date.render(dateFocus, f.theme) + bracket("]", dateFocus) +
			" " + bracket("[", timeFocus) + field.clock.render(timeFocus, f.theme) + bracket("]", timeFocus)
	case dialog.InputField:
		focused := f.isFocused(stopInput, n.ID, 0)
		ti := f.inputs[n.ID]
		view := ti.View()
		if pad := ti.Width + 1 - lipgloss.Width(view); pad > 0 {
			view += strings.Repeat(" ", pad)
		}
		return bracket("[", focused) + view + bracket("]", focused)
	case dialog.ButtonBox:
		parts := make([]string, 0, len(n.Buttons))
		for _, b := range n.Buttons {
			parts = append(parts, f.render(b))
		}
		return strings.Join(parts, "  ")
	case dialog.PushButton:
		label := "[ " + n.Label + " ]"
		if f.isFocused(stopButton, n.ID, 0) {
			return lipgloss.NewStyle().Reverse(true).Render(label)
		}
		return label
	}
	return ""
}
