package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldSelect
	fieldButton
	fieldLink
)

type buttonVariant int

const (
	buttonSolid buttonVariant = iota
	buttonOutline
	buttonGhost
)

// field is one focusable control. Only the members matching kind are used.
type field struct {
	kind  fieldKind
	label string

	input *textinput.Model

	options  []string
	selected int

	variant buttonVariant
	action  func() tea.Cmd
}

func newInputField(label, placeholder string, password bool) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Prompt = ""
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return &field{kind: fieldInput, label: label, input: &in}
}

func newSelectField(label string, options []string) *field {
	return &field{kind: fieldSelect, label: label, options: options}
}

func newButtonField(label string, variant buttonVariant, action func() tea.Cmd) *field {
	return &field{kind: fieldButton, label: label, variant: variant, action: action}
}

func newLinkField(label string) *field {
	return &field{kind: fieldLink, label: label}
}

// Value returns the text of an input or the chosen option of a select.
func (f *field) Value() string {
	switch f.kind {
	case fieldInput:
		return f.input.Value()
	case fieldSelect:
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.selected]
	default:
		return f.label
	}
}

func (f *field) cycle(delta int) {
	if len(f.options) == 0 {
		return
	}
	f.selected = (f.selected + delta + len(f.options)) % len(f.options)
}

func (f *field) reset() {
	switch f.kind {
	case fieldInput:
		f.input.SetValue("")
		f.input.Blur()
	case fieldSelect:
		f.selected = 0
	}
}

func (f *field) render(width int, focused bool) string {
	switch f.kind {
	case fieldInput:
		f.input.Width = max(width-4, 8)
		style := fieldStyle
		if focused {
			style = focusedFieldStyle
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			fieldLabelStyle.Render(f.label),
			style.Width(width-2).Render(f.input.View()),
		)
	case fieldSelect:
		style := fieldStyle
		if focused {
			style = focusedFieldStyle
		}
		value := fmt.Sprintf("‹ %s ›", f.Value())
		return lipgloss.JoinVertical(lipgloss.Left,
			fieldLabelStyle.Render(f.label),
			style.Width(width-2).Render(value),
		)
	case fieldLink:
		if focused {
			return focusedLinkStyle.Render(f.label)
		}
		return linkStyle.Render(f.label)
	default:
		return renderButton(f.label, f.variant, focused, width)
	}
}

func renderButton(label string, variant buttonVariant, focused bool, width int) string {
	style := buttonSolidStyle
	switch variant {
	case buttonOutline:
		style = buttonOutlineStyle
	case buttonGhost:
		style = buttonGhostStyle
	}
	if focused {
		style = buttonFocusStyle
	}
	if width > 0 {
		style = style.Copy().Width(width - style.GetHorizontalFrameSize()).Align(lipgloss.Center)
	}
	return style.Render(label)
}

// form is a focus ring over fields. Tab and arrows move the cursor, Enter
// presses buttons, Left and Right cycle selects and every other key goes to
// the focused text input.
type form struct {
	keys   keyMap
	fields []*field
	cursor int
}

func newForm(keys keyMap, fields ...*field) *form {
	return &form{keys: keys, fields: fields}
}

func (f *form) focused() *field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.cursor]
}

func (f *form) isFocused(target *field) bool {
	return f.focused() == target
}

// capturesText reports whether the focused field is a text input.
func (f *form) capturesText() bool {
	current := f.focused()
	return current != nil && current.kind == fieldInput
}

func (f *form) reset() tea.Cmd {
	for _, fl := range f.fields {
		fl.reset()
	}
	f.cursor = 0
	return f.focusCurrent()
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if current := f.focused(); current.kind == fieldInput {
		current.input.Blur()
	}
	f.cursor = (f.cursor + delta + len(f.fields)) % len(f.fields)
	return f.focusCurrent()
}

func (f *form) focusCurrent() tea.Cmd {
	current := f.focused()
	if current == nil || current.kind != fieldInput {
		return nil
	}
	return current.input.Focus()
}

func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	current := f.focused()
	if current == nil {
		return nil
	}
	switch {
	case key.Matches(msg, f.keys.FocusNext):
		return f.move(1)
	case key.Matches(msg, f.keys.FocusPrev):
		return f.move(-1)
	}
	switch current.kind {
	case fieldInput:
		if key.Matches(msg, f.keys.Activate) {
			return f.move(1)
		}
		updated, cmd := current.input.Update(msg)
		*current.input = updated
		return cmd
	case fieldSelect:
		switch {
		case key.Matches(msg, f.keys.OptionNext):
			current.cycle(1)
		case key.Matches(msg, f.keys.OptionPrev):
			current.cycle(-1)
		case key.Matches(msg, f.keys.Activate):
			current.cycle(1)
		}
	case fieldButton:
		if key.Matches(msg, f.keys.Activate) && current.action != nil {
			return current.action()
		}
	}
	return nil
}

// writeFields renders fields into cb, marking the focused one.
func (f *form) writeFields(cb *contentBuilder, width int, fields ...*field) {
	for _, fl := range fields {
		focused := f.isFocused(fl)
		cb.WriteFocus(fl.render(width, focused), focused)
	}
}

func (f *form) hints() []key.Binding {
	return []key.Binding{f.keys.FocusNext, f.keys.FocusPrev, f.keys.OptionNext, f.keys.Activate}
}
