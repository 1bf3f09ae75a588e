package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormFocusRingWraps(t *testing.T) {
	a := newButtonField("a", buttonSolid, nil)
	b := newSelectField("b", []string{"x", "y"})
	c := newInputField("c", "", false)
	f := newForm(defaultKeyMap(), a, b, c)

	f.update(special(tea.KeyShiftTab))
	if !f.isFocused(c) {
		t.Fatal("shift+tab from the first field should wrap to the last")
	}
	if !f.capturesText() {
		t.Fatal("text input should capture text")
	}
	f.update(special(tea.KeyTab))
	if !f.isFocused(a) {
		t.Fatal("tab from the last field should wrap to the first")
	}
	f.update(special(tea.KeyDown))
	if !f.isFocused(b) || f.capturesText() {
		t.Fatal("down should move to the select")
	}
}

func TestFormSelectCycles(t *testing.T) {
	sel := newSelectField("sel", []string{"one", "two", "three"})
	f := newForm(defaultKeyMap(), sel)

	steps := []struct {
		key  tea.KeyMsg
		want string
	}{
		{key: special(tea.KeyRight), want: "two"},
		{key: special(tea.KeyEnter), want: "three"},
		{key: special(tea.KeyRight), want: "one"},
		{key: special(tea.KeyLeft), want: "three"},
	}
	for _, step := range steps {
		f.update(step.key)
		if got := sel.Value(); got != step.want {
			t.Fatalf("after %s: got %q want %q", step.key, got, step.want)
		}
	}
}

func TestFormButtonAction(t *testing.T) {
	pressed := 0
	button := newButtonField("go", buttonSolid, func() tea.Cmd {
		pressed++
		return nil
	})
	inert := newButtonField("noop", buttonGhost, nil)
	f := newForm(defaultKeyMap(), button, inert)

	f.update(special(tea.KeyEnter))
	if pressed != 1 {
		t.Fatalf("pressed = %d, want 1", pressed)
	}
	f.update(runes("z"))
	if pressed != 1 {
		t.Fatal("only enter should press a button")
	}
	f.update(special(tea.KeyTab))
	if cmd := f.update(special(tea.KeyEnter)); cmd != nil {
		t.Fatal("inert button should not return a command")
	}
}

func TestFormInputEnterAdvances(t *testing.T) {
	in := newInputField("name", "", false)
	next := newButtonField("next", buttonSolid, nil)
	f := newForm(defaultKeyMap(), in, next)
	f.reset()

	f.update(runes("ana"))
	f.update(special(tea.KeyEnter))
	if in.Value() != "ana" {
		t.Fatalf("input value = %q", in.Value())
	}
	if !f.isFocused(next) {
		t.Fatal("enter in an input should advance focus")
	}

	f.reset()
	if in.Value() != "" || !f.isFocused(in) {
		t.Fatal("reset should clear values and focus the first field")
	}
}
