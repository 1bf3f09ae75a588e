package otp

import (
	"errors"
	"reflect"
	"testing"
)

func fill(t *testing.T, g *Group, values ...string) {
	t.Helper()
	for i, v := range values {
		if _, err := g.Change(i, v); err != nil {
			t.Fatalf("Change(%d, %q) error = %v", i, v, err)
		}
	}
}

func TestChangeDigitAdvancesFocus(t *testing.T) {
	g := New(Length)
	focus, err := g.Change(0, "7")
	if err != nil {
		t.Fatalf("Change error = %v", err)
	}
	want := []string{"7", "", "", "", ""}
	if got := g.Slots(); !reflect.DeepEqual(got, want) {
		t.Fatalf("slots = %q, want %q", got, want)
	}
	if focus != (Focus{Slot: 1, Move: true}) {
		t.Fatalf("focus = %+v, want move to 1", focus)
	}
}

func TestChangeLastSlotKeepsFocus(t *testing.T) {
	g := New(Length)
	focus, err := g.Change(4, "3")
	if err != nil {
		t.Fatalf("Change error = %v", err)
	}
	if focus.Move || focus.Slot != 4 {
		t.Fatalf("focus = %+v, want stay at 4", focus)
	}
	if g.Slot(4) != "3" {
		t.Fatalf("slot 4 = %q", g.Slot(4))
	}
}

func TestChangeRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "letter", raw: "a"},
		{name: "two digits", raw: "12"},
		{name: "space", raw: " "},
		{name: "symbol", raw: "-"},
		{name: "non-ascii digit", raw: "٣"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(Length)
			fill(t, g, "1", "2")
			before := g.Slots()
			for i := 0; i < Length; i++ {
				focus, err := g.Change(i, tc.raw)
				if !errors.Is(err, ErrInvalidCharacter) {
					t.Fatalf("Change(%d, %q) err = %v, want ErrInvalidCharacter", i, tc.raw, err)
				}
				if focus.Move {
					t.Fatalf("rejected input moved focus: %+v", focus)
				}
			}
			if got := g.Slots(); !reflect.DeepEqual(got, before) {
				t.Fatalf("slots changed to %q, want %q", got, before)
			}
		})
	}
}

func TestChangeEmptyClearsWithoutMoving(t *testing.T) {
	g := New(Length)
	fill(t, g, "1", "2", "3")
	focus, err := g.Change(1, "")
	if err != nil {
		t.Fatalf("Change error = %v", err)
	}
	if focus.Move || focus.Slot != 1 {
		t.Fatalf("focus = %+v, want stay at 1", focus)
	}
	if g.Slot(1) != "" {
		t.Fatalf("slot 1 not cleared: %q", g.Slot(1))
	}
}

func TestChangeOutOfRange(t *testing.T) {
	g := New(Length)
	for _, idx := range []int{-1, Length} {
		if _, err := g.Change(idx, "1"); !errors.Is(err, ErrSlotOutOfRange) {
			t.Fatalf("Change(%d) err = %v, want ErrSlotOutOfRange", idx, err)
		}
	}
	if g.Code() != "" {
		t.Fatalf("out of range change mutated group: %q", g.Code())
	}
}

func TestKeyDownBackspace(t *testing.T) {
	cases := []struct {
		name  string
		slots []string
		index int
		key   string
		want  Focus
	}{
		{name: "empty slot moves back", slots: []string{"1", "2"}, index: 2, key: KeyBackspace, want: Focus{Slot: 1, Move: true}},
		{name: "first slot is a no-op", slots: nil, index: 0, key: KeyBackspace, want: Focus{Slot: 0}},
		{name: "filled slot stays", slots: []string{"1", "2"}, index: 1, key: KeyBackspace, want: Focus{Slot: 1}},
		{name: "delete behaves like backspace", slots: []string{"1"}, index: 1, key: KeyDelete, want: Focus{Slot: 0, Move: true}},
		{name: "other keys ignored", slots: []string{"1"}, index: 1, key: "ArrowLeft", want: Focus{Slot: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(Length)
			fill(t, g, tc.slots...)
			before := g.Slots()
			if got := g.KeyDown(tc.index, tc.key); got != tc.want {
				t.Fatalf("KeyDown(%d, %q) = %+v, want %+v", tc.index, tc.key, got, tc.want)
			}
			if !reflect.DeepEqual(g.Slots(), before) {
				t.Fatal("KeyDown must not edit slots")
			}
		})
	}
}

func TestCodeConcatenatesFilledSlots(t *testing.T) {
	g := New(Length)
	fill(t, g, "1", "2", "3", "4", "5")
	if got := g.Code(); got != "12345" {
		t.Fatalf("Code() = %q, want 12345", got)
	}
	if !g.Complete() {
		t.Fatal("full group should be complete")
	}

	partial := New(Length)
	fill(t, partial, "1", "2")
	if got := partial.Code(); got != "12" {
		t.Fatalf("Code() = %q, want 12", got)
	}
	if partial.Complete() {
		t.Fatal("partial group reported complete")
	}
}

func TestResetClearsSlots(t *testing.T) {
	g := New(Length)
	fill(t, g, "9", "8", "7")
	g.Reset()
	if g.Code() != "" {
		t.Fatalf("Code() after reset = %q", g.Code())
	}
	if g.Len() != Length {
		t.Fatalf("Len() = %d", g.Len())
	}
}

func TestNewDefaultsLength(t *testing.T) {
	if got := New(0).Len(); got != Length {
		t.Fatalf("New(0).Len() = %d, want %d", got, Length)
	}
}
