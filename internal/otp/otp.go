// Package otp models a fixed-length group of single-digit input slots and the
// focus movement between them. Handlers return focus intents instead of
// touching UI controls; the caller applies them.
package otp

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of slots in a verification code.
const Length = 5

// Keys understood by KeyDown.
const (
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
)

var (
	// ErrInvalidCharacter reports input that is neither empty nor one digit.
	ErrInvalidCharacter = errors.New("otp: invalid character")
	// ErrSlotOutOfRange reports an index outside the group.
	ErrSlotOutOfRange = errors.New("otp: slot out of range")
)

// Focus tells the presentation layer which slot should hold keyboard focus
// after an edit. Move is false when focus stays where it was.
type Focus struct {
	Slot int
	Move bool
}

// Group holds the ordered slots. Each slot is "" or a single digit.
type Group struct {
	slots []string
}

// New returns a group with n empty slots. n below one is treated as Length.
func New(n int) *Group {
	if n < 1 {
		n = Length
	}
	return &Group{slots: make([]string, n)}
}

// Len returns the number of slots.
func (g *Group) Len() int {
	return len(g.slots)
}

// Slot returns the value at index, or "" when index is out of range.
func (g *Group) Slot(index int) string {
	if index < 0 || index >= len(g.slots) {
		return ""
	}
	return g.slots[index]
}

// Slots returns a copy of all slot values.
func (g *Group) Slots() []string {
	return append([]string(nil), g.slots...)
}

// Change applies raw to the slot at index. Only "" and a single decimal digit
// are accepted; anything else leaves the group untouched.
func (g *Group) Change(index int, raw string) (Focus, error) {
	if index < 0 || index >= len(g.slots) {
		return Focus{Slot: index}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	stay := Focus{Slot: index}
	if !acceptable(raw) {
		return stay, fmt.Errorf("%w: %q", ErrInvalidCharacter, raw)
	}
	g.slots[index] = raw
	if raw != "" && index < len(g.slots)-1 {
		return Focus{Slot: index + 1, Move: true}, nil
	}
	return stay, nil
}

// KeyDown handles a key press on the slot at index. Backspace (or Delete) on
// an empty slot moves focus to the previous slot; the first slot never moves.
func (g *Group) KeyDown(index int, key string) Focus {
	stay := Focus{Slot: index}
	if key != KeyBackspace && key != KeyDelete {
		return stay
	}
	if index <= 0 || index >= len(g.slots) {
		return stay
	}
	if g.slots[index] != "" {
		return stay
	}
	return Focus{Slot: index - 1, Move: true}
}

// Code concatenates the slots. Empty slots contribute nothing, so a partially
// filled group yields a shorter string.
func (g *Group) Code() string {
	return strings.Join(g.slots, "")
}

// Complete reports whether every slot holds a digit.
func (g *Group) Complete() bool {
	for _, slot := range g.slots {
		if slot == "" {
			return false
		}
	}
	return true
}

// Reset clears every slot.
func (g *Group) Reset() {
	for i := range g.slots {
		g.slots[i] = ""
	}
}

func acceptable(raw string) bool {
	if raw == "" {
		return true
	}
	return len(raw) == 1 && raw[0] >= '0' && raw[0] <= '9'
}
