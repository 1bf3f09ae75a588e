package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Close      key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	OptionNext key.Binding
	OptionPrev key.Binding
	Activate   key.Binding
	Back       key.Binding
	SlotLeft   key.Binding
	SlotRight  key.Binding
	Erase      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "enter"),
			key.WithHelp("→/enter", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "skip"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		OptionNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		OptionPrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		SlotLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "move between digits"),
		),
		SlotRight: key.NewBinding(
			key.WithKeys("right"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "erase"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// pageHelp adapts a page's bindings plus the global ones to help.KeyMap.
type pageHelp struct {
	page   []key.Binding
	global []key.Binding
}

func (h pageHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), h.page...), h.global...)
}

func (h pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.page, h.global}
}
