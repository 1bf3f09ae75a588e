package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/otp"
	"github.com/csheth/courtside/internal/screen"
)

// verifyPage hosts the code entry. Keys are translated into otp.Group change
// and keydown events and the returned focus intents move the cursor.
type verifyPage struct {
	nav    navigator
	keys   keyMap
	copy   catalog.VerifyCopy
	code   *otp.Group
	cursor int
}

func newVerifyPage(nav navigator, keys keyMap, labels catalog.VerifyCopy) *verifyPage {
	return &verifyPage{nav: nav, keys: keys, copy: labels, code: otp.New(otp.Length)}
}

func (p *verifyPage) mount() tea.Cmd {
	p.code.Reset()
	p.cursor = 0
	return nil
}

func (p *verifyPage) capturesText() bool { return false }

func (p *verifyPage) hints() []key.Binding {
	return []key.Binding{p.keys.SlotLeft, p.keys.Erase, p.keys.Activate, p.keys.Back}
}

func (p *verifyPage) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Back):
		return p.nav.GoTo(screen.Login)
	case key.Matches(msg, p.keys.Activate):
		return p.confirm()
	case key.Matches(msg, p.keys.Erase):
		name := otp.KeyBackspace
		if msg.Type == tea.KeyDelete {
			name = otp.KeyDelete
		}
		p.erase(name)
	case key.Matches(msg, p.keys.SlotLeft):
		p.focusSlot(p.cursor - 1)
	case key.Matches(msg, p.keys.SlotRight):
		p.focusSlot(p.cursor + 1)
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			p.typeRune(r)
		}
	}
	return nil
}

// typeRune feeds one keystroke to the focused slot. Rejected characters are
// dropped without feedback.
func (p *verifyPage) typeRune(r rune) {
	focus, err := p.code.Change(p.cursor, string(r))
	if err != nil {
		log.Printf("[otp] ignored %q at slot %d: %v", r, p.cursor, err)
		return
	}
	p.apply(focus)
}

// erase mirrors a browser backspace: the keydown runs first and may move
// focus back from an empty slot; otherwise the filled slot is cleared in place.
func (p *verifyPage) erase(name string) {
	if focus := p.code.KeyDown(p.cursor, name); focus.Move {
		p.apply(focus)
		return
	}
	if p.code.Slot(p.cursor) == "" {
		return
	}
	focus, err := p.code.Change(p.cursor, "")
	if err != nil {
		return
	}
	p.apply(focus)
}

func (p *verifyPage) apply(focus otp.Focus) {
	if focus.Move {
		p.focusSlot(focus.Slot)
	}
}

func (p *verifyPage) focusSlot(index int) {
	if index < 0 || index >= p.code.Len() {
		return
	}
	p.cursor = index
}

// confirm proceeds regardless of how many digits were entered.
func (p *verifyPage) confirm() tea.Cmd {
	code := p.code.Code()
	log.Printf("[otp] confirm with %d/%d digits (complete=%t)", len(code), p.code.Len(), p.code.Complete())
	return p.nav.GoTo(screen.Profile)
}

func (p *verifyPage) view(width int) displayView {
	inner := cardInner(cardStyle, width)
	slots := make([]string, 0, p.code.Len())
	for i, digit := range p.code.Slots() {
		style := slotStyle
		if i == p.cursor {
			style = focusedSlotStyle
		}
		if digit == "" {
			digit = " "
		}
		slots = append(slots, style.Render(digit))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(slots, " ")...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, titleStyle.Render(p.copy.Title)),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, helperStyle.Render(wrap(p.copy.Body, inner-2))),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, row),
		"",
		renderButton(p.copy.Confirm, buttonSolid, false, inner),
	)
	return staticView(stack(
		"",
		renderCard(cardStyle, width, body),
		"",
		geometricFooter(width),
	))
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
