package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

// onboardingPage is one card of the carousel. Step 0 has no previous card and
// the last step continues to login; closing always skips to login.
type onboardingPage struct {
	nav   navigator
	keys  keyMap
	slide catalog.Slide
	step  int
	dots  int
	prev  screen.ID
	next  screen.ID
	first bool
}

func newOnboardingPage(nav navigator, keys keyMap, cat *catalog.Catalog, step int) *onboardingPage {
	p := &onboardingPage{
		nav:   nav,
		keys:  keys,
		step:  step,
		dots:  cat.CarouselDots,
		first: step == 0,
		next:  screen.Login,
	}
	if step < len(cat.Slides) {
		p.slide = cat.Slides[step]
	}
	if step == 0 {
		p.next = screen.OnboardingStep2
	} else {
		p.prev = screen.OnboardingStep1
	}
	return p
}

func (p *onboardingPage) mount() tea.Cmd { return nil }

func (p *onboardingPage) capturesText() bool { return false }

func (p *onboardingPage) hints() []key.Binding {
	return []key.Binding{p.keys.Next, p.keys.Prev, p.keys.Close}
}

func (p *onboardingPage) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Close):
		return p.nav.GoTo(screen.Login)
	case key.Matches(msg, p.keys.Next):
		return p.nav.GoTo(p.next)
	case key.Matches(msg, p.keys.Prev):
		if p.first {
			return nil
		}
		return p.nav.GoTo(p.prev)
	}
	return nil
}

func (p *onboardingPage) view(width int) displayView {
	inner := cardInner(cardStyle, width)
	closeMark := lipgloss.PlaceHorizontal(inner, lipgloss.Right, helperStyle.Render("✕"))

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(accentColor(p.slide.Accent)).
		Padding(1, 3).
		Bold(true).
		Render(iconGlyph(p.slide.Icon))

	prevArrow := arrowStyle.Render("‹")
	if p.first {
		prevArrow = arrowOffStyle.Render("‹")
	}
	dots := carouselDots(p.step, p.dots)
	gap := inner - lipgloss.Width(dots) - 2
	left := max(gap/2, 1)
	right := max(gap-left, 1)
	navRow := prevArrow + strings.Repeat(" ", left) + dots + strings.Repeat(" ", right) + arrowStyle.Render("›")

	body := lipgloss.JoinVertical(lipgloss.Center,
		closeMark,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, icon),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, titleStyle.Render(p.slide.Title)),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, helperStyle.Render(wrap(p.slide.Body, inner-2))),
		"",
		navRow,
	)
	return staticView("\n" + renderCard(cardStyle.Copy().BorderForeground(accentColor(p.slide.Accent)), width, body))
}
