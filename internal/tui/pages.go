package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

// navigator switches the active screen. Pages only ever see this interface,
// never the router itself.
type navigator interface {
	GoTo(target screen.ID) tea.Cmd
}

// page renders one screen and handles its keys. mount runs every time the
// screen becomes active and resets all page-local state. view reports where
// the focused control was drawn so the viewport can follow it.
type page interface {
	mount() tea.Cmd
	update(msg tea.KeyMsg) tea.Cmd
	view(width int) displayView
	capturesText() bool
	hints() []key.Binding
}

func buildPages(cat *catalog.Catalog, nav navigator, keys keyMap) map[screen.ID]page {
	pages := map[screen.ID]page{
		screen.OnboardingStep1:   newOnboardingPage(nav, keys, cat, 0),
		screen.OnboardingStep2:   newOnboardingPage(nav, keys, cat, 1),
		screen.Login:             newLoginPage(nav, keys, cat.Login),
		screen.EmailVerification: newVerifyPage(nav, keys, cat.Verification),
		screen.Search:            newSearchPage(nav, keys, cat.Search, cat.Courts),
		screen.History:           newHistoryPage(nav, keys, cat.History),
		screen.Profile:           newProfilePage(nav, keys, cat.Profile),
	}
	return pages
}

// goTo builds a button action that navigates to target.
func goTo(nav navigator, target screen.ID) func() tea.Cmd {
	return func() tea.Cmd {
		return nav.GoTo(target)
	}
}
