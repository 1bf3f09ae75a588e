package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

// loginPage collects a user name and password that are never checked.
// "Login" goes straight to the profile, "Cadastrar" to email verification.
type loginPage struct {
	copy     catalog.LoginCopy
	form     *form
	user     *field
	password *field
	forgot   *field
	login    *field
	register *field
}

func newLoginPage(nav navigator, keys keyMap, labels catalog.LoginCopy) *loginPage {
	p := &loginPage{
		copy:     labels,
		user:     newInputField("Usuário", labels.UserPlaceholder, false),
		password: newInputField("Senha", labels.PasswordPlaceholder, true),
		forgot:   newLinkField(labels.ForgotPassword),
		login:    newButtonField("Login", buttonOutline, goTo(nav, screen.Profile)),
		register: newButtonField("Cadastrar", buttonSolid, goTo(nav, screen.EmailVerification)),
	}
	p.form = newForm(keys, p.user, p.password, p.forgot, p.login, p.register)
	return p
}

func (p *loginPage) mount() tea.Cmd { return p.form.reset() }

func (p *loginPage) capturesText() bool { return p.form.capturesText() }

func (p *loginPage) hints() []key.Binding { return p.form.hints() }

func (p *loginPage) update(msg tea.KeyMsg) tea.Cmd { return p.form.update(msg) }

func (p *loginPage) view(width int) displayView {
	greeting := lipgloss.PlaceHorizontal(width, lipgloss.Center, brandTitleStyle.Render(p.copy.Greeting))
	cb := newContentBuilder()
	cb.Write("", greeting, "")
	p.form.writeFields(cb, width, p.user, p.password, p.forgot)
	cb.Write("")
	p.form.writeFields(cb, width, p.login, p.register)
	cb.Write("", geometricFooter(width))
	return cb.View()
}
