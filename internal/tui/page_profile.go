package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

type profilePage struct {
	profile catalog.Profile
	form    *form
	active  *field
	search  *field
	restart *field
}

func newProfilePage(nav navigator, keys keyMap, profile catalog.Profile) *profilePage {
	p := &profilePage{
		profile: profile,
		active:  newSelectField("Reservas Ativas", profile.ActiveReservations),
		search:  newButtonField("Buscar Quadras (Simulação)", buttonOutline, goTo(nav, screen.Search)),
		restart: newButtonField("Voltar ao Onboarding", buttonGhost, goTo(nav, screen.OnboardingStep1)),
	}
	p.form = newForm(keys, p.active, p.search, p.restart)
	return p
}

func (p *profilePage) mount() tea.Cmd { return p.form.reset() }

func (p *profilePage) capturesText() bool { return false }

func (p *profilePage) hints() []key.Binding { return p.form.hints() }

func (p *profilePage) update(msg tea.KeyMsg) tea.Cmd { return p.form.update(msg) }

func (p *profilePage) view(width int) displayView {
	cb := newContentBuilder()
	cb.Write(
		p.header(width),
		"",
		p.messageCard(width),
		"",
		titleStyle.Render("Minhas Reservas"),
		helperStyle.Render(p.profile.Upcoming),
		p.reservationCard(width),
		"",
	)
	p.form.writeFields(cb, width, p.active)
	cb.Write("")
	p.form.writeFields(cb, width, p.search, p.restart)
	cb.Write("", geometricFooter(width))
	return cb.View()
}

func (p *profilePage) header(width int) string {
	initial := "?"
	if name := strings.TrimSpace(p.profile.UserName); name != "" {
		initial = string([]rune(name)[:1])
	}
	inner := width - headerStyle.GetHorizontalPadding()
	avatar := avatarStyle.Render(initial)
	menu := "≡"
	gap := max(inner-lipgloss.Width(avatar)-lipgloss.Width(menu), 1)
	top := avatar + strings.Repeat(" ", gap) + menu
	greeting := fmt.Sprintf("Seja bem-vindo, %s!", p.profile.UserName)
	return headerStyle.Copy().Width(width).Render(stack(top, "", greeting))
}

func (p *profilePage) messageCard(width int) string {
	inner := cardInner(cardStyle, width)
	msg := p.profile.Message
	body := stack(
		helperStyle.Copy().Bold(true).Render(fmt.Sprintf("%s mandou uma mensagem", msg.From)),
		wrap(fmt.Sprintf("“%s”", msg.Text), inner),
	)
	return renderCard(cardStyle, width, body)
}

func (p *profilePage) reservationCard(width int) string {
	inner := cardInner(cardStyle, width)
	res := p.profile.Reservation
	half := inner / 2

	paid := lipgloss.JoinVertical(lipgloss.Center,
		helperStyle.Render("Total Pago"),
		paidAmountStyle.Render(res.Paid.String()),
	)
	receivable := lipgloss.JoinVertical(lipgloss.Center,
		helperStyle.Render("A Receber"),
		pendingAmountStyle.Render(res.Receivable.String()),
	)
	figures := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(half, lipgloss.Center, paid),
		lipgloss.PlaceHorizontal(inner-half, lipgloss.Center, receivable),
	)

	meta := helperStyle.Render(fmt.Sprintf("▦ %s   ☺ %d membros", res.When, res.Members))
	avatars := make([]string, 0, len(res.MemberInitials))
	for _, initial := range res.MemberInitials {
		avatars = append(avatars, avatarStyle.Render(initial))
	}
	members := strings.Join(avatars, "")
	gap := max(inner-lipgloss.Width(meta)-lipgloss.Width(members), 1)

	body := stack(
		titleStyle.Render(res.Court),
		"",
		figures,
		helperStyle.Render(strings.Repeat("─", inner)),
		meta+strings.Repeat(" ", gap)+members,
	)
	return renderCard(accentCardStyle, width, body)
}
