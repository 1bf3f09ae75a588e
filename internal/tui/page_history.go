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

type historyPage struct {
	entries []catalog.Reservation
	form    *form
	more    *field
	profile *field

	cards      map[string]string
	cacheWidth int
}

func newHistoryPage(nav navigator, keys keyMap, entries []catalog.Reservation) *historyPage {
	p := &historyPage{
		entries: entries,
		more:    newButtonField("Mais ▾", buttonGhost, nil),
		profile: newButtonField("Ver Perfil (Simulação) →", buttonGhost, goTo(nav, screen.Profile)),
	}
	p.form = newForm(keys, p.more, p.profile)
	return p
}

func (p *historyPage) mount() tea.Cmd { return p.form.reset() }

func (p *historyPage) capturesText() bool { return false }

func (p *historyPage) hints() []key.Binding { return p.form.hints() }

func (p *historyPage) update(msg tea.KeyMsg) tea.Cmd { return p.form.update(msg) }

func (p *historyPage) view(width int) displayView {
	cb := newContentBuilder()
	cb.Write(titleStyle.Render("Histórico de Reservas"), "")
	for _, entry := range p.entries {
		cb.Write(p.card(entry, width))
	}
	cb.Write("")
	p.form.writeFields(cb, width, p.more, p.profile)
	cb.Write("", geometricFooter(width))
	return cb.View()
}

// card returns the rendered card for entry, cached by reservation id until
// the width changes.
func (p *historyPage) card(entry catalog.Reservation, width int) string {
	if p.cards == nil || width != p.cacheWidth {
		p.cards = make(map[string]string, len(p.entries))
		p.cacheWidth = width
	}
	if entry.ID == "" {
		return reservationCard(entry, width)
	}
	if card, ok := p.cards[entry.ID]; ok {
		return card
	}
	card := reservationCard(entry, width)
	p.cards[entry.ID] = card
	return card
}

type statusStyles struct {
	badge lipgloss.Style
	text  lipgloss.Style
	fill  lipgloss.Style
	track lipgloss.Style
}

// stylesForStatus has an explicit default arm for statuses outside the
// known set.
func stylesForStatus(status catalog.Status) statusStyles {
	green := lipgloss.Color("#22c55e")
	switch status {
	case catalog.StatusPartial:
		return statusStyles{
			badge: lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")).Background(lipgloss.Color("#dcfce7")).Padding(0, 1),
			text:  lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")).Bold(true),
			fill:  lipgloss.NewStyle().Foreground(green),
			track: lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		}
	case catalog.StatusPaid:
		return statusStyles{
			badge: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(brandGreen).Padding(0, 1),
			text:  lipgloss.NewStyle().Foreground(brandGreen).Bold(true),
			fill:  lipgloss.NewStyle().Foreground(green),
			track: lipgloss.NewStyle().Foreground(green),
		}
	case catalog.StatusCancelled:
		return statusStyles{
			badge: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(darkColor).Padding(0, 1),
			text:  lipgloss.NewStyle().Foreground(mutedColor).Bold(true),
			fill:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
			track: lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")),
		}
	default:
		return statusStyles{
			badge: lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Background(lipgloss.Color("#f3f4f6")).Padding(0, 1),
			text:  lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Bold(true),
			fill:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
			track: lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")),
		}
	}
}

func reservationCard(entry catalog.Reservation, width int) string {
	inner := cardInner(cardStyle, width)
	styles := stylesForStatus(entry.Status)
	progress := entry.Progress()

	badge := styles.badge.Render(string(entry.Status))
	name := titleStyle.Render(entry.Name)
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(badge), 1)
	header := name + strings.Repeat(" ", gap) + badge

	meta := helperStyle.Render(fmt.Sprintf("▦ %s   ☺ %d membros", entry.Date, entry.Members))

	pct := styles.text.Render(fmt.Sprintf("%d%%", progress))
	amounts := helperStyle.Render(fmt.Sprintf("R$%s / R$%s", entry.Paid.Plain(), entry.Total.Plain()))
	gap = max(inner-lipgloss.Width(pct)-lipgloss.Width(amounts), 1)
	figures := pct + strings.Repeat(" ", gap) + amounts

	body := stack(
		header,
		meta,
		"",
		figures,
		progressBar(progress, inner, styles.fill, styles.track),
	)
	return renderCard(cardStyle, width, body)
}
