package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/courtside/internal/catalog"
	"github.com/csheth/courtside/internal/screen"
)

// searchPage lists the sample courts. Filters and the name field are
// presentational: the listing never changes.
type searchPage struct {
	copy    catalog.SearchCopy
	courts  []catalog.Court
	form    *form
	state   *field
	city    *field
	kind    *field
	name    *field
	reserve map[string]*field
	history *field
}

func newSearchPage(nav navigator, keys keyMap, labels catalog.SearchCopy, courts []catalog.Court) *searchPage {
	p := &searchPage{
		copy:    labels,
		courts:  courts,
		state:   newSelectField("Estado", labels.States),
		city:    newSelectField("Cidade", labels.Cities),
		kind:    newSelectField("Tipo de Quadra", labels.CourtTypes),
		name:    newInputField("Nome", labels.NamePlaceholder, false),
		reserve: make(map[string]*field, len(courts)),
		history: newButtonField("Ver Histórico (Simulação) →", buttonGhost, goTo(nav, screen.History)),
	}
	fields := []*field{p.state, p.city, p.kind, p.name}
	for _, court := range courts {
		button := newButtonField("Reservar", buttonSolid, logReserve(court))
		p.reserve[court.ID] = button
		fields = append(fields, button)
	}
	fields = append(fields, p.history)
	p.form = newForm(keys, fields...)
	return p
}

// logReserve records the press; booking is not simulated.
func logReserve(court catalog.Court) func() tea.Cmd {
	return func() tea.Cmd {
		log.Printf("[search] reserve %s (%s)", court.ID, court.Name)
		return nil
	}
}

func (p *searchPage) mount() tea.Cmd { return p.form.reset() }

func (p *searchPage) capturesText() bool { return p.form.capturesText() }

func (p *searchPage) hints() []key.Binding { return p.form.hints() }

func (p *searchPage) update(msg tea.KeyMsg) tea.Cmd { return p.form.update(msg) }

func (p *searchPage) view(width int) displayView {
	half := (width - 1) / 2
	cb := newContentBuilder()
	cb.Write(
		titleStyle.Render(p.copy.Title),
		helperStyle.Render(p.copy.Subtitle),
		"",
	)
	pair := p.form.isFocused(p.state) || p.form.isFocused(p.city)
	cb.WriteFocus(lipgloss.JoinHorizontal(lipgloss.Top,
		p.state.render(half, p.form.isFocused(p.state)),
		" ",
		p.city.render(width-half-1, p.form.isFocused(p.city)),
	), pair)
	p.form.writeFields(cb, width, p.kind, p.name)
	cb.Write(
		"",
		helperStyle.Render(fmt.Sprintf("Foram encontradas %d quadras", len(p.courts))),
	)
	for _, court := range p.courts {
		button := p.reserve[court.ID]
		cb.WriteFocus(p.courtCard(court, button, width), p.form.isFocused(button))
	}
	inner := width - 2
	cb.Write(
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, helperStyle.Copy().Bold(true).Render(wrap(p.copy.FooterTitle, inner))),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, helperStyle.Render(wrap(p.copy.FooterBody, inner))),
		"",
	)
	p.form.writeFields(cb, width, p.history)
	return cb.View()
}

func (p *searchPage) courtCard(court catalog.Court, reserve *field, width int) string {
	inner := cardInner(cardStyle, width)
	badge := badgeStyle(court.Accent).Render(court.Type)
	banner := lipgloss.NewStyle().
		Background(accentColor(court.Accent)).
		Width(inner).
		Render(lipgloss.PlaceHorizontal(inner, lipgloss.Right, badge))

	amenities := make([]string, 0, len(court.Amenities))
	for _, amenity := range court.Amenities {
		amenities = append(amenities, "▪ "+amenity)
	}

	price := priceStyle.Render(court.PricePerHour.String()) + helperStyle.Render(" / hora")
	button := reserve.render(0, p.form.isFocused(reserve))
	gap := max(inner-lipgloss.Width(price)-lipgloss.Width(button), 1)
	priceRow := lipgloss.JoinHorizontal(lipgloss.Center, price, strings.Repeat(" ", gap), button)

	body := stack(
		banner,
		titleStyle.Render(court.Name),
		helperStyle.Render("⌖ "+wrap(court.Location, inner-2)),
		helperStyle.Render(strings.Join(amenities, "   ")),
		helperStyle.Render(strings.Repeat("─", inner)),
		priceRow,
	)
	return renderCard(cardStyle, width, body)
}
