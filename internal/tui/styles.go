package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandBlue   = lipgloss.Color("#2563eb")
	brandIndigo = lipgloss.Color("#4f46e5")
	brandGreen  = lipgloss.Color("#16a34a")
	mutedColor  = lipgloss.Color("244")
	textColor   = lipgloss.Color("#e5e7eb")
	darkColor   = lipgloss.Color("#0f0f0f")
	dangerColor = lipgloss.Color("#dc2626")

	frameStyle         = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#111827")).Padding(0, 1)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	brandTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(brandBlue)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusBarStyle     = lipgloss.NewStyle().Foreground(darkColor).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#374151")).Padding(0, 1)
	accentCardStyle    = cardStyle.Copy().BorderForeground(brandBlue)
	linkStyle          = lipgloss.NewStyle().Foreground(brandBlue).Underline(true)
	focusedLinkStyle   = linkStyle.Copy().Background(lipgloss.Color("#bde0fe")).Foreground(darkColor)

	buttonSolidStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(brandBlue).Padding(0, 2)
	buttonOutlineStyle = lipgloss.NewStyle().Bold(true).Foreground(brandBlue).Border(lipgloss.NormalBorder()).BorderForeground(brandBlue).Padding(0, 2)
	buttonGhostStyle   = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 2)
	buttonFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(darkColor).Background(lipgloss.Color("#ffd166")).Padding(0, 2)

	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#4b5563")).Padding(0, 1)
	focusedFieldStyle = fieldStyle.Copy().BorderForeground(brandBlue)
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	slotStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4b5563")).Width(3).Align(lipgloss.Center).Bold(true)
	focusedSlotStyle = slotStyle.Copy().BorderForeground(brandBlue).Foreground(lipgloss.Color("#ffd166"))

	dotActiveStyle   = lipgloss.NewStyle().Foreground(brandBlue)
	dotInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563"))
	arrowStyle       = lipgloss.NewStyle().Foreground(brandBlue).Bold(true)
	arrowOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563"))

	footerBandStyle   = lipgloss.NewStyle().Foreground(brandBlue)
	footerAccentStyle = lipgloss.NewStyle().Foreground(brandIndigo)
	headerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(brandIndigo).Padding(1, 2).Bold(true)
	avatarStyle       = lipgloss.NewStyle().Foreground(darkColor).Background(lipgloss.Color("#e5e7eb")).Bold(true).Padding(0, 1)

	paidAmountStyle    = lipgloss.NewStyle().Foreground(brandGreen).Bold(true)
	pendingAmountStyle = lipgloss.NewStyle().Foreground(dangerColor).Bold(true)
	priceStyle         = lipgloss.NewStyle().Bold(true).Foreground(textColor)
)

// accentColor maps the catalog's accent names onto terminal colors.
func accentColor(name string) lipgloss.Color {
	switch name {
	case "green":
		return brandGreen
	case "blue":
		return brandBlue
	case "indigo":
		return brandIndigo
	default:
		return mutedColor
	}
}

func badgeStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accentColor(accent)).Padding(0, 1).Bold(true)
}

func iconGlyph(name string) string {
	switch name {
	case "search":
		return "⌕"
	case "calendar":
		return "▦"
	default:
		return "●"
	}
}
