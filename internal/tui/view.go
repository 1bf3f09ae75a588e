package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View only reads state; the viewport content is refreshed in Update.
func (m *model) View() string {
	frame := frameStyle.Copy().Width(m.layout.bodyWidth + frameStyle.GetHorizontalPadding()).Render(m.viewport.View())
	return joinNonEmpty([]string{
		lipgloss.PlaceHorizontal(m.layout.windowWidth, lipgloss.Center, frame),
		m.statusView(),
		m.helpView(),
	})
}

func (m *model) statusView() string {
	stats := []string{"courtside", m.router.Current().String()}
	if m.catalogSource != "" {
		stats = append(stats, "catalog "+m.catalogSource)
	}
	if m.lastJob.Status == jobStatusRunning {
		stats = append(stats, fmt.Sprintf("%s %s…", m.spinner.View(), m.lastJob.Kind))
	}
	line := statusBarStyle.Render(strings.Join(stats, "  •  "))
	if m.errorMessage != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", errorStyle.Render(m.errorMessage))
	}
	return line
}

func (m *model) helpView() string {
	global := []key.Binding{m.keys.PageDown, m.keys.Help, m.keys.Quit}
	if m.stage != stageReady {
		return m.help.View(pageHelp{global: []key.Binding{m.keys.Quit}})
	}
	return m.help.View(pageHelp{page: m.current().hints(), global: global})
}
