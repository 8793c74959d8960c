package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.theme.Border.Width(m.viewport.Width).Render(m.viewport.View()),
		m.renderInput(),
	}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	status := fmt.Sprintf("%d requests", m.requests)
	if m.requests == 1 {
		status = "1 request"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("Amazing Numbers"),
		"  ",
		m.theme.StatusBar.Render(status),
	)
}

func (m Model) renderInput() string {
	if m.busy {
		return m.spinner.View() + " " + m.theme.Busy.Render(fmt.Sprintf("Working on %q, Esc to stop", m.pending))
	}
	return m.input.View()
}
