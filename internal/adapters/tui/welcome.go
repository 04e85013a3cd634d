package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/catalog"
)

// updateWelcome handles keys on the first-run welcome screen.
func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	features := catalog.WelcomeFeatures()
	switch msg.String() {
	case "up", "k":
		if m.welcomeCursor > 0 {
			m.welcomeCursor--
		}
	case "down", "j":
		if m.welcomeCursor < len(features)-1 {
			m.welcomeCursor++
		}
	case "q":
		return m, tea.Quit
	case "enter", "s":
		m.showWelcome = false
	}
	return m, nil
}

func (m Model) viewWelcome() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorAccent))
	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	dimStyle := m.helpStyle()

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Vital", m.theme.IconApp)))
	sections = append(sections, dimStyle.Render("Your personal wellness coach"))
	sections = append(sections, "")

	for i, f := range catalog.WelcomeFeatures() {
		if i == m.welcomeCursor {
			sections = append(sections, headStyle.Render("▸ "+f.Title))
			sections = append(sections, dimStyle.Render("  "+f.Description))
		} else {
			sections = append(sections, dimStyle.Render("  "+f.Title))
		}
	}

	sections = append(sections, "")
	sections = append(sections, dimStyle.Render("[enter] get started  [q]uit"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
