package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// updateReport handles keys in the workout report view.
func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "enter":
		return m.goBack()
	}
	return m, nil
}

func (m Model) viewReport() string {
	help := m.helpStyle()
	accent := m.accentStyle()
	value := m.valueStyle()

	r := m.report
	if r == nil {
		r = m.workouts.LastReport()
	}

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewReport)))
	sections = append(sections, value.Render(fmt.Sprintf("%s — %s   %s   %d kcal",
		r.PlanName, r.Date, r.Duration, r.CaloriesBurned)))
	if r.HeartRateAvg > 0 {
		sections = append(sections, help.Render(fmt.Sprintf("%s avg %d bpm / max %d bpm",
			m.theme.IconHeart, r.HeartRateAvg, r.HeartRateMax)))
	}
	sections = append(sections, "")

	sections = append(sections, accent.Render(fmt.Sprintf("Completion %d%%   Performance %d/100",
		r.CompletionRate(), r.OverallPerformance)))
	sections = append(sections, m.progress.ViewAs(float64(r.CompletionRate())/100))
	sections = append(sections, "")

	done := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSyncSynced))
	missed := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSyncError))
	for _, ex := range r.Exercises {
		line := fmt.Sprintf("%-18s %d × %-8s %s", ex.Name, ex.Sets, ex.Reps, ex.Weight)
		if ex.Completed {
			sections = append(sections, done.Render("  "+m.theme.IconDone+" ")+help.Render(line))
		} else {
			sections = append(sections, missed.Render("  ✗ ")+help.Render(line))
		}
	}

	if len(r.FocusAreas) > 0 {
		sections = append(sections, "")
		sections = append(sections, accent.Render("Focus areas"))
		for _, f := range r.FocusAreas {
			sections = append(sections, value.Render(fmt.Sprintf("  %s (%s priority)", f.Area, f.Priority)))
			sections = append(sections, help.Render("    "+f.Recommendation))
		}
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[esc] dashboard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
