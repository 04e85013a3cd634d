package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// updateWorkout handles keys in the workout view, branching on the
// nested plan-select / active-session state.
func (m Model) updateWorkout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.router.WorkoutSub() == domain.WorkoutActiveSession {
		return m.updateActiveSession(msg)
	}

	plans := m.workouts.Plans()
	switch msg.String() {
	case "esc", "b":
		return m.goBack()
	case "up", "k":
		if m.planCursor > 0 {
			m.planCursor--
		}
	case "down", "j":
		if m.planCursor < len(plans)-1 {
			m.planCursor++
		}
	case "enter", "s":
		if _, err := m.workouts.StartSession(plans[m.planCursor].ID); err != nil {
			m.statusLine = err.Error()
			return m, nil
		}
		m.exerciseCursor = 0
		m.workoutDone = false
		m.router.SetWorkoutSub(domain.WorkoutActiveSession)
	}
	return m, nil
}

func (m Model) updateActiveSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.workouts.ActiveSession()
	if session == nil {
		m.router.SetWorkoutSub(domain.WorkoutPlanSelect)
		return m, nil
	}

	switch msg.String() {
	case "esc", "b":
		return m.goBack()
	case "up", "k":
		if m.exerciseCursor > 0 {
			m.exerciseCursor--
		}
	case "down", "j":
		if m.exerciseCursor < len(session.Plan.Exercises)-1 {
			m.exerciseCursor++
		}
	case " ", "enter", "x":
		ex := session.Plan.Exercises[m.exerciseCursor]
		_, _ = m.workouts.CompleteExercise(ex.ID)
		if session.IsComplete() && !m.workoutDone {
			m.workoutDone = true
			if m.onWorkoutComplete != nil {
				m.onWorkoutComplete(session.Plan.Name)
			}
		}
	case "f":
		report, err := m.workouts.FinishSession()
		if err != nil {
			m.statusLine = "finish every exercise first"
			return m, nil
		}
		m.report = report
		m.workoutDone = false
		m.router.Goto(domain.ViewReport)
	}
	return m, nil
}

func (m Model) viewWorkout() string {
	if m.router.WorkoutSub() == domain.WorkoutActiveSession {
		return m.viewActiveSession()
	}

	help := m.helpStyle()
	accent := m.accentStyle()

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewWorkout)))
	sections = append(sections, help.Render(catalog.WorkoutInsight))
	sections = append(sections, "")

	for i, p := range m.workouts.Plans() {
		diffStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.DifficultyColor(string(p.Difficulty))))
		line := fmt.Sprintf("%-22s %3d min  %-18s ", p.Name, p.DurationMinutes, p.TargetZone)
		if i == m.planCursor {
			sections = append(sections, accent.Render("▸ "+line)+diffStyle.Render(domain.GetDifficultyLabel(p.Difficulty)))
			sections = append(sections, help.Render("    "+p.Insight))
		} else {
			sections = append(sections, help.Render("  "+line)+diffStyle.Render(domain.GetDifficultyLabel(p.Difficulty)))
		}
	}

	sections = append(sections, "")
	if m.statusLine != "" {
		sections = append(sections, help.Render(m.statusLine))
	}
	sections = append(sections, help.Render("↑/↓ select  [enter] start  [esc] dashboard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewActiveSession() string {
	session := m.workouts.ActiveSession()
	if session == nil {
		return ""
	}

	help := m.helpStyle()
	accent := m.accentStyle()
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSyncSynced))

	var sections []string
	sections = append(sections, m.titleLine(session.Plan.Name))
	sections = append(sections, help.Render(fmt.Sprintf("Elapsed %s   %d/%d exercises",
		formatElapsed(session.Elapsed()), session.CompletedCount(), len(session.Plan.Exercises))))
	sections = append(sections, m.progress.ViewAs(float64(session.Progress())/100))
	sections = append(sections, "")

	for i, ex := range session.Plan.Exercises {
		check := "[ ]"
		style := help
		if ex.Completed {
			check = "[" + m.theme.IconDone + "]"
			style = done
		}
		line := fmt.Sprintf("%s %-18s %d × %-14s rest %ds", check, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds)
		if i == m.exerciseCursor {
			sections = append(sections, accent.Render("▸ "+line))
		} else {
			sections = append(sections, style.Render("  "+line))
		}
	}

	sections = append(sections, "")
	if session.IsComplete() {
		banner := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorSyncSynced))
		sections = append(sections, banner.Render("Workout complete! 💪"))
		sections = append(sections, help.Render("[f] view report  [esc] dashboard"))
	} else {
		if m.statusLine != "" {
			sections = append(sections, help.Render(m.statusLine))
		}
		sections = append(sections, help.Render("↑/↓ move  [space] complete  [esc] abandon"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
