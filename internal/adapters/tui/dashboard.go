package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// updateDashboard handles keys on the dashboard hub.
func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "w":
		m.planCursor = 0
		m.workoutDone = false
		m.router.Goto(domain.ViewWorkout)
	case "n":
		m.recipeCursor = 0
		m.filter = newFilterState()
		m.router.Goto(domain.ViewNutrition)
	case "d":
		m.deviceCursor = 0
		m.router.Goto(domain.ViewDevices)
	case "p":
		m.profileCursor = 0
		m.editForm = nil
		m.router.Goto(domain.ViewProfile)
	case "r":
		m.report = m.workouts.LastReport()
		m.router.Goto(domain.ViewReport)
	case "c":
		m.overlay = overlayCoachInput
		m.coach.input.Reset()
		m.coach.input.Focus()
		return m, m.coach.input.Cursor.BlinkCmd()
	case "v":
		m.overlay = overlayListening
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	help := m.helpStyle()
	accent := m.accentStyle()
	value := m.valueStyle()

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewDashboard)))

	if p := m.profiles.Profile(); p != nil {
		greeting := fmt.Sprintf("Readiness: %s", m.readiness)
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ReadinessColor(string(m.readiness))))
		sections = append(sections, style.Render(greeting))
	}
	sections = append(sections, "")

	if s := m.snapshot; s != nil {
		sleep := domain.ClassifySleep(s.SleepHours)
		steps := domain.StepsProgress(s.Steps, m.goals.StepTarget)

		sections = append(sections, value.Render(fmt.Sprintf("%s %d bpm current   %d bpm resting   HRV %d ms",
			m.theme.IconHeart, s.CurrentHeartRate(), s.RestingHeartRate, s.HRV)))
		sections = append(sections, value.Render(fmt.Sprintf("%s %.1fh sleep (%s)   score %d   recovery %d%%",
			m.theme.IconSleep, s.SleepHours, domain.GetSleepQualityLabel(sleep), s.SleepScore, s.RecoveryScore)))
		sections = append(sections, value.Render(fmt.Sprintf("%s %d steps (%.0f%% of %d)   %d kcal   %d active min",
			m.theme.IconActive, s.Steps, steps, m.goals.StepTarget, s.CaloriesBurned, s.ActiveMinutes)))
		sections = append(sections, "")
		sections = append(sections, m.progress.ViewAs(steps/100))
		sections = append(sections, "")
	}

	sections = append(sections, accent.Render("Today's workout: "+catalog.TodayWorkout))
	sections = append(sections, help.Render(catalog.WorkoutInsight))
	sections = append(sections, "")

	if bmi, ok := m.profileBMI(); ok {
		cat := domain.ClassifyBMI(bmi)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BMIColor(string(cat))))
		sections = append(sections, style.Render(fmt.Sprintf("BMI %.1f — %s", bmi, domain.GetBMICategoryLabel(cat))))
	}

	for _, d := range m.devices {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SyncStatusColor(string(d.Status))))
		sections = append(sections, help.Render(fmt.Sprintf("%s %s  ", m.theme.IconWatch, d.Name))+
			style.Render(domain.GetSyncStatusLabel(d.Status))+
			help.Render("  "+domain.FormatTimeSince(d.LastSyncAt, m.now)))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("Supplement picks:"))
	for _, s := range catalog.Supplements() {
		sections = append(sections, help.Render(fmt.Sprintf("  %s — %s (%s)", s.Name, s.Description, s.Price)))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[w]orkouts  [n]utrition  [d]evices  [p]rofile  [r]eport  [c]oach  [v]oice  [q]uit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) profileBMI() (float64, bool) {
	p := m.profiles.Profile()
	if p == nil {
		return 0, false
	}
	return p.BMI()
}
