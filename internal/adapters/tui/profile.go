package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// editState backs the profile edit form. It works on an editable copy
// and only lands on the stored profile on explicit save.
type editState struct {
	draft  *domain.OnboardingProfile
	inputs []textinput.Model // weight, goal weight, days per week
	focus  int
}

var editLabels = []string{"Current weight (kg)", "Goal weight (kg)", "Workout days/week"}

func newEditState(draft *domain.OnboardingProfile) *editState {
	inputs := make([]textinput.Model, len(editLabels))
	seed := []string{
		strconv.FormatFloat(draft.CurrentWeightKg, 'f', -1, 64),
		strconv.FormatFloat(draft.GoalWeightKg, 'f', -1, 64),
		strconv.Itoa(draft.WorkoutDaysPerWeek),
	}
	for i, l := range editLabels {
		ti := textinput.New()
		ti.Placeholder = l
		ti.CharLimit = 6
		ti.Width = 10
		ti.SetValue(seed[i])
		inputs[i] = ti
	}
	inputs[0].Focus()
	return &editState{draft: draft, inputs: inputs}
}

// apply parses the form back into the draft. Invalid numbers keep the
// previous value.
func (e *editState) apply() {
	if v, err := strconv.ParseFloat(strings.TrimSpace(e.inputs[0].Value()), 64); err == nil && v > 0 {
		e.draft.CurrentWeightKg = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(e.inputs[1].Value()), 64); err == nil && v > 0 {
		e.draft.GoalWeightKg = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(e.inputs[2].Value())); err == nil && v >= 1 && v <= 7 {
		e.draft.WorkoutDaysPerWeek = v
	}
}

// updateProfile handles keys in the profile view.
func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.router.ProfileSub() {
	case domain.ProfileEdit:
		return m.updateProfileEdit(msg)
	case domain.ProfileGoals:
		switch msg.String() {
		case "esc", "b":
			m.router.SetProfileSub(domain.ProfileOverview)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "b":
		return m.goBack()
	case "e":
		draft, err := m.profiles.EditableCopy()
		if err != nil {
			return m, nil
		}
		m.editForm = newEditState(draft)
		m.router.SetProfileSub(domain.ProfileEdit)
	case "g":
		m.router.SetProfileSub(domain.ProfileGoals)
	}
	return m, nil
}

func (m Model) updateProfileEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editForm
	if e == nil {
		m.router.SetProfileSub(domain.ProfileOverview)
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Abandon the draft entirely.
		m.editForm = nil
		m.router.SetProfileSub(domain.ProfileOverview)
		return m, nil
	case "enter":
		e.apply()
		_ = m.profiles.ApplyEdit(e.draft)
		m.editForm = nil
		m.router.SetProfileSub(domain.ProfileOverview)
		return m, nil
	case "up", "shift+tab":
		if e.focus > 0 {
			e.inputs[e.focus].Blur()
			e.focus--
			e.inputs[e.focus].Focus()
		}
		return m, nil
	case "down", "tab":
		if e.focus < len(e.inputs)-1 {
			e.inputs[e.focus].Blur()
			e.focus++
			e.inputs[e.focus].Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return m, cmd
}

func (m Model) viewProfile() string {
	switch m.router.ProfileSub() {
	case domain.ProfileEdit:
		return m.viewProfileEdit()
	case domain.ProfileGoals:
		return m.viewProfileGoals()
	}

	help := m.helpStyle()
	value := m.valueStyle()
	p := m.profiles.Profile()
	if p == nil {
		return m.titleLine(domain.GetViewTitle(domain.ViewProfile))
	}

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewProfile)))
	sections = append(sections, value.Render(fmt.Sprintf("Age %d   %s   %.0f cm",
		p.Age, domain.GetGenderLabel(p.Gender), p.HeightCm)))
	sections = append(sections, value.Render(fmt.Sprintf("Weight %.1f kg → goal %.1f kg", p.CurrentWeightKg, p.GoalWeightKg)))

	if bmi, ok := p.BMI(); ok {
		cat := domain.ClassifyBMI(bmi)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BMIColor(string(cat))))
		line := fmt.Sprintf("BMI %.1f — %s", bmi, domain.GetBMICategoryLabel(cat))
		if goal, ok := p.GoalBMI(); ok {
			line += fmt.Sprintf("   goal %.1f — %s", goal, domain.GetBMICategoryLabel(domain.ClassifyBMI(goal)))
		}
		sections = append(sections, style.Render(line))
	}

	sections = append(sections, "")
	sections = append(sections, value.Render(fmt.Sprintf("%s · %d days/week",
		domain.GetExperienceLabel(p.Experience), p.WorkoutDaysPerWeek)))
	sections = append(sections, help.Render("Prefers: "+strings.Join(p.PreferredWorkoutTypes, ", ")))
	sections = append(sections, help.Render("Goals: "+strings.Join(p.FitnessGoals, ", ")))
	if p.HealthNotes != "" {
		sections = append(sections, help.Render("Notes: "+p.HealthNotes))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[e]dit  [g]oals  [esc] dashboard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewProfileEdit() string {
	help := m.helpStyle()
	accent := m.accentStyle()
	e := m.editForm
	if e == nil {
		return ""
	}

	var sections []string
	sections = append(sections, m.titleLine("Edit Profile"))
	for i, ti := range e.inputs {
		marker := "  "
		if i == e.focus {
			marker = accent.Render("▸ ")
		}
		sections = append(sections, fmt.Sprintf("%s%-22s %s", marker, editLabels[i], ti.View()))
	}
	sections = append(sections, "")
	sections = append(sections, help.Render("↑/↓ move  [enter] save  [esc] discard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewProfileGoals() string {
	help := m.helpStyle()
	value := m.valueStyle()

	var sections []string
	sections = append(sections, m.titleLine("Daily Goals"))
	sections = append(sections, value.Render(fmt.Sprintf("Steps            %d", m.goals.StepTarget)))
	sections = append(sections, value.Render(fmt.Sprintf("Calories         %d kcal", m.goals.CalorieTarget)))
	sections = append(sections, value.Render(fmt.Sprintf("Sleep            %.1f h", m.goals.SleepHoursTarget)))
	sections = append(sections, value.Render(fmt.Sprintf("Active minutes   %d", m.goals.ActiveMinutesGoal)))
	sections = append(sections, "")
	sections = append(sections, help.Render("Adjust in ~/.vital/config.toml"))
	sections = append(sections, help.Render("[esc] back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
