package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// Field order within the personal-info step. The gender row sits
// between age and height and is cycled rather than typed.
const (
	fieldAge = iota
	fieldGender
	fieldHeight
	fieldCurrentWeight
	fieldGoalWeight
	personalFieldCount
)

var genderOptions = []domain.Gender{
	domain.GenderMale,
	domain.GenderFemale,
	domain.GenderOther,
	domain.GenderUndisclosed,
}

var experienceOptions = []domain.ExperienceLevel{
	domain.ExperienceBeginner,
	domain.ExperienceIntermediate,
	domain.ExperienceAdvanced,
}

// intakeState holds the input widgets backing the intake wizard.
type intakeState struct {
	inputs     []textinput.Model // age, height, current weight, goal weight
	notesInput textinput.Model
	focus      int
	genderIdx  int
	expIdx     int
	listFocus  int // 0 = workout types, 1 = fitness goals
	typeCursor int
	goalCursor int
}

func newIntakeState() intakeState {
	labels := []string{"Age", "Height (cm)", "Current weight (kg)", "Goal weight (kg)"}
	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l
		ti.CharLimit = 6
		ti.Width = 12
		inputs[i] = ti
	}
	inputs[0].Focus()

	notes := textinput.New()
	notes.Placeholder = "Injuries, conditions, medications (optional)"
	notes.CharLimit = 200
	notes.Width = 50

	return intakeState{
		inputs:     inputs,
		notesInput: notes,
		genderIdx:  -1,
		expIdx:     -1,
	}
}

// textInputFor maps a personal-info field index onto its widget slot,
// skipping the gender row.
func (s *intakeState) textInputFor(field int) *textinput.Model {
	switch field {
	case fieldAge:
		return &s.inputs[0]
	case fieldHeight:
		return &s.inputs[1]
	case fieldCurrentWeight:
		return &s.inputs[2]
	case fieldGoalWeight:
		return &s.inputs[3]
	}
	return nil
}

// syncPersonalInfo pushes the parsed input values into the wizard.
// Unparseable text simply leaves the field unset, which keeps the
// advance gate closed.
func (m *Model) syncPersonalInfo() {
	if age, err := strconv.Atoi(strings.TrimSpace(m.intake.inputs[0].Value())); err == nil {
		m.wizard.SetAge(age)
	} else {
		m.wizard.SetAge(0)
	}
	m.wizard.SetHeight(parseFloatField(m.intake.inputs[1].Value()))
	m.wizard.SetCurrentWeight(parseFloatField(m.intake.inputs[2].Value()))
	m.wizard.SetGoalWeight(parseFloatField(m.intake.inputs[3].Value()))
}

func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// updateIntake handles keys while the intake wizard is active.
func (m Model) updateIntake(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		profile, err := m.wizard.Next()
		if err != nil {
			return m, nil
		}
		if profile != nil {
			m.profiles.SetProfile(profile)
			m.router = domain.NewRouter()
			return m, nil
		}
		m.refocusIntake()
		return m, nil
	case "esc":
		m.wizard.Back()
		m.refocusIntake()
		return m, nil
	}

	switch m.wizard.Step() {
	case domain.StepPersonalInfo:
		return m.updatePersonalInfo(msg)
	case domain.StepFitnessProfile:
		return m.updateFitnessProfile(msg)
	case domain.StepPreferences:
		return m.updatePreferences(msg)
	case domain.StepHealthNotes:
		return m.updateHealthNotes(msg)
	}
	return m, nil
}

// refocusIntake restores widget focus after a step change.
func (m *Model) refocusIntake() {
	for i := range m.intake.inputs {
		m.intake.inputs[i].Blur()
	}
	m.intake.notesInput.Blur()

	switch m.wizard.Step() {
	case domain.StepPersonalInfo:
		if ti := m.intake.textInputFor(m.intake.focus); ti != nil {
			ti.Focus()
		}
	case domain.StepHealthNotes:
		m.intake.notesInput.Focus()
	}
}

func (m Model) updatePersonalInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.intake
	switch msg.String() {
	case "up", "shift+tab":
		if s.focus > 0 {
			s.focus--
		}
		m.refocusIntake()
		return m, nil
	case "down", "tab":
		if s.focus < personalFieldCount-1 {
			s.focus++
		}
		m.refocusIntake()
		return m, nil
	case "left", "right":
		if s.focus == fieldGender {
			if msg.String() == "left" {
				s.genderIdx--
			} else {
				s.genderIdx++
			}
			if s.genderIdx < 0 {
				s.genderIdx = len(genderOptions) - 1
			}
			if s.genderIdx >= len(genderOptions) {
				s.genderIdx = 0
			}
			m.wizard.SetGender(genderOptions[s.genderIdx])
			return m, nil
		}
	}

	if ti := s.textInputFor(s.focus); ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		m.syncPersonalInfo()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateFitnessProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.intake
	switch msg.String() {
	case "left", "h":
		if s.expIdx <= 0 {
			s.expIdx = len(experienceOptions) - 1
		} else {
			s.expIdx--
		}
		m.wizard.SetExperience(experienceOptions[s.expIdx])
	case "right", "l":
		s.expIdx = (s.expIdx + 1) % len(experienceOptions)
		m.wizard.SetExperience(experienceOptions[s.expIdx])
	case "1", "2", "3", "4", "5", "6", "7":
		days := int(msg.String()[0] - '0')
		m.wizard.SetWorkoutDays(days)
	}
	return m, nil
}

func (m Model) updatePreferences(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.intake
	types := catalog.WorkoutTypeOptions()
	goals := catalog.FitnessGoalOptions()

	switch msg.String() {
	case "tab":
		s.listFocus = 1 - s.listFocus
	case "up", "k":
		if s.listFocus == 0 && s.typeCursor > 0 {
			s.typeCursor--
		} else if s.listFocus == 1 && s.goalCursor > 0 {
			s.goalCursor--
		}
	case "down", "j":
		if s.listFocus == 0 && s.typeCursor < len(types)-1 {
			s.typeCursor++
		} else if s.listFocus == 1 && s.goalCursor < len(goals)-1 {
			s.goalCursor++
		}
	case " ", "x":
		if s.listFocus == 0 {
			m.wizard.ToggleWorkoutType(types[s.typeCursor])
		} else {
			m.wizard.ToggleFitnessGoal(goals[s.goalCursor])
		}
	}
	return m, nil
}

func (m Model) updateHealthNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.intake.notesInput, cmd = m.intake.notesInput.Update(msg)
	m.wizard.SetHealthNotes(m.intake.notesInput.Value())
	return m, cmd
}

func (m Model) viewIntake() string {
	accent := m.accentStyle()
	help := m.helpStyle()

	var sections []string
	sections = append(sections, m.titleLine("Welcome to Vital"))
	sections = append(sections, accent.Render(fmt.Sprintf("Step %d of %d — %s",
		m.wizard.Step(), domain.WizardStepCount, domain.GetWizardStepTitle(m.wizard.Step()))))
	sections = append(sections, m.progress.ViewAs(float64(m.wizard.Progress())/100))
	sections = append(sections, "")

	switch m.wizard.Step() {
	case domain.StepPersonalInfo:
		sections = m.viewPersonalInfo(sections)
	case domain.StepFitnessProfile:
		sections = m.viewFitnessProfile(sections)
	case domain.StepPreferences:
		sections = m.viewPreferences(sections)
	case domain.StepHealthNotes:
		sections = m.viewHealthNotes(sections)
	}

	sections = append(sections, "")
	next := "[enter] continue"
	if m.wizard.Step() == domain.StepHealthNotes {
		next = "[enter] finish"
	}
	if !m.wizard.CanAdvance() {
		next = "complete this step to continue"
	}
	back := ""
	if m.wizard.Step() > domain.StepPersonalInfo {
		back = "  [esc] back"
	}
	sections = append(sections, help.Render(next+back))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m Model) viewPersonalInfo(sections []string) []string {
	s := m.intake
	help := m.helpStyle()
	accent := m.accentStyle()

	row := func(field int, label, widget string) string {
		marker := "  "
		if s.focus == field {
			marker = accent.Render("▸ ")
		}
		return fmt.Sprintf("%s%-22s %s", marker, label, widget)
	}

	gender := "← select →"
	if s.genderIdx >= 0 {
		gender = domain.GetGenderLabel(genderOptions[s.genderIdx])
	}

	sections = append(sections, row(fieldAge, "Age", s.inputs[0].View()))
	sections = append(sections, row(fieldGender, "Gender", gender))
	sections = append(sections, row(fieldHeight, "Height (cm)", s.inputs[1].View()))
	sections = append(sections, row(fieldCurrentWeight, "Current weight (kg)", s.inputs[2].View()))
	sections = append(sections, row(fieldGoalWeight, "Goal weight (kg)", s.inputs[3].View()))

	if bmi, ok := m.wizard.BMIPreview(); ok {
		cat := domain.ClassifyBMI(bmi)
		line := fmt.Sprintf("BMI %.1f — %s", bmi, domain.GetBMICategoryLabel(cat))
		if goal, ok := m.wizard.GoalBMIPreview(); ok {
			line += fmt.Sprintf("   goal %.1f — %s", goal, domain.GetBMICategoryLabel(domain.ClassifyBMI(goal)))
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BMIColor(string(cat))))
		sections = append(sections, "")
		sections = append(sections, style.Render(line))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("↑/↓ move  ←/→ pick gender"))
	return sections
}

func (m Model) viewFitnessProfile(sections []string) []string {
	s := m.intake
	help := m.helpStyle()
	accent := m.accentStyle()

	exp := "← select →"
	if s.expIdx >= 0 {
		exp = domain.GetExperienceLabel(experienceOptions[s.expIdx])
	}
	sections = append(sections, fmt.Sprintf("%-22s %s", "Experience level", accent.Render(exp)))

	days := "press 1-7"
	if d := m.wizard.Data().WorkoutDaysPerWeek; d > 0 {
		days = fmt.Sprintf("%d days/week", d)
	}
	sections = append(sections, fmt.Sprintf("%-22s %s", "Workout frequency", accent.Render(days)))

	sections = append(sections, "")
	sections = append(sections, help.Render("←/→ experience  1-7 days per week"))
	return sections
}

func (m Model) viewPreferences(sections []string) []string {
	s := m.intake
	help := m.helpStyle()

	types := catalog.WorkoutTypeOptions()
	goals := catalog.FitnessGoalOptions()
	data := m.wizard.Data()

	left := m.renderChecklist("Workout types", types, data.PreferredWorkoutTypes, s.typeCursor, s.listFocus == 0)
	right := m.renderChecklist("Fitness goals", goals, data.FitnessGoals, s.goalCursor, s.listFocus == 1)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))

	sections = append(sections, "")
	sections = append(sections, help.Render("tab switch list  ↑/↓ move  space toggle"))
	return sections
}

func (m Model) renderChecklist(title string, options, selected []string, cursor int, focused bool) string {
	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	dimStyle := m.helpStyle()

	var b strings.Builder
	head := title
	if focused {
		head = "▸ " + title
	} else {
		head = "  " + title
	}
	b.WriteString(headStyle.Render(head) + "\n")

	for i, opt := range options {
		check := "[ ]"
		if domain.ContainsMember(selected, opt) {
			check = "[" + m.theme.IconDone + "]"
		}
		line := fmt.Sprintf("  %s %s", check, opt)
		if focused && i == cursor {
			b.WriteString(activeStyle.Render(line) + "\n")
		} else {
			b.WriteString(dimStyle.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewHealthNotes(sections []string) []string {
	help := m.helpStyle()
	sections = append(sections, "Anything your coach should know?")
	sections = append(sections, m.intake.notesInput.View())
	sections = append(sections, "")
	sections = append(sections, help.Render("This step is optional."))
	return sections
}
