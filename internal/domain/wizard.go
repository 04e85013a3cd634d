package domain

// WizardStep is one page of the intake wizard.
type WizardStep int

const (
	StepPersonalInfo WizardStep = iota + 1
	StepFitnessProfile
	StepPreferences
	StepHealthNotes
)

// WizardStepCount is the number of intake pages.
const WizardStepCount = 4

// GetWizardStepTitle returns the page heading for a step.
func GetWizardStepTitle(s WizardStep) string {
	switch s {
	case StepPersonalInfo:
		return "Personal Information"
	case StepFitnessProfile:
		return "Fitness Profile"
	case StepPreferences:
		return "Preferences & Goals"
	case StepHealthNotes:
		return "Health Information"
	default:
		return "Unknown"
	}
}

// IntakeWizard is the linear state machine gating profile completion.
// A step is never left while its validation predicate is unsatisfied,
// and once the terminal step completes the wizard is finished for good.
type IntakeWizard struct {
	step     WizardStep
	data     OnboardingProfile
	finished bool
}

// NewIntakeWizard starts a wizard at the first step with empty data.
func NewIntakeWizard() *IntakeWizard {
	return &IntakeWizard{step: StepPersonalInfo}
}

// Step returns the current step.
func (w *IntakeWizard) Step() WizardStep {
	return w.step
}

// Finished reports whether the terminal step has completed.
func (w *IntakeWizard) Finished() bool {
	return w.finished
}

// Data returns the accumulated form data for rendering.
func (w *IntakeWizard) Data() *OnboardingProfile {
	return &w.data
}

// Progress returns intake progress as a percentage of steps entered.
func (w *IntakeWizard) Progress() int {
	return CompletionRatio(int(w.step), WizardStepCount)
}

// CanAdvance is the continuously recomputed validation gate for the
// current step. It never fails; an unsatisfied predicate just disables
// the advance action.
func (w *IntakeWizard) CanAdvance() bool {
	switch w.step {
	case StepPersonalInfo:
		d := &w.data
		return d.Age > 0 && d.Gender != "" && d.HeightCm > 0 &&
			d.CurrentWeightKg > 0 && d.GoalWeightKg > 0
	case StepFitnessProfile:
		return w.data.Experience != "" && w.data.WorkoutDaysPerWeek > 0
	case StepPreferences:
		return len(w.data.PreferredWorkoutTypes) > 0 && len(w.data.FitnessGoals) > 0
	case StepHealthNotes:
		return true // free text is optional
	default:
		return false
	}
}

// Next advances to the following step. It is a no-op while the current
// step fails validation. Advancing from the final step completes the
// wizard and returns the frozen profile; every later call returns
// ErrWizardFinished.
func (w *IntakeWizard) Next() (*OnboardingProfile, error) {
	if w.finished {
		return nil, ErrWizardFinished
	}
	if !w.CanAdvance() {
		return nil, nil
	}
	if w.step < StepHealthNotes {
		w.step++
		return nil, nil
	}
	w.finished = true
	return w.data.Clone(), nil
}

// Back returns to the previous step, a no-op on the first.
func (w *IntakeWizard) Back() {
	if w.finished || w.step <= StepPersonalInfo {
		return
	}
	w.step--
}

// SetAge records the age answer.
func (w *IntakeWizard) SetAge(age int) { w.data.Age = age }

// SetGender records the gender answer.
func (w *IntakeWizard) SetGender(g Gender) { w.data.Gender = g }

// SetHeight records height in centimeters.
func (w *IntakeWizard) SetHeight(cm float64) { w.data.HeightCm = cm }

// SetCurrentWeight records current weight in kilograms.
func (w *IntakeWizard) SetCurrentWeight(kg float64) { w.data.CurrentWeightKg = kg }

// SetGoalWeight records goal weight in kilograms.
func (w *IntakeWizard) SetGoalWeight(kg float64) { w.data.GoalWeightKg = kg }

// SetExperience records the experience level answer.
func (w *IntakeWizard) SetExperience(e ExperienceLevel) { w.data.Experience = e }

// SetWorkoutDays records the workout-days-per-week answer.
func (w *IntakeWizard) SetWorkoutDays(days int) { w.data.WorkoutDaysPerWeek = days }

// SetHealthNotes records the optional free-text health notes.
func (w *IntakeWizard) SetHealthNotes(notes string) { w.data.HealthNotes = notes }

// ToggleWorkoutType toggles membership in the preferred workout types.
func (w *IntakeWizard) ToggleWorkoutType(item string) {
	w.data.PreferredWorkoutTypes = ToggleListMember(w.data.PreferredWorkoutTypes, item)
}

// ToggleFitnessGoal toggles membership in the fitness goals.
func (w *IntakeWizard) ToggleFitnessGoal(item string) {
	w.data.FitnessGoals = ToggleListMember(w.data.FitnessGoals, item)
}

// BMIPreview returns the live BMI preview for step 1, withheld until
// both height and current weight are present.
func (w *IntakeWizard) BMIPreview() (float64, bool) {
	return w.data.BMI()
}

// GoalBMIPreview returns the goal-weight BMI preview for step 1.
func (w *IntakeWizard) GoalBMIPreview() (float64, bool) {
	return w.data.GoalBMI()
}
