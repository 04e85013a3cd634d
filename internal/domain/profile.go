// Package domain contains the core business entities for Vital.
// These entities represent the fundamental concepts of the wellness
// coaching system and are independent of any external frameworks or
// infrastructure.
package domain

import (
	"errors"
)

// Common domain errors.
var (
	ErrProfileIncomplete = errors.New("profile is incomplete")
	ErrWizardFinished    = errors.New("intake wizard already finished")
	ErrNoActiveWorkout   = errors.New("no active workout session")
	ErrWorkoutActive     = errors.New("workout session already active")
	ErrUnknownPlan       = errors.New("unknown workout plan")
	ErrWorkoutIncomplete = errors.New("workout session has unfinished exercises")
)

// Gender is the self-reported gender selection from intake.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUndisclosed Gender = "prefer-not-to-say"
)

// ExperienceLevel represents training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// OnboardingProfile is accumulated across the intake wizard steps and
// frozen once the terminal step completes. Later edit flows operate on
// a copy obtained via Clone, never on the frozen value itself.
type OnboardingProfile struct {
	Age                   int
	Gender                Gender
	HeightCm              float64
	CurrentWeightKg       float64
	GoalWeightKg          float64
	Experience            ExperienceLevel
	WorkoutDaysPerWeek    int
	PreferredWorkoutTypes []string
	FitnessGoals          []string
	HealthNotes           string
}

// Clone returns a deep copy of the profile, suitable for edit flows
// that must not mutate the frozen original.
func (p *OnboardingProfile) Clone() *OnboardingProfile {
	c := *p
	c.PreferredWorkoutTypes = append([]string(nil), p.PreferredWorkoutTypes...)
	c.FitnessGoals = append([]string(nil), p.FitnessGoals...)
	return &c
}

// BMI computes body-mass index from the current weight. It returns
// (0, false) when height or weight is missing so callers can withhold
// the preview instead of dividing by zero.
func (p *OnboardingProfile) BMI() (float64, bool) {
	return bmiOf(p.HeightCm, p.CurrentWeightKg)
}

// GoalBMI computes body-mass index from the goal weight.
func (p *OnboardingProfile) GoalBMI() (float64, bool) {
	return bmiOf(p.HeightCm, p.GoalWeightKg)
}

func bmiOf(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

// GetGenderLabel returns a human-readable label for a gender value.
func GetGenderLabel(g Gender) string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	case GenderUndisclosed:
		return "Prefer not to say"
	default:
		return "Unknown"
	}
}

// GetExperienceLabel returns a human-readable label for an experience level.
func GetExperienceLabel(e ExperienceLevel) string {
	switch e {
	case ExperienceBeginner:
		return "Beginner"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// ToggleListMember adds item to the list if absent and removes it if
// present. It backs every multi-select intake field.
func ToggleListMember(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, item)
}

// ContainsMember reports whether item is in the list.
func ContainsMember(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
