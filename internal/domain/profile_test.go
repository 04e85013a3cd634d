package domain

import (
	"testing"
)

func TestProfile_Clone(t *testing.T) {
	p := &OnboardingProfile{
		Age:                   28,
		Gender:                GenderFemale,
		HeightCm:              165,
		CurrentWeightKg:       61.6,
		GoalWeightKg:          58,
		PreferredWorkoutTypes: []string{"Yoga", "Running"},
		FitnessGoals:          []string{"Better Sleep"},
	}

	c := p.Clone()
	c.PreferredWorkoutTypes = ToggleListMember(c.PreferredWorkoutTypes, "Boxing")
	c.Age = 29

	if p.Age != 28 {
		t.Error("Clone() shares scalar fields with original")
	}
	if len(p.PreferredWorkoutTypes) != 2 {
		t.Errorf("Clone() shares list backing array: %v", p.PreferredWorkoutTypes)
	}
}

func TestProfile_BMI(t *testing.T) {
	p := &OnboardingProfile{HeightCm: 175, CurrentWeightKg: 70, GoalWeightKg: 75}

	bmi, ok := p.BMI()
	if !ok {
		t.Fatal("BMI() withheld with valid inputs")
	}
	if bmi < 22.8 || bmi > 22.9 {
		t.Errorf("BMI() = %v, want ~22.86", bmi)
	}

	goal, ok := p.GoalBMI()
	if !ok || goal < 24.4 || goal > 24.5 {
		t.Errorf("GoalBMI() = %v (%v), want ~24.49", goal, ok)
	}

	// Missing or zero inputs withhold the value instead of dividing.
	zero := &OnboardingProfile{CurrentWeightKg: 70}
	if _, ok := zero.BMI(); ok {
		t.Error("BMI() computed without height")
	}
}

func TestGetGenderLabel(t *testing.T) {
	if got := GetGenderLabel(GenderUndisclosed); got != "Prefer not to say" {
		t.Errorf("GetGenderLabel = %q", got)
	}
	if got := GetGenderLabel(Gender("x")); got != "Unknown" {
		t.Errorf("GetGenderLabel(x) = %q", got)
	}
}
