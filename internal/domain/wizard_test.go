package domain

import (
	"testing"
)

func fillPersonalInfo(w *IntakeWizard) {
	w.SetAge(28)
	w.SetGender(GenderMale)
	w.SetHeight(175)
	w.SetCurrentWeight(70)
	w.SetGoalWeight(75)
}

func fillFitnessProfile(w *IntakeWizard) {
	w.SetExperience(ExperienceIntermediate)
	w.SetWorkoutDays(4)
}

func TestWizard_CanAdvance(t *testing.T) {
	t.Run("empty personal info blocks", func(t *testing.T) {
		w := NewIntakeWizard()
		if w.CanAdvance() {
			t.Error("CanAdvance() = true on empty step 1")
		}
	})

	t.Run("all five personal fields unblock", func(t *testing.T) {
		w := NewIntakeWizard()
		w.SetAge(28)
		w.SetGender(GenderFemale)
		w.SetHeight(165)
		w.SetCurrentWeight(61.6)
		if w.CanAdvance() {
			t.Error("CanAdvance() = true with goal weight missing")
		}
		w.SetGoalWeight(58)
		if !w.CanAdvance() {
			t.Error("CanAdvance() = false with all five fields set")
		}
	})

	t.Run("preferences require both sets", func(t *testing.T) {
		w := NewIntakeWizard()
		fillPersonalInfo(w)
		w.Next()
		fillFitnessProfile(w)
		w.Next()

		if w.Step() != StepPreferences {
			t.Fatalf("Step() = %v, want preferences", w.Step())
		}
		w.ToggleFitnessGoal("Build Muscle")
		if w.CanAdvance() {
			t.Error("CanAdvance() = true with empty workout types")
		}
		w.ToggleWorkoutType("Yoga")
		if !w.CanAdvance() {
			t.Error("CanAdvance() = false with both sets non-empty")
		}
	})

	t.Run("health notes always valid", func(t *testing.T) {
		w := NewIntakeWizard()
		fillPersonalInfo(w)
		w.Next()
		fillFitnessProfile(w)
		w.Next()
		w.ToggleWorkoutType("Running")
		w.ToggleFitnessGoal("Lose Weight")
		w.Next()

		if w.Step() != StepHealthNotes {
			t.Fatalf("Step() = %v, want health notes", w.Step())
		}
		if !w.CanAdvance() {
			t.Error("CanAdvance() = false on optional step 4")
		}
	})
}

func TestWizard_NextBlockedByValidation(t *testing.T) {
	w := NewIntakeWizard()

	profile, err := w.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if profile != nil {
		t.Error("Next() emitted a profile from an invalid step")
	}
	if w.Step() != StepPersonalInfo {
		t.Errorf("Step() = %v, step changed despite failed validation", w.Step())
	}
}

func TestWizard_BackAtFirstStep(t *testing.T) {
	w := NewIntakeWizard()
	w.Back()
	if w.Step() != StepPersonalInfo {
		t.Errorf("Back() at step 1 moved to %v", w.Step())
	}
}

func TestWizard_CompleteFlow(t *testing.T) {
	w := NewIntakeWizard()
	fillPersonalInfo(w)
	if _, err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	fillFitnessProfile(w)
	w.Next()
	w.ToggleWorkoutType("Strength Training")
	w.ToggleWorkoutType("HIIT")
	w.ToggleFitnessGoal("Build Muscle")
	w.Next()
	w.SetHealthNotes("Previous lower back strain")

	profile, err := w.Next()
	if err != nil {
		t.Fatalf("terminal Next() error = %v", err)
	}
	if profile == nil {
		t.Fatal("terminal Next() returned nil profile")
	}
	if !w.Finished() {
		t.Error("Finished() = false after terminal step")
	}
	if profile.Age != 28 || profile.HealthNotes != "Previous lower back strain" {
		t.Errorf("profile fields not carried through: %+v", profile)
	}
	if len(profile.PreferredWorkoutTypes) != 2 {
		t.Errorf("PreferredWorkoutTypes = %v", profile.PreferredWorkoutTypes)
	}

	// The emitted profile is a copy; wizard data mutations must not
	// reach it.
	w.ToggleFitnessGoal("Better Sleep")
	if len(profile.FitnessGoals) != 1 {
		t.Errorf("frozen profile mutated through wizard: %v", profile.FitnessGoals)
	}

	// No re-entry once finished.
	if _, err := w.Next(); err != ErrWizardFinished {
		t.Errorf("Next() after completion error = %v, want ErrWizardFinished", err)
	}
}

func TestWizard_BMIPreviewGuard(t *testing.T) {
	w := NewIntakeWizard()

	if _, ok := w.BMIPreview(); ok {
		t.Error("BMIPreview() available with no height or weight")
	}

	w.SetHeight(175)
	if _, ok := w.BMIPreview(); ok {
		t.Error("BMIPreview() available with weight missing")
	}

	w.SetCurrentWeight(70)
	bmi, ok := w.BMIPreview()
	if !ok {
		t.Fatal("BMIPreview() withheld with both fields present")
	}
	if bmi < 22.8 || bmi > 22.9 {
		t.Errorf("BMIPreview() = %v, want ~22.86", bmi)
	}
}

func TestToggleListMember(t *testing.T) {
	list := []string{}
	list = ToggleListMember(list, "Yoga")
	list = ToggleListMember(list, "Running")
	if len(list) != 2 {
		t.Fatalf("list = %v", list)
	}

	// Toggling an existing member removes it.
	list = ToggleListMember(list, "Yoga")
	if len(list) != 1 || list[0] != "Running" {
		t.Errorf("list after removal = %v", list)
	}

	// Toggling again re-adds.
	list = ToggleListMember(list, "Yoga")
	if !ContainsMember(list, "Yoga") {
		t.Errorf("list after re-add = %v", list)
	}
}
