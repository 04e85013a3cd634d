package domain

import (
	"testing"
	"time"
)

func testPlan() *WorkoutPlan {
	return &WorkoutPlan{
		ID:              "upper-body",
		Name:            "Upper Body Strength",
		DurationMinutes: 45,
		Difficulty:      DifficultyHard,
		Exercises: []Exercise{
			{ID: "1", Name: "Push-ups", Sets: 3, Reps: "12-15", RestSeconds: 60, TargetMuscles: []string{"Chest", "Triceps"}, Difficulty: DifficultyMedium},
			{ID: "2", Name: "Pull-ups", Sets: 3, Reps: "8-10", RestSeconds: 90, TargetMuscles: []string{"Back", "Biceps"}, Difficulty: DifficultyHard},
			{ID: "3", Name: "Dumbbell Rows", Sets: 3, Reps: "10-12", RestSeconds: 60, TargetMuscles: []string{"Back", "Biceps"}, Difficulty: DifficultyMedium},
			{ID: "4", Name: "Overhead Press", Sets: 3, Reps: "8-10", RestSeconds: 75, TargetMuscles: []string{"Shoulders"}, Difficulty: DifficultyHard},
		},
	}
}

func TestNewWorkoutSession(t *testing.T) {
	template := testPlan()
	template.Exercises[0].Completed = true // dirty template should be reset

	session := NewWorkoutSession(template)

	if session.ID == "" {
		t.Error("NewWorkoutSession() ID is empty")
	}
	if session.Plan == template {
		t.Error("NewWorkoutSession() did not copy the template")
	}
	for _, ex := range session.Plan.Exercises {
		if ex.Completed {
			t.Errorf("exercise %s starts completed", ex.ID)
		}
	}
	if session.Progress() != 0 {
		t.Errorf("Progress() = %d at start, want 0", session.Progress())
	}
}

func TestWorkoutSession_TemplateStaysPristine(t *testing.T) {
	template := testPlan()
	session := NewWorkoutSession(template)

	session.CompleteExercise("1")
	session.CompleteExercise("2")

	for _, ex := range template.Exercises {
		if ex.Completed {
			t.Fatalf("catalog template mutated by session: exercise %s", ex.ID)
		}
	}
}

func TestWorkoutSession_CompleteExercise(t *testing.T) {
	session := NewWorkoutSession(testPlan())

	session.CompleteExercise("1")
	session.CompleteExercise("3")
	if got := session.Progress(); got != 50 {
		t.Errorf("Progress() = %d after 2 of 4, want 50", got)
	}

	// Repeat calls and unknown ids are no-ops.
	session.CompleteExercise("1")
	session.CompleteExercise("no-such-exercise")
	if got := session.Progress(); got != 50 {
		t.Errorf("Progress() = %d after idempotent calls, want 50", got)
	}

	session.CompleteExercise("2")
	session.CompleteExercise("4")
	if got := session.Progress(); got != 100 {
		t.Errorf("Progress() = %d after all done, want 100", got)
	}
	if !session.IsComplete() {
		t.Error("IsComplete() = false at 100%")
	}

	// State is stable once complete.
	session.CompleteExercise("4")
	if !session.IsComplete() || session.Progress() != 100 {
		t.Error("completed session changed state")
	}
}

func TestWorkoutSession_Elapsed(t *testing.T) {
	session := NewWorkoutSession(testPlan())
	session.StartedAt = time.Now().Add(-90 * time.Second)

	elapsed := session.Elapsed()
	if elapsed < 89*time.Second || elapsed > 92*time.Second {
		t.Errorf("Elapsed() = %v, want ~90s", elapsed)
	}
}

func TestWorkoutReport_CompletionRate(t *testing.T) {
	report := &WorkoutReport{
		Exercises: []ReportExercise{
			{Name: "Bench Press", Completed: true},
			{Name: "Pull-ups", Completed: true},
			{Name: "Shoulder Press", Completed: false},
			{Name: "Barbell Rows", Completed: true},
		},
	}
	if got := report.CompletionRate(); got != 75 {
		t.Errorf("CompletionRate() = %d, want 75", got)
	}

	empty := &WorkoutReport{}
	if got := empty.CompletionRate(); got != 0 {
		t.Errorf("CompletionRate() on empty report = %d, want 0", got)
	}
}

func TestGetDifficultyLabel(t *testing.T) {
	if got := GetDifficultyLabel(DifficultyEasy); got != "Easy" {
		t.Errorf("GetDifficultyLabel(Easy) = %v", got)
	}
	if got := GetDifficultyLabel(Difficulty("extreme")); got != "Unknown" {
		t.Errorf("GetDifficultyLabel(extreme) = %v, want Unknown", got)
	}
}
