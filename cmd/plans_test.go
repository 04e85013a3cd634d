package cmd

import (
	"strings"
	"testing"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

func TestPlanSummary(t *testing.T) {
	p := &domain.WorkoutPlan{
		Name:            "Upper Body Strength",
		DurationMinutes: 45,
		Difficulty:      domain.DifficultyMedium,
		TargetZone:      "Chest, Back, Arms",
	}

	got := planSummary(p)
	for _, want := range []string{"45 min", "Medium", "Chest, Back, Arms"} {
		if !strings.Contains(got, want) {
			t.Errorf("planSummary() = %q, missing %q", got, want)
		}
	}
}

func TestPlansCmd_KnownIDs(t *testing.T) {
	wireTestDeps()
	plans := app.workouts.Plans()
	if len(plans) == 0 {
		t.Fatal("catalog should provide workout plans")
	}
	for _, p := range plans {
		if p.ID == "" || p.Name == "" {
			t.Errorf("plan %+v missing ID or name", p)
		}
		if len(p.Exercises) == 0 {
			t.Errorf("plan %s has no exercises", p.ID)
		}
	}
}
