package domain

import (
	"testing"
)

func TestRouter_InitialState(t *testing.T) {
	r := NewRouter()
	if r.View() != ViewDashboard {
		t.Errorf("View() = %v, want dashboard", r.View())
	}
	if r.WorkoutSub() != WorkoutPlanSelect {
		t.Errorf("WorkoutSub() = %v, want plan select", r.WorkoutSub())
	}
	if r.NutritionSub() != NutritionOverview {
		t.Errorf("NutritionSub() = %v, want overview", r.NutritionSub())
	}
	if r.DeviceSub() != DeviceOverview {
		t.Errorf("DeviceSub() = %v, want overview", r.DeviceSub())
	}
}

func TestRouter_DirectJumps(t *testing.T) {
	r := NewRouter()

	r.Goto(ViewNutrition)
	if r.View() != ViewNutrition {
		t.Errorf("View() = %v, want nutrition", r.View())
	}

	// Jumps are direct, not stacked: back from any view lands on the
	// dashboard even after hopping between non-dashboard views.
	r.Goto(ViewDevices)
	r.Back()
	if r.View() != ViewDashboard {
		t.Errorf("View() after Back() = %v, want dashboard", r.View())
	}
}

func TestRouter_NestedStateResetsOnReentry(t *testing.T) {
	r := NewRouter()

	r.Goto(ViewNutrition)
	r.SetNutritionSub(NutritionRecipeDetail)
	r.Back()
	r.Goto(ViewNutrition)
	if r.NutritionSub() != NutritionOverview {
		t.Errorf("NutritionSub() after re-entry = %v, want overview", r.NutritionSub())
	}

	r.Goto(ViewDevices)
	r.SetDeviceSub(DeviceLiveData)
	r.Back()
	r.Goto(ViewDevices)
	if r.DeviceSub() != DeviceOverview {
		t.Errorf("DeviceSub() after re-entry = %v, want overview", r.DeviceSub())
	}

	r.Goto(ViewWorkout)
	r.SetWorkoutSub(WorkoutActiveSession)
	r.Back()
	r.Goto(ViewWorkout)
	if r.WorkoutSub() != WorkoutPlanSelect {
		t.Errorf("WorkoutSub() after re-entry = %v, want plan select", r.WorkoutSub())
	}
}

func TestGetViewTitle(t *testing.T) {
	if got := GetViewTitle(ViewDevices); got != "Device Integration" {
		t.Errorf("GetViewTitle(devices) = %q", got)
	}
	if got := GetViewTitle(View("bogus")); got != "Unknown" {
		t.Errorf("GetViewTitle(bogus) = %q, want Unknown", got)
	}
}
