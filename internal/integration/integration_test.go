package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalcoach/vital-cli/internal/device"
	"github.com/vitalcoach/vital-cli/internal/domain"
	"github.com/vitalcoach/vital-cli/internal/services"
)

func newDeps(t *testing.T) (*services.ProfileService, *services.WorkoutService, *services.SyncService) {
	t.Helper()
	provider := device.NewMockProvider(5 * time.Millisecond)
	return services.NewProfileService(), services.NewWorkoutService(), services.NewSyncService(provider)
}

// TestOnboardingToDashboard walks the intake wizard end to end and
// verifies the resulting profile powers the dashboard routing.
func TestOnboardingToDashboard(t *testing.T) {
	profiles, _, _ := newDeps(t)

	wizard := domain.NewIntakeWizard()
	require.False(t, wizard.CanAdvance(), "empty personal info must gate step 1")

	wizard.SetAge(30)
	wizard.SetGender(domain.GenderMale)
	wizard.SetHeight(180)
	wizard.SetCurrentWeight(80)
	wizard.SetGoalWeight(75)
	require.True(t, wizard.CanAdvance())
	profile, err := wizard.Next()
	require.NoError(t, err)
	assert.Nil(t, profile, "wizard must not finish before the last step")

	wizard.SetExperience(domain.ExperienceIntermediate)
	wizard.SetWorkoutDays(4)
	require.True(t, wizard.CanAdvance())
	_, err = wizard.Next()
	require.NoError(t, err)

	wizard.ToggleWorkoutType("Strength Training")
	wizard.ToggleFitnessGoal("Build Muscle")
	require.True(t, wizard.CanAdvance())
	_, err = wizard.Next()
	require.NoError(t, err)

	wizard.SetHealthNotes("none")
	profile, err = wizard.Next()
	require.NoError(t, err)
	require.NotNil(t, profile, "final step must produce a profile")

	profiles.SetProfile(profile)
	require.True(t, profiles.HasProfile())

	bmi, ok := profiles.Profile().BMI()
	require.True(t, ok)
	assert.InDelta(t, 24.7, bmi, 0.1)

	router := domain.NewRouter()
	assert.Equal(t, domain.ViewDashboard, router.View())
}

// TestWorkoutLifecycle runs a full session: start, partial progress,
// idempotent completion, finish, and report.
func TestWorkoutLifecycle(t *testing.T) {
	_, workouts, _ := newDeps(t)

	session, err := workouts.StartSession("1")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Same(t, session, workouts.ActiveSession())
	require.Len(t, session.Plan.Exercises, 4)

	_, err = workouts.CompleteExercise("1")
	require.NoError(t, err)
	_, err = workouts.CompleteExercise("3")
	require.NoError(t, err)
	assert.Equal(t, 50, session.Progress())

	// Completing an already-done exercise must not change anything.
	_, err = workouts.CompleteExercise("1")
	require.NoError(t, err)
	assert.Equal(t, 50, session.Progress())

	_, err = workouts.FinishSession()
	assert.ErrorIs(t, err, domain.ErrWorkoutIncomplete)

	_, err = workouts.CompleteExercise("2")
	require.NoError(t, err)
	_, err = workouts.CompleteExercise("4")
	require.NoError(t, err)
	require.True(t, session.IsComplete())

	report, err := workouts.FinishSession()
	require.NoError(t, err)
	assert.Equal(t, 100, report.CompletionRate())
	assert.Nil(t, workouts.ActiveSession())
	assert.Same(t, report, workouts.LastReport())

	// The catalog template must have stayed pristine.
	for _, p := range workouts.Plans() {
		for _, ex := range p.Exercises {
			assert.False(t, ex.Completed, "catalog exercise %s mutated", ex.ID)
		}
	}
}

// TestDeviceSyncLifecycle drives a sync through the service layer the
// same way the dashboard does, latency included.
func TestDeviceSyncLifecycle(t *testing.T) {
	_, _, syncSvc := newDeps(t)
	ctx := context.Background()

	devices, err := syncSvc.Devices(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, devices)
	target := devices[0]

	started, err := syncSvc.RequestSync(ctx, target.ID)
	require.NoError(t, err)
	require.True(t, started)
	assert.Equal(t, domain.SyncSyncing, target.Status)

	// A second request while in flight must not start another sync.
	started, err = syncSvc.RequestSync(ctx, target.ID)
	require.NoError(t, err)
	assert.False(t, started)

	time.Sleep(syncSvc.Latency())
	require.NoError(t, syncSvc.ResolveSync(ctx, target.ID))
	assert.Equal(t, domain.SyncSynced, target.Status)
	assert.WithinDuration(t, time.Now(), target.LastSyncAt, time.Second)

	snapshot, err := syncSvc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8432, snapshot.Steps)

	readiness, err := syncSvc.Readiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ReadinessHigh, readiness)
}

// TestRouterSubStateReset checks that leaving a view clears its nested
// sub-state so re-entry always lands on the top-level screen.
func TestRouterSubStateReset(t *testing.T) {
	router := domain.NewRouter()

	router.Goto(domain.ViewNutrition)
	router.SetNutritionSub(domain.NutritionRecipeDetail)
	router.Back()
	assert.Equal(t, domain.ViewDashboard, router.View())

	router.Goto(domain.ViewNutrition)
	assert.Equal(t, domain.NutritionOverview, router.NutritionSub())

	router.Goto(domain.ViewDevices)
	router.SetDeviceSub(domain.DeviceList)
	router.Back()
	router.Goto(domain.ViewDevices)
	assert.Equal(t, domain.DeviceOverview, router.DeviceSub())
}
