package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

func TestWorkoutService_StartSession(t *testing.T) {
	svc := NewWorkoutService()

	session, err := svc.StartSession("1")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "Upper Body Strength", session.Plan.Name)
	assert.Equal(t, 0, session.CompletedCount())
	assert.Same(t, session, svc.ActiveSession())
}

func TestWorkoutService_StartSession_UnknownPlan(t *testing.T) {
	svc := NewWorkoutService()

	_, err := svc.StartSession("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
	assert.Nil(t, svc.ActiveSession())
}

func TestWorkoutService_StartSession_AlreadyActive(t *testing.T) {
	svc := NewWorkoutService()
	_, err := svc.StartSession("1")
	require.NoError(t, err)

	_, err = svc.StartSession("2")
	assert.ErrorIs(t, err, domain.ErrWorkoutActive)
}

func TestWorkoutService_SessionDoesNotMutateTemplate(t *testing.T) {
	svc := NewWorkoutService()
	session, err := svc.StartSession("1")
	require.NoError(t, err)

	for _, ex := range session.Plan.Exercises {
		_, err := svc.CompleteExercise(ex.ID)
		require.NoError(t, err)
	}

	template := catalog.FindPlan("1")
	require.NotNil(t, template)
	for _, ex := range template.Exercises {
		assert.False(t, ex.Completed, "template exercise %s was mutated", ex.ID)
	}
}

func TestWorkoutService_CompleteExercise_NoActive(t *testing.T) {
	svc := NewWorkoutService()
	_, err := svc.CompleteExercise("e1")
	assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)
}

func TestWorkoutService_FinishSession_Incomplete(t *testing.T) {
	svc := NewWorkoutService()
	session, err := svc.StartSession("1")
	require.NoError(t, err)

	_, err = svc.CompleteExercise(session.Plan.Exercises[0].ID)
	require.NoError(t, err)

	_, err = svc.FinishSession()
	assert.ErrorIs(t, err, domain.ErrWorkoutIncomplete)
	assert.NotNil(t, svc.ActiveSession(), "incomplete session should stay active")
}

func TestWorkoutService_FinishSession(t *testing.T) {
	svc := NewWorkoutService()
	session, err := svc.StartSession("1")
	require.NoError(t, err)

	for _, ex := range session.Plan.Exercises {
		_, err := svc.CompleteExercise(ex.ID)
		require.NoError(t, err)
	}
	require.True(t, session.IsComplete())

	report, err := svc.FinishSession()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Upper Body Strength", report.PlanName)
	assert.Equal(t, 100, report.CompletionRate())
	assert.Nil(t, svc.ActiveSession())
	assert.Same(t, report, svc.LastReport())
}

func TestWorkoutService_DiscardSession(t *testing.T) {
	svc := NewWorkoutService()
	_, err := svc.StartSession("1")
	require.NoError(t, err)

	svc.DiscardSession()
	assert.Nil(t, svc.ActiveSession())

	// Discarding with nothing running is a no-op.
	svc.DiscardSession()
}

func TestWorkoutService_LastReport_DefaultsToCatalog(t *testing.T) {
	svc := NewWorkoutService()
	report := svc.LastReport()
	require.NotNil(t, report)
	assert.Equal(t, "Upper Body Strength", report.PlanName)
	assert.Equal(t, 85, report.OverallPerformance)
}
