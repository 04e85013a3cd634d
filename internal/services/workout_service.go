// Package services holds the application use cases that sit between
// the domain and the delivery surfaces (TUI and CLI commands).
package services

import (
	"fmt"
	"time"

	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// WorkoutService manages the lifecycle of workout sessions started
// from catalog templates.
type WorkoutService struct {
	active     *domain.WorkoutSession
	lastReport *domain.WorkoutReport
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService() *WorkoutService {
	return &WorkoutService{}
}

// Plans returns the available workout templates.
func (s *WorkoutService) Plans() []*domain.WorkoutPlan {
	return catalog.WorkoutPlans()
}

// StartSession begins a session from the named template. The template
// stays untouched; the session works on its own copy.
func (s *WorkoutService) StartSession(planID string) (*domain.WorkoutSession, error) {
	if s.active != nil {
		return nil, domain.ErrWorkoutActive
	}
	plan := catalog.FindPlan(planID)
	if plan == nil {
		return nil, domain.ErrUnknownPlan
	}
	s.active = domain.NewWorkoutSession(plan)
	return s.active, nil
}

// ActiveSession returns the session in progress, or nil.
func (s *WorkoutService) ActiveSession() *domain.WorkoutSession {
	return s.active
}

// CompleteExercise marks one exercise of the active session done.
func (s *WorkoutService) CompleteExercise(exerciseID string) (*domain.WorkoutSession, error) {
	if s.active == nil {
		return nil, domain.ErrNoActiveWorkout
	}
	s.active.CompleteExercise(exerciseID)
	return s.active, nil
}

// FinishSession closes the active session and returns a report for
// it. The session must have every exercise completed.
func (s *WorkoutService) FinishSession() (*domain.WorkoutReport, error) {
	if s.active == nil {
		return nil, domain.ErrNoActiveWorkout
	}
	if !s.active.IsComplete() {
		return nil, domain.ErrWorkoutIncomplete
	}
	report := reportFor(s.active)
	s.active = nil
	s.lastReport = report
	return report, nil
}

// DiscardSession abandons the active session without a report. It is
// a no-op when nothing is running.
func (s *WorkoutService) DiscardSession() {
	s.active = nil
}

// LastReport returns the most recent completed-workout report.
func (s *WorkoutService) LastReport() *domain.WorkoutReport {
	if s.lastReport != nil {
		return s.lastReport
	}
	return catalog.LastReport()
}

// caloriesPerMinute is a flat burn-rate estimate used when a session
// finishes without device calorie data.
const caloriesPerMinute = 7

func reportFor(session *domain.WorkoutSession) *domain.WorkoutReport {
	exercises := make([]domain.ReportExercise, 0, len(session.Plan.Exercises))
	for _, ex := range session.Plan.Exercises {
		exercises = append(exercises, domain.ReportExercise{
			Name:      ex.Name,
			Sets:      ex.Sets,
			Reps:      ex.Reps,
			Weight:    "Body weight",
			Completed: ex.Completed,
		})
	}
	minutes := int(session.Elapsed().Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return &domain.WorkoutReport{
		Date:               time.Now().Format("1/2/2006"),
		PlanName:           session.Plan.Name,
		Duration:           fmt.Sprintf("%d minutes", minutes),
		CaloriesBurned:     minutes * caloriesPerMinute,
		Exercises:          exercises,
		OverallPerformance: session.Progress(),
	}
}
