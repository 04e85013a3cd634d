package domain

import (
	"time"
)

// Difficulty grades a plan or exercise.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Exercise is a single movement within a workout plan. Completed is
// only ever mutated on a session-owned copy, never on the catalog
// template.
type Exercise struct {
	ID            string
	Name          string
	Sets          int
	Reps          string
	RestSeconds   int
	TargetMuscles []string
	Difficulty    Difficulty
	Completed     bool
}

// WorkoutPlan is a catalog template describing one workout.
type WorkoutPlan struct {
	ID              string
	Name            string
	DurationMinutes int
	Difficulty      Difficulty
	TargetZone      string
	Insight         string
	Exercises       []Exercise
}

// Clone returns a deep copy of the plan so a session can own and
// mutate its exercises while the catalog entry stays pristine.
func (p *WorkoutPlan) Clone() *WorkoutPlan {
	c := *p
	c.Exercises = make([]Exercise, len(p.Exercises))
	for i, ex := range p.Exercises {
		c.Exercises[i] = ex
		c.Exercises[i].TargetMuscles = append([]string(nil), ex.TargetMuscles...)
	}
	return &c
}

// WorkoutSession tracks one in-progress workout over a session-owned
// copy of a catalog plan.
type WorkoutSession struct {
	ID        string
	Plan      *WorkoutPlan
	StartedAt time.Time
}

// NewWorkoutSession instantiates a session from a plan template. The
// plan is deep-copied with every exercise reset to not-completed.
func NewWorkoutSession(template *WorkoutPlan) *WorkoutSession {
	plan := template.Clone()
	for i := range plan.Exercises {
		plan.Exercises[i].Completed = false
	}
	return &WorkoutSession{
		ID:        generateID(),
		Plan:      plan,
		StartedAt: time.Now(),
	}
}

// CompleteExercise marks the exercise with the given id as done.
// Unknown ids and repeat calls are no-ops.
func (s *WorkoutSession) CompleteExercise(id string) {
	for i := range s.Plan.Exercises {
		if s.Plan.Exercises[i].ID == id {
			s.Plan.Exercises[i].Completed = true
			return
		}
	}
}

// CompletedCount returns how many exercises are done.
func (s *WorkoutSession) CompletedCount() int {
	n := 0
	for _, ex := range s.Plan.Exercises {
		if ex.Completed {
			n++
		}
	}
	return n
}

// Progress returns the completion percentage of the session.
func (s *WorkoutSession) Progress() int {
	return CompletionRatio(s.CompletedCount(), len(s.Plan.Exercises))
}

// IsComplete reports whether every exercise is done. Reaching the
// complete state does not end the session; the surrounding view routes
// back on explicit confirmation.
func (s *WorkoutSession) IsComplete() bool {
	return len(s.Plan.Exercises) > 0 && s.CompletedCount() == len(s.Plan.Exercises)
}

// Elapsed returns how much time has passed since the session started.
func (s *WorkoutSession) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}

// GetDifficultyLabel returns a human-readable label for a difficulty.
func GetDifficultyLabel(d Difficulty) string {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return string(d)
	default:
		return "Unknown"
	}
}

// WorkoutReport summarizes a finished session for the report view.
type WorkoutReport struct {
	Date               string
	PlanName           string
	Duration           string
	CaloriesBurned     int
	Exercises          []ReportExercise
	OverallPerformance int
	HeartRateAvg       int
	HeartRateMax       int
	FocusAreas         []FocusArea
}

// ReportExercise is one line of a workout report.
type ReportExercise struct {
	Name      string
	Sets      int
	Reps      string
	Weight    string
	Completed bool
}

// CompletionRate returns the percentage of report exercises completed.
func (r *WorkoutReport) CompletionRate() int {
	done := 0
	for _, ex := range r.Exercises {
		if ex.Completed {
			done++
		}
	}
	return CompletionRatio(done, len(r.Exercises))
}

// FocusArea is a prioritized improvement suggestion in a report.
type FocusArea struct {
	Area           string
	Priority       string
	Reason         string
	Recommendation string
}
