// internal/domain/workout.go
package domain

import "time"

// WorkoutType discriminates the two workout aggregates a coach can compose.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutRunning  WorkoutType = "running"
)

// Valid reports whether t names a known workout type.
func (t WorkoutType) Valid() bool {
	return t == WorkoutStrength || t == WorkoutRunning
}

// WorkoutHeader holds the metadata shared by every workout aggregate.
type WorkoutHeader struct {
	ID               string
	Name             string
	Description      string
	Notes            string
	AssignedAthletes []string   // Membership only, order carries no meaning
	ScheduledDate    *time.Time // Optional
}

// Workout is the aggregate being composed in the builder.
// Implementations are StrengthWorkout and RunningWorkout; the set is closed.
type Workout interface {
	Type() WorkoutType
	Head() WorkoutHeader
	// WithHead returns a copy of the workout carrying h instead of its current header.
	WithHead(h WorkoutHeader) Workout
	isWorkout()
}

// StrengthWorkout is a sequence of exercises, each holding its own sets.
type StrengthWorkout struct {
	WorkoutHeader
	Exercises       []StrengthExercise
	WarmupExercises []StrengthExercise
}

func (StrengthWorkout) Type() WorkoutType     { return WorkoutStrength }
func (w StrengthWorkout) Head() WorkoutHeader { return w.WorkoutHeader }
func (StrengthWorkout) isWorkout()            {}
func (w StrengthWorkout) WithHead(h WorkoutHeader) Workout {
	w.WorkoutHeader = h
	return w
}

// RunningWorkout is a sequence of segments.
type RunningWorkout struct {
	WorkoutHeader
	Segments []Segment
}

func (RunningWorkout) Type() WorkoutType     { return WorkoutRunning }
func (w RunningWorkout) Head() WorkoutHeader { return w.WorkoutHeader }
func (RunningWorkout) isWorkout()            {}
func (w RunningWorkout) WithHead(h WorkoutHeader) Workout {
	w.WorkoutHeader = h
	return w
}
