// internal/domain/exercise.go
package domain

// StrengthExercise is one movement inside a strength workout.
// Set order is insertion order; deleting a set never renumbers the others.
type StrengthExercise struct {
	ID          string
	Name        string
	MuscleGroup string // Primary muscle group shown in the builder, e.g. "Chest"
	Description string
	Sets        []ExerciseSet
}

func (e StrengthExercise) NodeID() string { return e.ID }

// ExerciseSet is one prescribed unit of an exercise. Every field except ID is optional.
type ExerciseSet struct {
	ID         string
	Reps       *int
	Weight     *float64 // lbs or kg, whatever the coach uses
	RestPeriod *float64 // Minutes
	Completed  *bool
	Notes      *string
}

func (s ExerciseSet) NodeID() string { return s.ID }
