// internal/domain/catalog.go
package domain

// ExerciseType is the broad category of a catalog exercise.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseOther       ExerciseType = "other"
)

// CatalogExercise represents a single exercise definition in the library.
// The builder copies from it; it never edits it.
type CatalogExercise struct {
	ID           string       `bson:"_id" json:"id" yaml:"id"`
	Name         string       `bson:"name" json:"name" yaml:"name"`
	Type         ExerciseType `bson:"type" json:"type" yaml:"type"`
	MuscleGroups []string     `bson:"muscleGroups" json:"muscleGroups" yaml:"muscleGroups"` // e.g. "chest", "triceps"
	Instructions string       `bson:"instructions,omitempty" json:"instructions,omitempty" yaml:"instructions"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty" yaml:"description"`
}

// TemplateExercise is one line of a workout template. Either Reps or Duration is set.
type TemplateExercise struct {
	ExerciseID string `bson:"exerciseId" json:"exerciseId" yaml:"exerciseId"`
	Sets       int    `bson:"sets" json:"sets" yaml:"sets"`
	Reps       *int   `bson:"reps,omitempty" json:"reps,omitempty" yaml:"reps"`
	Duration   *int   `bson:"duration,omitempty" json:"duration,omitempty" yaml:"duration"` // Seconds
	Rest       int    `bson:"rest" json:"rest" yaml:"rest"`                                 // Seconds
}

// WorkoutTemplate is a ready-made exercise list a coach can start a workout from.
type WorkoutTemplate struct {
	ID          string             `bson:"_id" json:"id" yaml:"id"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	Category    ExerciseType       `bson:"category" json:"category" yaml:"category"`
	Exercises   []TemplateExercise `bson:"exercises" json:"exercises" yaml:"exercises"`
}
