package domain

import "time"

// PlanStatus is how far a planned workout has come.
type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanAssigned  PlanStatus = "assigned"
	PlanCompleted PlanStatus = "completed"
)

// PlannedWorkout is a row of the coach's workout list.
type PlannedWorkout struct {
	ID                string     `bson:"_id" json:"id" yaml:"id"`
	Name              string     `bson:"name" json:"name" yaml:"name"`
	Description       string     `bson:"description" json:"description" yaml:"description"`
	Status            PlanStatus `bson:"status" json:"status" yaml:"status"`
	Type              string     `bson:"type" json:"type" yaml:"type"` // e.g. "strength", "cardio", "flexibility"
	ScheduledDate     *time.Time `bson:"scheduledDate,omitempty" json:"scheduledDate" yaml:"scheduledDate"`
	AssignedAthletes  []string   `bson:"assignedAthletes" json:"assignedAthletes" yaml:"assignedAthletes"` // Athlete names
	ExerciseCount     int        `bson:"exerciseCount" json:"exerciseCount" yaml:"exerciseCount"`
	EstimatedDuration int        `bson:"estimatedDuration" json:"estimatedDuration" yaml:"estimatedDuration"` // Minutes
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt" yaml:"createdAt"`
}
