package domain

import "time"

// AthleteStatus is where an athlete stands with their coach.
type AthleteStatus string

const (
	AthleteActive   AthleteStatus = "active"
	AthleteTrial    AthleteStatus = "trial"
	AthleteInactive AthleteStatus = "inactive"
)

// AthleteStats aggregates an athlete's training history for the roster cards.
type AthleteStats struct {
	TotalWorkouts     int     `bson:"totalWorkouts" json:"totalWorkouts" yaml:"totalWorkouts"`
	CompletedWorkouts int     `bson:"completedWorkouts" json:"completedWorkouts" yaml:"completedWorkouts"`
	CompletionRate    float64 `bson:"completionRate" json:"completionRate" yaml:"completionRate"` // Percent, 0-100
	AverageRating     float64 `bson:"averageRating" json:"averageRating" yaml:"averageRating"`
	CurrentStreak     int     `bson:"currentStreak" json:"currentStreak" yaml:"currentStreak"`
	LastWorkout       string  `bson:"lastWorkout" json:"lastWorkout" yaml:"lastWorkout"`
}

// RecentWorkout is a short summary line of a workout the athlete did.
type RecentWorkout struct {
	ID        string    `bson:"id" json:"id" yaml:"id"`
	Name      string    `bson:"name" json:"name" yaml:"name"`
	Date      time.Time `bson:"date" json:"date" yaml:"date"`
	Rating    int       `bson:"rating" json:"rating" yaml:"rating"`
	Completed bool      `bson:"completed" json:"completed" yaml:"completed"`
	Duration  int       `bson:"duration" json:"duration" yaml:"duration"` // Minutes
}

// AthleteRosterEntry is the read-mostly display record of one athlete on a coach's roster.
type AthleteRosterEntry struct {
	ID             string          `bson:"_id" json:"id" yaml:"id"`
	Name           string          `bson:"name" json:"name" yaml:"name"`
	Email          string          `bson:"email" json:"email" yaml:"email"`
	Initials       string          `bson:"initials" json:"initials" yaml:"initials"`
	Status         AthleteStatus   `bson:"status" json:"status" yaml:"status"`
	JoinedDate     time.Time       `bson:"joinedDate" json:"joinedDate" yaml:"joinedDate"`
	LastActivity   string          `bson:"lastActivity" json:"lastActivity" yaml:"lastActivity"` // Recency label, e.g. "2 hours ago"
	Stats          AthleteStats    `bson:"stats" json:"stats" yaml:"stats"`
	RecentWorkouts []RecentWorkout `bson:"recentWorkouts" json:"recentWorkouts" yaml:"recentWorkouts"`
	Goals          []string        `bson:"goals" json:"goals" yaml:"goals"`
	Notes          string          `bson:"notes,omitempty" json:"notes,omitempty" yaml:"notes"`
	UnreadMessages int             `bson:"unreadMessages" json:"unreadMessages" yaml:"unreadMessages"`
}
