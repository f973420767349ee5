package domain

// CommentAuthor is who wrote a review comment.
type CommentAuthor string

const (
	AuthorCoach   CommentAuthor = "coach"
	AuthorAthlete CommentAuthor = "athlete"
)

// Comment is feedback attached to a completed workout or to one of its sets.
type Comment struct {
	ID         string        `bson:"id" json:"id" yaml:"id"`
	Author     CommentAuthor `bson:"author" json:"author" yaml:"author"`
	AuthorName string        `bson:"authorName" json:"authorName" yaml:"authorName"`
	Content    string        `bson:"content" json:"content" yaml:"content"`
	Timestamp  string        `bson:"timestamp" json:"timestamp" yaml:"timestamp"` // Display label
	Type       string        `bson:"type" json:"type" yaml:"type"`                // e.g. "general", "form", "question"
}

// CompletedSet is a set as the athlete actually performed it.
type CompletedSet struct {
	ID             string    `bson:"id" json:"id" yaml:"id"`
	Reps           int       `bson:"reps" json:"reps" yaml:"reps"`
	Weight         float64   `bson:"weight" json:"weight" yaml:"weight"`
	RestPeriod     float64   `bson:"restPeriod" json:"restPeriod" yaml:"restPeriod"`
	Completed      bool      `bson:"completed" json:"completed" yaml:"completed"`
	RPE            *float64  `bson:"rpe,omitempty" json:"rpe,omitempty" yaml:"rpe"` // Rate of Perceived Exertion, 1-10
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty" yaml:"notes"`
	CompletionTime string    `bson:"completionTime,omitempty" json:"completionTime,omitempty" yaml:"completionTime"`
	FormIssues     []string  `bson:"formIssues,omitempty" json:"formIssues,omitempty" yaml:"formIssues"`
	Comments       []Comment `bson:"comments" json:"comments" yaml:"comments"`
}

// CompletedExercise groups the performed sets of one exercise.
type CompletedExercise struct {
	ID               string         `bson:"id" json:"id" yaml:"id"`
	Name             string         `bson:"name" json:"name" yaml:"name"`
	MuscleGroup      string         `bson:"muscleGroup" json:"muscleGroup" yaml:"muscleGroup"`
	Description      string         `bson:"description" json:"description" yaml:"description"`
	Sets             []CompletedSet `bson:"sets" json:"sets" yaml:"sets"`
	OverallNotes     string         `bson:"overallNotes,omitempty" json:"overallNotes,omitempty" yaml:"overallNotes"`
	DifficultyRating *int           `bson:"difficultyRating,omitempty" json:"difficultyRating,omitempty" yaml:"difficultyRating"` // 1-5
	FormVideoKey     string         `bson:"formVideoKey,omitempty" json:"-" yaml:"formVideoKey"`                                  // Object key in the bucket, internal use
}

// CompletedWorkout is a workout an athlete finished, as shown on the coach's review screen.
type CompletedWorkout struct {
	ID              string              `bson:"_id" json:"id" yaml:"id"`
	Name            string              `bson:"name" json:"name" yaml:"name"`
	Description     string              `bson:"description" json:"description" yaml:"description"`
	AthleteID       string              `bson:"athleteId" json:"athleteId" yaml:"athleteId"`
	AthleteName     string              `bson:"athleteName" json:"athleteName" yaml:"athleteName"`
	AthleteInitials string              `bson:"athleteInitials" json:"athleteInitials" yaml:"athleteInitials"`
	CompletedDate   string              `bson:"completedDate" json:"completedDate" yaml:"completedDate"`
	StartTime       string              `bson:"startTime" json:"startTime" yaml:"startTime"`
	EndTime         string              `bson:"endTime" json:"endTime" yaml:"endTime"`
	TotalDuration   int                 `bson:"totalDuration" json:"totalDuration" yaml:"totalDuration"` // Minutes
	Exercises       []CompletedExercise `bson:"exercises" json:"exercises" yaml:"exercises"`
	OverallRating   *int                `bson:"overallRating,omitempty" json:"overallRating,omitempty" yaml:"overallRating"`
	OverallNotes    string              `bson:"overallNotes,omitempty" json:"overallNotes,omitempty" yaml:"overallNotes"`
	EnergyLevel     *int                `bson:"energyLevel,omitempty" json:"energyLevel,omitempty" yaml:"energyLevel"`
	SorenessLevel   *int                `bson:"sorenessLevel,omitempty" json:"sorenessLevel,omitempty" yaml:"sorenessLevel"`
	Comments        []Comment           `bson:"comments" json:"comments" yaml:"comments"`
}
