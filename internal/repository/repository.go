package repository

import (
	"alcyxob/coach-studio/internal/domain" // Import our defined domain models
	"context"
	"time"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	CreateMany(ctx context.Context, users []domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}

// SessionRepository stores signed-in sessions so sign-out can revoke them.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// AthleteRepository reads the coach's athlete roster. The app never edits it;
// CreateMany exists for seeding.
type AthleteRepository interface {
	List(ctx context.Context) ([]domain.AthleteRosterEntry, error)
	GetByID(ctx context.Context, id string) (*domain.AthleteRosterEntry, error)
	CreateMany(ctx context.Context, athletes []domain.AthleteRosterEntry) error
	Count(ctx context.Context) (int64, error)
}

// ExerciseRepository defines the interface for the exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.CatalogExercise) (string, error)
	CreateMany(ctx context.Context, exercises []domain.CatalogExercise) error
	GetByID(ctx context.Context, id string) (*domain.CatalogExercise, error)
	List(ctx context.Context) ([]domain.CatalogExercise, error)
	Count(ctx context.Context) (int64, error)
}

// TemplateRepository defines the interface for ready-made workout templates.
type TemplateRepository interface {
	CreateMany(ctx context.Context, templates []domain.WorkoutTemplate) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error)
	List(ctx context.Context) ([]domain.WorkoutTemplate, error)
	Count(ctx context.Context) (int64, error)
}

// CompletedWorkoutRepository defines the interface for workouts athletes have finished.
type CompletedWorkoutRepository interface {
	CreateMany(ctx context.Context, workouts []domain.CompletedWorkout) error
	GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]domain.CompletedWorkout, error)
	// AddComment appends c to the workout's thread, or to one set's thread when setID is not empty.
	AddComment(ctx context.Context, workoutID, setID string, c domain.Comment) error
	Count(ctx context.Context) (int64, error)
}

// ConversationRepository stores coach-athlete message threads.
type ConversationRepository interface {
	CreateMany(ctx context.Context, conversations []domain.Conversation) error
	// List returns every conversation, most recently active first.
	List(ctx context.Context) ([]domain.Conversation, error)
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	// AppendMessage adds m to the end of the thread and moves the conversation's UpdatedAt to at.
	AppendMessage(ctx context.Context, conversationID string, m domain.Message, at time.Time) error
	// MarkRead flags every message the other side of reader wrote as read.
	MarkRead(ctx context.Context, conversationID string, reader domain.MessageSender) error
	Count(ctx context.Context) (int64, error)
}

// PlannedWorkoutRepository reads the coach's workout list.
type PlannedWorkoutRepository interface {
	CreateMany(ctx context.Context, workouts []domain.PlannedWorkout) error
	// List returns every workout, newest first.
	List(ctx context.Context) ([]domain.PlannedWorkout, error)
	Count(ctx context.Context) (int64, error)
}
