// Package seed loads demo data into empty collections.
package seed

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

// UserSeed is a user plus the plain password it signs in with.
type UserSeed struct {
	domain.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

// Data is the content of a seed file.
type Data struct {
	Users             []UserSeed                  `yaml:"users"`
	Athletes          []domain.AthleteRosterEntry `yaml:"athletes"`
	Exercises         []domain.CatalogExercise    `yaml:"exercises"`
	Templates         []domain.WorkoutTemplate    `yaml:"templates"`
	CompletedWorkouts []domain.CompletedWorkout   `yaml:"completedWorkouts"`
	PlannedWorkouts   []domain.PlannedWorkout     `yaml:"plannedWorkouts"`
	Conversations     []domain.Conversation       `yaml:"conversations"`
}

// Default returns the data embedded in the binary.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a seed file.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &d, nil
}

// Repositories are the stores seeding writes to.
type Repositories struct {
	Users             repository.UserRepository
	Athletes          repository.AthleteRepository
	Exercises         repository.ExerciseRepository
	Templates         repository.TemplateRepository
	CompletedWorkouts repository.CompletedWorkoutRepository
	PlannedWorkouts   repository.PlannedWorkoutRepository
	Conversations     repository.ConversationRepository
}

// Apply inserts each part of d into its collection if that collection is empty.
// Collections that already hold documents are left alone, so Apply is safe to run on every start.
func Apply(ctx context.Context, d *Data, repos Repositories, logger *zap.Logger) error {
	steps := []struct {
		name   string
		count  func(context.Context) (int64, error)
		insert func(context.Context) (int, error)
	}{
		{"users", repos.Users.Count, func(ctx context.Context) (int, error) {
			users, err := hashUsers(d.Users)
			if err != nil {
				return 0, err
			}
			return len(users), repos.Users.CreateMany(ctx, users)
		}},
		{"athletes", repos.Athletes.Count, func(ctx context.Context) (int, error) {
			return len(d.Athletes), repos.Athletes.CreateMany(ctx, d.Athletes)
		}},
		{"exercises", repos.Exercises.Count, func(ctx context.Context) (int, error) {
			return len(d.Exercises), repos.Exercises.CreateMany(ctx, d.Exercises)
		}},
		{"templates", repos.Templates.Count, func(ctx context.Context) (int, error) {
			return len(d.Templates), repos.Templates.CreateMany(ctx, d.Templates)
		}},
		{"completed workouts", repos.CompletedWorkouts.Count, func(ctx context.Context) (int, error) {
			return len(d.CompletedWorkouts), repos.CompletedWorkouts.CreateMany(ctx, d.CompletedWorkouts)
		}},
		{"planned workouts", repos.PlannedWorkouts.Count, func(ctx context.Context) (int, error) {
			return len(d.PlannedWorkouts), repos.PlannedWorkouts.CreateMany(ctx, d.PlannedWorkouts)
		}},
		{"conversations", repos.Conversations.Count, func(ctx context.Context) (int, error) {
			return len(d.Conversations), repos.Conversations.CreateMany(ctx, d.Conversations)
		}},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", step.name, err)
		}
		if n > 0 {
			logger.Debug("Skipping seed, collection not empty", zap.String("collection", step.name), zap.Int64("documents", n))
			continue
		}
		inserted, err := step.insert(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.Info("Seeded collection", zap.String("collection", step.name), zap.Int("documents", inserted))
	}
	return nil
}

func hashUsers(seeds []UserSeed) ([]domain.User, error) {
	users := make([]domain.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", s.Email, err)
		}
		u := s.User
		u.PasswordHash = string(hash)
		users = append(users, u)
	}
	return users, nil
}
