package service

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/projection"
	"alcyxob/coach-studio/internal/repository"
	"alcyxob/coach-studio/internal/storage"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWorkoutNotFound = errors.New("completed workout not found")
	ErrSetNotFound     = errors.New("set not found in workout")
	ErrEmptyComment    = errors.New("comment cannot be empty")
)

// WorkoutReview is a completed workout with its derived stats and form video links.
type WorkoutReview struct {
	Workout    *domain.CompletedWorkout `json:"workout"`
	Stats      projection.ReviewView    `json:"stats"`
	FormVideos map[string]string        `json:"formVideos,omitempty"` // Exercise id -> temporary URL
}

type ReviewService interface {
	GetReview(ctx context.Context, workoutID string) (*WorkoutReview, error)
	ListAthleteWorkouts(ctx context.Context, athleteID string) ([]domain.CompletedWorkout, error)
	// AddComment posts to the workout thread, or to one set's thread when setID is set.
	AddComment(ctx context.Context, author *domain.User, workoutID, setID, content, kind string) (*domain.Comment, error)
}

type reviewService struct {
	workoutRepo repository.CompletedWorkoutRepository
	fileStorage storage.FileStorage
	urlExpiry   time.Duration
	logger      *zap.Logger
}

func NewReviewService(
	workoutRepo repository.CompletedWorkoutRepository,
	fileStorage storage.FileStorage,
	urlExpiry time.Duration,
	logger *zap.Logger,
) ReviewService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &reviewService{
		workoutRepo: workoutRepo,
		fileStorage: fileStorage,
		urlExpiry:   urlExpiry,
		logger:      logger,
	}
}

func (s *reviewService) GetReview(ctx context.Context, workoutID string) (*WorkoutReview, error) {
	workout, err := s.getWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	review := &WorkoutReview{
		Workout: workout,
		Stats:   projection.Review(*workout),
	}
	for _, ex := range workout.Exercises {
		if ex.FormVideoKey == "" {
			continue
		}
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, ex.FormVideoKey, s.urlExpiry)
		if err != nil {
			// The review is still useful without the video.
			if !errors.Is(err, storage.ErrStorageDisabled) {
				s.logger.Warn("Could not link form video",
					zap.String("workoutId", workoutID),
					zap.String("exerciseId", ex.ID),
					zap.Error(err),
				)
			}
			continue
		}
		if review.FormVideos == nil {
			review.FormVideos = make(map[string]string)
		}
		review.FormVideos[ex.ID] = url
	}
	return review, nil
}

func (s *reviewService) ListAthleteWorkouts(ctx context.Context, athleteID string) ([]domain.CompletedWorkout, error) {
	return s.workoutRepo.ListByAthlete(ctx, athleteID)
}

func (s *reviewService) AddComment(ctx context.Context, author *domain.User, workoutID, setID, content, kind string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if kind == "" {
		kind = "general"
	}

	c := domain.Comment{
		ID:         uuid.NewString(),
		Author:     domain.AuthorAthlete,
		AuthorName: author.Name,
		Content:    content,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Type:       kind,
	}
	if author.IsCoach() {
		c.Author = domain.AuthorCoach
	}

	if err := s.workoutRepo.AddComment(ctx, workoutID, setID, c); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("add comment: %w", err)
		}
		// Tell a missing workout apart from a missing set.
		if _, getErr := s.getWorkout(ctx, workoutID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrSetNotFound
	}
	return &c, nil
}

func (s *reviewService) getWorkout(ctx context.Context, id string) (*domain.CompletedWorkout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}
