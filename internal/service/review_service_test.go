package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/storage"
)

type fakeStorage struct {
	err     error
	keys    []string
	expires time.Duration
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	f.expires = expires
	return "https://videos.example.com/" + key, nil
}

func TestGetReview(t *testing.T) {
	ctx := context.Background()
	files := &fakeStorage{}
	svc := NewReviewService(seededStore(t).CompletedWorkouts(), files, 0, zap.NewNop())

	review, err := svc.GetReview(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", review.Workout.AthleteName)
	assert.Equal(t, 9, review.Stats.TotalSets)
	assert.Equal(t, 9, review.Stats.CompletedSets)
	require.NotNil(t, review.Stats.AverageRPE)
	assert.Equal(t, 8.0, *review.Stats.AverageRPE)
	assert.Equal(t, 4, review.Stats.FormIssues)

	assert.Equal(t, map[string]string{"1": "https://videos.example.com/form-videos/1/bench-press.mp4"}, review.FormVideos)
	assert.Equal(t, storage.DefaultPresignedURLExpiry, files.expires)

	_, err = svc.GetReview(ctx, "42")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetReviewWithoutStorage(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	review, err := NewReviewService(store.CompletedWorkouts(), storage.Disabled(), time.Minute, zap.NewNop()).GetReview(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, review.FormVideos)

	broken := &fakeStorage{err: errors.New("bucket unreachable")}
	review, err = NewReviewService(store.CompletedWorkouts(), broken, time.Minute, zap.NewNop()).GetReview(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, review.FormVideos)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(seededStore(t).CompletedWorkouts(), storage.Disabled(), 0, zap.NewNop())
	coach := &domain.User{ID: "1", Name: "John Coach", Role: domain.RoleCoach}

	c, err := svc.AddComment(ctx, coach, "1", "2-3", " Try negatives next week. ", "form")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthorCoach, c.Author)
	assert.Equal(t, "Try negatives next week.", c.Content)
	_, err = time.Parse(time.RFC3339, c.Timestamp)
	assert.NoError(t, err)

	athlete := &domain.User{ID: "2", Name: "Jane Athlete", Role: domain.RoleAthlete}
	c, err = svc.AddComment(ctx, athlete, "1", "", "Thanks!", "")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthorAthlete, c.Author)
	assert.Equal(t, "general", c.Type)

	review, err := svc.GetReview(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, review.Workout.Comments, 3)
	set := review.Workout.Exercises[1].Sets[2]
	require.Len(t, set.Comments, 1)
	assert.Equal(t, "Try negatives next week.", set.Comments[0].Content)

	_, err = svc.AddComment(ctx, coach, "1", "9-9", "hello", "general")
	assert.ErrorIs(t, err, ErrSetNotFound)
	_, err = svc.AddComment(ctx, coach, "42", "", "hello", "general")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	_, err = svc.AddComment(ctx, coach, "1", "", "   ", "general")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestListAthleteWorkouts(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(seededStore(t).CompletedWorkouts(), storage.Disabled(), 0, zap.NewNop())

	workouts, err := svc.ListAthleteWorkouts(ctx, "1")
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Upper Body Strength", workouts[0].Name)

	workouts, err = svc.ListAthleteWorkouts(ctx, "4")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}
