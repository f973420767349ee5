package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
)

func TestUserEmailIsUniqueIgnoringCase(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	id, err := users.Create(ctx, &domain.User{Email: "Coach@Example.com", Name: "John Coach", Role: domain.RoleCoach, PasswordHash: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = users.Create(ctx, &domain.User{Email: "coach@example.com", Role: domain.RoleCoach, PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	u, err := users.GetByEmail(ctx, "COACH@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
}

func TestUserUpdateKeepsCredentials(t *testing.T) {
	ctx := context.Background()
	users := New().Users()
	id, err := users.Create(ctx, &domain.User{Email: "a@b.c", Role: domain.RoleAthlete, PasswordHash: "hash"})
	require.NoError(t, err)

	require.NoError(t, users.Update(ctx, &domain.User{ID: id, Name: "Jane", Role: domain.RoleCoach, PasswordHash: "other"}))
	u, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", u.Name)
	assert.Equal(t, domain.RoleAthlete, u.Role)
	assert.Equal(t, "hash", u.PasswordHash)

	assert.ErrorIs(t, users.Update(ctx, &domain.User{ID: "missing"}), repository.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	workouts := New().CompletedWorkouts()
	require.NoError(t, workouts.CreateMany(ctx, []domain.CompletedWorkout{{
		ID:        "w1",
		AthleteID: "1",
		Exercises: []domain.CompletedExercise{{ID: "1", Sets: []domain.CompletedSet{{ID: "1-1"}, {ID: "1-2"}}}},
	}}))

	before, err := workouts.GetByID(ctx, "w1")
	require.NoError(t, err)

	require.NoError(t, workouts.AddComment(ctx, "w1", "", domain.Comment{ID: "c1", Content: "Great session"}))
	require.NoError(t, workouts.AddComment(ctx, "w1", "1-2", domain.Comment{ID: "c2", Content: "Watch the elbows"}))
	assert.ErrorIs(t, workouts.AddComment(ctx, "w1", "9-9", domain.Comment{}), repository.ErrNotFound)
	assert.ErrorIs(t, workouts.AddComment(ctx, "nope", "", domain.Comment{}), repository.ErrNotFound)

	after, err := workouts.GetByID(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, after.Comments, 1)
	assert.Empty(t, after.Exercises[0].Sets[0].Comments)
	require.Len(t, after.Exercises[0].Sets[1].Comments, 1)
	assert.Equal(t, "c2", after.Exercises[0].Sets[1].Comments[0].ID)

	// Earlier reads are snapshots.
	assert.Empty(t, before.Comments)
	assert.Empty(t, before.Exercises[0].Sets[1].Comments)
}

func TestListByAthleteNewestFirst(t *testing.T) {
	ctx := context.Background()
	workouts := New().CompletedWorkouts()
	require.NoError(t, workouts.CreateMany(ctx, []domain.CompletedWorkout{
		{ID: "a", AthleteID: "1", CompletedDate: "2024-01-11"},
		{ID: "b", AthleteID: "2", CompletedDate: "2024-01-12"},
		{ID: "c", AthleteID: "1", CompletedDate: "2024-01-15"},
	}))

	got, err := workouts.ListByAthlete(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestSessionDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	sessions := New().Sessions()
	require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "s1", UserID: "u1"}))
	require.NoError(t, sessions.Delete(ctx, "s1"))
	require.NoError(t, sessions.Delete(ctx, "s1"))

	_, err := sessions.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionCreateDropsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := New()
	sessions := store.Sessions()
	now := time.Now()
	require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "old", UserID: "u1", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "live", UserID: "u1", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "new", UserID: "u2", ExpiresAt: now.Add(time.Hour)}))

	_, err := sessions.GetByID(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	for _, id := range []string{"live", "new"} {
		_, err := sessions.GetByID(ctx, id)
		assert.NoError(t, err, id)
	}
	store.mu.RLock()
	assert.Len(t, store.sessions, 2)
	store.mu.RUnlock()
}

func TestConversationsAreCopiedOut(t *testing.T) {
	ctx := context.Background()
	convs := New().Conversations()
	require.NoError(t, convs.CreateMany(ctx, []domain.Conversation{
		{ID: "c1", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Messages: []domain.Message{{ID: "1", Sender: domain.SenderAthlete}}},
		{ID: "c2", UpdatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}))

	before, err := convs.GetByID(ctx, "c1")
	require.NoError(t, err)

	at := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, convs.AppendMessage(ctx, "c1", domain.Message{ID: "2", Sender: domain.SenderCoach}, at))
	require.NoError(t, convs.MarkRead(ctx, "c1", domain.SenderCoach))

	assert.Len(t, before.Messages, 1)
	assert.False(t, before.Messages[0].Read)

	list, err := convs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.True(t, list[0].Messages[0].Read)
	assert.False(t, list[0].Messages[1].Read, "own messages stay unread for the other side")

	assert.ErrorIs(t, convs.AppendMessage(ctx, "nope", domain.Message{}, at), repository.ErrNotFound)
	assert.ErrorIs(t, convs.MarkRead(ctx, "nope", domain.SenderCoach), repository.ErrNotFound)
}
