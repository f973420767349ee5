package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository/memory"
)

func repos(store *memory.Store) Repositories {
	return Repositories{
		Users:             store.Users(),
		Athletes:          store.Athletes(),
		Exercises:         store.Exercises(),
		Templates:         store.Templates(),
		CompletedWorkouts: store.CompletedWorkouts(),
		PlannedWorkouts:   store.PlannedWorkouts(),
		Conversations:     store.Conversations(),
	}
}

func TestDefaultData(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Users, 2)
	assert.Len(t, d.Athletes, 4)
	assert.Len(t, d.Exercises, 25)
	assert.Len(t, d.Templates, 4)
	require.Len(t, d.CompletedWorkouts, 1)

	coach := d.Users[0]
	assert.Equal(t, "coach@example.com", coach.Email)
	assert.Equal(t, domain.RoleCoach, coach.Role)
	assert.Equal(t, "password123", coach.Password)

	sarah := d.Athletes[0]
	assert.Equal(t, domain.AthleteActive, sarah.Status)
	assert.True(t, sarah.JoinedDate.Equal(time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 93.0, sarah.Stats.CompletionRate)
	assert.Len(t, sarah.RecentWorkouts, 3)

	plank := d.Templates[3].Exercises[0]
	assert.Nil(t, plank.Reps)
	require.NotNil(t, plank.Duration)
	assert.Equal(t, 60, *plank.Duration)

	review := d.CompletedWorkouts[0]
	set := review.Exercises[0].Sets[2]
	require.NotNil(t, set.RPE)
	assert.Equal(t, 9.0, *set.RPE)
	assert.Equal(t, []string{"elbow_flare", "incomplete_lockout"}, set.FormIssues)
	assert.Equal(t, "form-videos/1/bench-press.mp4", review.Exercises[0].FormVideoKey)
	assert.Equal(t, 1.5, review.Exercises[2].Sets[0].RestPeriod)

	require.Len(t, d.PlannedWorkouts, 6)
	draft := d.PlannedWorkouts[3]
	assert.Equal(t, domain.PlanDraft, draft.Status)
	assert.Nil(t, draft.ScheduledDate)
	assert.Empty(t, draft.AssignedAthletes)
	require.NotNil(t, d.PlannedWorkouts[0].ScheduledDate)
	assert.True(t, d.PlannedWorkouts[0].ScheduledDate.Equal(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)))

	require.Len(t, d.Conversations, 4)
	mike := d.Conversations[1]
	assert.Equal(t, "2", mike.AthleteID)
	require.Len(t, mike.Messages, 2)
	assert.False(t, mike.Messages[1].Read)
	assert.Equal(t, domain.SenderAthlete, mike.Messages[1].Sender)
}

func TestConversationsReferenceRosterAthletes(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	roster := make(map[string]string)
	for _, a := range d.Athletes {
		roster[a.ID] = a.Name
	}
	for _, c := range d.Conversations {
		assert.Equal(t, roster[c.AthleteID], c.AthleteName, "conversation %s", c.ID)
	}
}

func TestTemplatesReferenceKnownExercises(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	known := make(map[string]bool)
	for _, e := range d.Exercises {
		known[e.ID] = true
	}
	for _, tpl := range d.Templates {
		for _, line := range tpl.Exercises {
			assert.True(t, known[line.ExerciseID], "template %s uses unknown exercise %s", tpl.Name, line.ExerciseID)
			assert.True(t, (line.Reps == nil) != (line.Duration == nil), "template %s line %s needs reps or duration", tpl.Name, line.ExerciseID)
		}
	}
}

func TestApplyFillsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	d, err := Default()
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, d, repos(store), zap.NewNop()))

	n, err := store.Exercises().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 25, n)

	coach, err := store.Users().GetByEmail(ctx, "coach@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", coach.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte("password123")))
}

func TestApplySkipsPopulatedCollections(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Athletes().CreateMany(ctx, []domain.AthleteRosterEntry{{ID: "x", Name: "Existing"}}))

	d, err := Default()
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, d, repos(store), zap.NewNop()))
	// Second run changes nothing.
	require.NoError(t, Apply(ctx, d, repos(store), zap.NewNop()))

	athletes, err := store.Athletes().List(ctx)
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, "Existing", athletes[0].Name)

	n, err := store.Users().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
