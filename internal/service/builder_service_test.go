package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alcyxob/coach-studio/internal/builder"
	"alcyxob/coach-studio/internal/config"
	"alcyxob/coach-studio/internal/domain"
)

func newBuilderService(t *testing.T) BuilderService {
	t.Helper()
	store := seededStore(t)
	catalogSvc := NewCatalogService(store.Exercises(), store.Templates())
	rosterSvc := NewRosterService(store.Athletes())
	return NewBuilderService(catalogSvc, rosterSvc, config.IDSourceCounter, zap.NewNop())
}

func TestBuilderServiceRequiresDraft(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)

	_, err := svc.Current(ctx, "s1")
	assert.ErrorIs(t, err, ErrNoDraft)
	_, _, err = svc.AddSet(ctx, "s1", "1")
	assert.ErrorIs(t, err, ErrNoDraft)

	_, err = svc.Start(ctx, "s1", time.Time{}, "yoga")
	assert.ErrorIs(t, err, ErrInvalidWorkoutType)
}

func TestBuilderServiceStrengthDraft(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)

	d, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutStrength, d.View.Type)

	d, err = svc.SetFields(ctx, "s1", map[builder.HeaderField]string{
		builder.FieldName:  "Push Day",
		builder.FieldNotes: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Push Day", d.Workout.Head().Name)

	d, benchID, err := svc.AddExercise(ctx, "s1", "1", false)
	require.NoError(t, err)
	require.NotEmpty(t, benchID)
	d, _, err = svc.AddExercise(ctx, "s1", "16", true)
	require.NoError(t, err)
	assert.Equal(t, 1, d.View.ExerciseCount)
	assert.Equal(t, 1, d.View.WarmupExerciseCount)

	d, setID, err := svc.AddSet(ctx, "s1", benchID)
	require.NoError(t, err)
	assert.Equal(t, 2, d.View.SetCounts[benchID])

	d, err = svc.UpdateNode(ctx, "s1", setID, builder.SetPatch{Reps: builder.To(5)})
	require.NoError(t, err)
	sw := d.Workout.(domain.StrengthWorkout)
	require.NotNil(t, sw.Exercises[0].Sets[1].Reps)
	assert.Equal(t, 5, *sw.Exercises[0].Sets[1].Reps)

	d, err = svc.RemoveNode(ctx, "s1", benchID)
	require.NoError(t, err)
	assert.Equal(t, 0, d.View.ExerciseCount)
	assert.Equal(t, 1, d.View.TotalSets)

	// The stored draft is the last result.
	current, err := svc.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, d.View, current.View)
}

func TestBuilderServiceUnknownCatalogEntry(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)

	_, _, err = svc.AddExercise(ctx, "s1", "999", false)
	assert.ErrorIs(t, err, ErrCatalogExerciseNotFound)

	_, err = svc.ApplyTemplate(ctx, "s1", "999")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestBuilderServiceApplyTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)

	d, err := svc.ApplyTemplate(ctx, "s1", "1")
	require.NoError(t, err)
	assert.Equal(t, 5, d.View.ExerciseCount)
	assert.Equal(t, 14, d.View.TotalSets)
}

func TestBuilderServiceRunningDraft(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutRunning)
	require.NoError(t, err)

	_, _, err = svc.AddExercise(ctx, "s1", "1", false)
	assert.ErrorIs(t, err, ErrWrongWorkoutType)

	_, _, err = svc.AddSegment(ctx, "s1", "sprint")
	assert.ErrorIs(t, err, ErrInvalidSegmentType)

	d, warmupID, err := svc.AddSegment(ctx, "s1", domain.SegmentWarmup)
	require.NoError(t, err)
	d, groupID, err := svc.AddSegment(ctx, "s1", domain.SegmentIntervalGroup)
	require.NoError(t, err)
	assert.Equal(t, 2, d.View.IntervalCounts[groupID])

	d, intervalID, err := svc.AddInterval(ctx, "s1", groupID)
	require.NoError(t, err)
	assert.NotEmpty(t, intervalID)
	assert.Equal(t, 3, d.View.IntervalCounts[groupID])

	// Intervals only go into groups.
	d, noID, err := svc.AddInterval(ctx, "s1", warmupID)
	require.NoError(t, err)
	assert.Empty(t, noID)
	assert.Equal(t, 2, d.View.SegmentCount)

	// Warm-up 10 + 4 x (3 + 1 + 2).
	assert.Equal(t, 34.0, d.View.EstimatedDuration)
}

func TestBuilderServiceToggleAthlete(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)

	d, err := svc.ToggleAthlete(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, d.Workout.Head().AssignedAthletes)

	_, err = svc.ToggleAthlete(ctx, "s1", "404")
	assert.ErrorIs(t, err, ErrAthleteNotFound)

	d, err = svc.ToggleAthlete(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Empty(t, d.Workout.Head().AssignedAthletes)
}

func TestBuilderServiceDraftsArePerSession(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)

	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)
	_, err = svc.Start(ctx, "s2", time.Time{}, domain.WorkoutRunning)
	require.NoError(t, err)

	svc.SessionEnded("s1")

	_, err = svc.Current(ctx, "s1")
	assert.ErrorIs(t, err, ErrNoDraft)
	d, err := svc.Current(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutRunning, d.View.Type)
}

func TestBuilderServiceConcurrentEdits(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	_, err := svc.Start(ctx, "s1", time.Time{}, domain.WorkoutRunning)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.AddSegment(ctx, "s1", domain.SegmentMain)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	d, err := svc.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 20, d.View.SegmentCount)
}

func TestBuilderServiceDraftExpiresWithSession(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	impl := svc.(*builderService)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return now }

	_, err := svc.Start(ctx, "short", now.Add(time.Minute), domain.WorkoutStrength)
	require.NoError(t, err)
	_, err = svc.Start(ctx, "long", now.Add(time.Hour), domain.WorkoutRunning)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = svc.Current(ctx, "short")
	assert.ErrorIs(t, err, ErrNoDraft)
	_, _, err = svc.AddSegment(ctx, "long", domain.SegmentWarmup)
	require.NoError(t, err)

	impl.mu.Lock()
	assert.Len(t, impl.drafts, 1)
	impl.mu.Unlock()
}

func TestBuilderServiceStartSweepsExpiredDrafts(t *testing.T) {
	ctx := context.Background()
	svc := newBuilderService(t)
	impl := svc.(*builderService)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return now }

	for _, sid := range []string{"a", "b", "c"} {
		_, err := svc.Start(ctx, sid, now.Add(time.Minute), domain.WorkoutStrength)
		require.NoError(t, err)
	}
	_, err := svc.Start(ctx, "forever", time.Time{}, domain.WorkoutStrength)
	require.NoError(t, err)

	now = now.Add(time.Hour)
	// Nobody touches a, b or c again; a new draft elsewhere clears them out.
	_, err = svc.Start(ctx, "d", now.Add(time.Minute), domain.WorkoutRunning)
	require.NoError(t, err)

	impl.mu.Lock()
	defer impl.mu.Unlock()
	assert.ElementsMatch(t, []string{"forever", "d"}, mapKeys(impl.drafts))
}

func mapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
