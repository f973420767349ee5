package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/domain"
)

func library() *Catalog {
	return New([]domain.CatalogExercise{
		{ID: "1", Name: "Bench Press", Type: domain.ExerciseStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
		{ID: "2", Name: "Pull-ups", Type: domain.ExerciseStrength, MuscleGroups: []string{"back", "biceps"}},
		{ID: "14", Name: "Burpees", Type: domain.ExerciseCardio, MuscleGroups: []string{"full body"}},
		{ID: "16", Name: "Plank", Type: domain.ExerciseFlexibility, MuscleGroups: []string{"core", "shoulders"}},
		{ID: "23", Name: "Box Jumps", Type: domain.ExerciseOther, MuscleGroups: []string{"legs", "glutes"}},
	})
}

func names(entries []domain.CatalogExercise) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	c := library()
	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"all", Filter{}, []string{"Bench Press", "Pull-ups", "Burpees", "Plank", "Box Jumps"}},
		{"type", Filter{Type: domain.ExerciseStrength}, []string{"Bench Press", "Pull-ups"}},
		{"muscle group is exact", Filter{MuscleGroup: "shoulders"}, []string{"Bench Press", "Plank"}},
		{"muscle group partial misses", Filter{MuscleGroup: "shoulder"}, []string{}},
		{"search name", Filter{Search: "PRESS"}, []string{"Bench Press"}},
		{"search muscle group", Filter{Search: "bicep"}, []string{"Pull-ups"}},
		{"combined", Filter{Type: domain.ExerciseFlexibility, Search: "shoulders"}, []string{"Plank"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(c.Filter(tc.f)))
		})
	}
}

func TestLookup(t *testing.T) {
	c := library()
	e, ok := c.Lookup("16")
	require.True(t, ok)
	assert.Equal(t, "Plank", e.Name)

	_, ok = c.Lookup("99")
	assert.False(t, ok)
	assert.Equal(t, 5, c.Len())
}

func TestMuscleGroupsAndTypes(t *testing.T) {
	c := library()
	assert.Equal(t, []string{"back", "biceps", "chest", "core", "full body", "glutes", "legs", "shoulders", "triceps"}, c.MuscleGroups())
	assert.Equal(t, []domain.ExerciseType{"cardio", "flexibility", "other", "strength"}, c.Types())
	assert.Empty(t, New(nil).MuscleGroups())
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []domain.CatalogExercise{{ID: "1", Name: "Squats"}}
	c := New(entries)
	entries[0].Name = "changed"
	e, _ := c.Lookup("1")
	assert.Equal(t, "Squats", e.Name)
}
