package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/catalog"
	"alcyxob/coach-studio/internal/domain"
)

func TestCatalogServiceListAndFilter(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	svc := NewCatalogService(store.Exercises(), store.Templates())

	all, err := svc.ListExercises(ctx, catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 25)

	cardio, err := svc.ListExercises(ctx, catalog.Filter{Type: domain.ExerciseCardio, Search: "row"})
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "Rowing", cardio[0].Name)

	types, err := svc.Types(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ExerciseType{"cardio", "flexibility", "other", "strength"}, types)

	groups, err := svc.MuscleGroups(ctx)
	require.NoError(t, err)
	assert.Contains(t, groups, "chest")

	_, err = svc.GetExercise(ctx, "404")
	assert.ErrorIs(t, err, ErrCatalogExerciseNotFound)

	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 4)
}

func TestCreateCustomExercise(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	svc := NewCatalogService(store.Exercises(), store.Templates())

	created, err := svc.CreateCustomExercise(ctx, CustomExerciseInput{
		Name:         " Sled Push ",
		Type:         domain.ExerciseOther,
		MuscleGroups: []string{"Legs", " ", "Power"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sled Push", created.Name)
	assert.Equal(t, []string{"legs", "power"}, created.MuscleGroups)

	found, err := svc.GetExercise(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sled Push", found.Name)

	_, err = svc.CreateCustomExercise(ctx, CustomExerciseInput{Name: "", Type: domain.ExerciseOther})
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.CreateCustomExercise(ctx, CustomExerciseInput{Name: "Hop", Type: "plyo"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}
