package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alcyxob/coach-studio/internal/repository/memory"
	"alcyxob/coach-studio/internal/seed"
)

// seededStore returns an in-memory store holding the demo data.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	d, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), d, seed.Repositories{
		Users:             store.Users(),
		Athletes:          store.Athletes(),
		Exercises:         store.Exercises(),
		Templates:         store.Templates(),
		CompletedWorkouts: store.CompletedWorkouts(),
		PlannedWorkouts:   store.PlannedWorkouts(),
		Conversations:     store.Conversations(),
	}, zap.NewNop()))
	return store
}
