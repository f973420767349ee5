package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/coach-studio/internal/domain"
)

func TestSortCatalog(t *testing.T) {
	exercises := []domain.CatalogExercise{
		{ID: "10", Name: "Overhead Press"},
		{ID: "c7e1", Name: "zercher squat"},
		{ID: "2", Name: "Pull-ups"},
		{ID: "a9f0", Name: "Landmine Row"},
		{ID: "1", Name: "Bench Press"},
	}
	sortCatalog(exercises)

	var got []string
	for _, e := range exercises {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"1", "2", "10", "a9f0", "c7e1"}, got)
}
