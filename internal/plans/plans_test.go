package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/coach-studio/internal/domain"
)

func fixture() []domain.PlannedWorkout {
	return []domain.PlannedWorkout{
		{ID: "1", Name: "Upper Body Strength", Description: "Chest, back and shoulders", Status: domain.PlanAssigned, Type: "strength"},
		{ID: "2", Name: "HIIT Cardio Blast", Description: "High-intensity intervals", Status: domain.PlanCompleted, Type: "cardio"},
		{ID: "3", Name: "Lower Body Power", Description: "Explosive leg work", Status: domain.PlanDraft, Type: "strength"},
		{ID: "4", Name: "Recovery & Mobility", Description: "Active recovery and flexibility work", Status: domain.PlanAssigned, Type: "flexibility"},
	}
}

func ids(ws []domain.PlannedWorkout) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	ws := fixture()
	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"empty query keeps all", Query{}, []string{"1", "2", "3", "4"}},
		{"all options", Query{Status: All, Type: All}, []string{"1", "2", "3", "4"}},
		{"search name ignores case", Query{Search: "HIIT"}, []string{"2"}},
		{"search description", Query{Search: "flexibility"}, []string{"4"}},
		{"status", Query{Status: "assigned"}, []string{"1", "4"}},
		{"type", Query{Type: "strength"}, []string{"1", "3"}},
		{"status and type", Query{Status: "assigned", Type: "strength"}, []string{"1"}},
		{"all three", Query{Search: "body", Status: "draft", Type: "strength"}, []string{"3"}},
		{"unknown status", Query{Status: "archived"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(ws, tc.q)))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, Counts{Total: 4, Assigned: 2, Completed: 1, Draft: 1}, Count(fixture()))
	assert.Equal(t, Counts{}, Count(nil))
}
