// Package plans filters and counts the coach's workout list.
package plans

import (
	"strings"

	"alcyxob/coach-studio/internal/domain"
)

// All matches every status or type.
const All = "all"

// Query selects workouts. Empty fields match everything.
type Query struct {
	Search string // Name or description
	Status string // A PlanStatus or All
	Type   string
}

func matchesOption(want, got string) bool {
	return want == "" || want == All || want == got
}

// Matches reports whether w satisfies every predicate of q.
func (q Query) Matches(w domain.PlannedWorkout) bool {
	if !matchesOption(q.Status, string(w.Status)) || !matchesOption(q.Type, w.Type) {
		return false
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(w.Name), needle) ||
		strings.Contains(strings.ToLower(w.Description), needle)
}

// Filter returns the workouts matching q, in their original order.
func Filter(workouts []domain.PlannedWorkout, q Query) []domain.PlannedWorkout {
	out := make([]domain.PlannedWorkout, 0, len(workouts))
	for _, w := range workouts {
		if q.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// Counts are the totals shown above the workout list.
type Counts struct {
	Total     int `json:"total"`
	Assigned  int `json:"assigned"`
	Completed int `json:"completed"`
	Draft     int `json:"draft"`
}

func Count(workouts []domain.PlannedWorkout) Counts {
	c := Counts{Total: len(workouts)}
	for _, w := range workouts {
		switch w.Status {
		case domain.PlanAssigned:
			c.Assigned++
		case domain.PlanCompleted:
			c.Completed++
		case domain.PlanDraft:
			c.Draft++
		}
	}
	return c
}
