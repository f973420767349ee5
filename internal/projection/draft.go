// Package projection derives read-only display values from workout aggregates
// and completed workouts. Every function is pure and recomputed on each call.
package projection

import (
	"strings"

	"alcyxob/coach-studio/internal/domain"
)

// Palette is the fixed set of muscle groups the builder sidebar counts exercises against.
var Palette = []string{"Chest", "Back", "Shoulders", "Arms", "Legs", "Core"}

// MuscleGroupCount is how many exercises fall under one muscle group.
type MuscleGroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// DraftView is what the builder shows next to the draft it is editing.
type DraftView struct {
	Type             domain.WorkoutType `json:"type"`
	AssignedAthletes int                `json:"assignedAthletes"`

	// Strength
	ExerciseCount       int                `json:"exerciseCount"`
	WarmupExerciseCount int                `json:"warmupExerciseCount"`
	SetCounts           map[string]int     `json:"setCounts,omitempty"` // Exercise id -> sets
	TotalSets           int                `json:"totalSets"`
	MuscleGroups        []MuscleGroupCount `json:"muscleGroups,omitempty"`

	// Running
	SegmentCount      int            `json:"segmentCount"`
	IntervalCounts    map[string]int `json:"intervalCounts,omitempty"` // Group id -> intervals
	EstimatedDuration float64        `json:"estimatedDuration"`        // Minutes
	TotalDistance     float64        `json:"totalDistance"`
}

// Draft projects a workout being built. A nil workout gives the zero view.
func Draft(w domain.Workout) DraftView {
	if w == nil {
		return DraftView{}
	}
	v := DraftView{
		Type:             w.Type(),
		AssignedAthletes: len(w.Head().AssignedAthletes),
	}
	switch t := w.(type) {
	case domain.StrengthWorkout:
		v.ExerciseCount = len(t.Exercises)
		v.WarmupExerciseCount = len(t.WarmupExercises)
		v.SetCounts = make(map[string]int, len(t.Exercises)+len(t.WarmupExercises))
		for _, list := range [][]domain.StrengthExercise{t.WarmupExercises, t.Exercises} {
			for _, ex := range list {
				v.SetCounts[ex.ID] = len(ex.Sets)
				v.TotalSets += len(ex.Sets)
			}
		}
		v.MuscleGroups = PaletteCounts(t.Exercises)
	case domain.RunningWorkout:
		v.SegmentCount = len(t.Segments)
		v.IntervalCounts = make(map[string]int)
		for _, s := range t.Segments {
			if g, ok := s.(domain.IntervalGroup); ok {
				v.IntervalCounts[g.ID] = len(g.Intervals)
			}
		}
		v.EstimatedDuration = EstimatedDuration(t)
		v.TotalDistance = TotalDistance(t)
	}
	return v
}

// PaletteCounts counts, for each palette group, the exercises whose muscle group
// contains the palette name, ignoring case. An exercise may count toward several groups.
func PaletteCounts(exercises []domain.StrengthExercise) []MuscleGroupCount {
	out := make([]MuscleGroupCount, 0, len(Palette))
	for _, group := range Palette {
		needle := strings.ToLower(group)
		n := 0
		for _, ex := range exercises {
			if strings.Contains(strings.ToLower(ex.MuscleGroup), needle) {
				n++
			}
		}
		out = append(out, MuscleGroupCount{Group: group, Count: n})
	}
	return out
}

// EstimatedDuration sums segment durations in minutes. An interval group
// contributes its repetitions (1 when unset) times the sum of its intervals.
func EstimatedDuration(w domain.RunningWorkout) float64 {
	return sumSegments(w.Segments, func(d, _ *float64) *float64 { return d })
}

// TotalDistance is EstimatedDuration for distances.
func TotalDistance(w domain.RunningWorkout) float64 {
	return sumSegments(w.Segments, func(_, d *float64) *float64 { return d })
}

func sumSegments(segments []domain.Segment, pick func(duration, distance *float64) *float64) float64 {
	var total float64
	for _, s := range segments {
		g, ok := s.(domain.IntervalGroup)
		if !ok {
			b := s.Base()
			total += deref(pick(b.Duration, b.Distance))
			continue
		}
		var perRep float64
		for _, iv := range g.Intervals {
			perRep += deref(pick(iv.Duration, iv.Distance))
		}
		reps := 1
		if g.Repetitions != nil {
			reps = *g.Repetitions
		}
		total += float64(reps) * perRep
	}
	return total
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
