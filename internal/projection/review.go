package projection

import "alcyxob/coach-studio/internal/domain"

// RPEBand buckets a set's rate of perceived exertion for display.
type RPEBand string

const (
	RPENone     RPEBand = ""
	RPEEasy     RPEBand = "easy"
	RPEModerate RPEBand = "moderate"
	RPEHard     RPEBand = "hard"
)

// BandFor maps an RPE value to its band. A nil RPE has no band.
func BandFor(rpe *float64) RPEBand {
	switch {
	case rpe == nil:
		return RPENone
	case *rpe <= 6:
		return RPEEasy
	case *rpe <= 8:
		return RPEModerate
	default:
		return RPEHard
	}
}

type ExerciseReview struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SetsTotal     int       `json:"setsTotal"`
	SetsCompleted int       `json:"setsCompleted"`
	FormIssues    int       `json:"formIssues"`
	SetBands      []RPEBand `json:"setBands"`
}

// ReviewView is the quick-stats sidebar of the workout review screen.
type ReviewView struct {
	TotalSets     int                `json:"totalSets"`
	CompletedSets int                `json:"completedSets"`
	AverageRPE    *float64           `json:"averageRpe,omitempty"`
	FormIssues    int                `json:"formIssues"`
	MuscleGroups  []MuscleGroupCount `json:"muscleGroups"`
	Exercises     []ExerciseReview   `json:"exercises"`
}

// Review projects a completed workout.
func Review(cw domain.CompletedWorkout) ReviewView {
	v := ReviewView{
		FormIssues:   TotalFormIssues(cw.Exercises),
		MuscleGroups: MuscleGroupsInOrder(cw.Exercises),
		Exercises:    make([]ExerciseReview, 0, len(cw.Exercises)),
	}
	for _, ex := range cw.Exercises {
		er := ExerciseReview{
			ID:        ex.ID,
			Name:      ex.Name,
			SetsTotal: len(ex.Sets),
			SetBands:  make([]RPEBand, 0, len(ex.Sets)),
		}
		for _, s := range ex.Sets {
			if s.Completed {
				er.SetsCompleted++
			}
			er.FormIssues += len(s.FormIssues)
			er.SetBands = append(er.SetBands, BandFor(s.RPE))
		}
		v.TotalSets += er.SetsTotal
		v.CompletedSets += er.SetsCompleted
		v.Exercises = append(v.Exercises, er)
	}
	if avg, ok := AverageRPE(cw.Exercises); ok {
		v.AverageRPE = &avg
	}
	return v
}

// AverageRPE is the mean RPE over the sets that recorded one. Sets without an
// RPE count toward neither the sum nor the divisor; ok is false when no set has one.
func AverageRPE(exercises []domain.CompletedExercise) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			if s.RPE == nil {
				continue
			}
			sum += *s.RPE
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// TotalFormIssues sums the form issues flagged on every set.
func TotalFormIssues(exercises []domain.CompletedExercise) int {
	n := 0
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			n += len(s.FormIssues)
		}
	}
	return n
}

// MuscleGroupsInOrder counts exercises per exact muscle group, listing groups
// in the order they first appear.
func MuscleGroupsInOrder(exercises []domain.CompletedExercise) []MuscleGroupCount {
	out := []MuscleGroupCount{}
	index := make(map[string]int)
	for _, ex := range exercises {
		i, seen := index[ex.MuscleGroup]
		if !seen {
			i = len(out)
			index[ex.MuscleGroup] = i
			out = append(out, MuscleGroupCount{Group: ex.MuscleGroup})
		}
		out[i].Count++
	}
	return out
}
