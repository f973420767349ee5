package builder

import (
	"fmt"

	"alcyxob/coach-studio/internal/domain"
)

// CatalogLookup resolves a catalog exercise id.
type CatalogLookup func(id string) (domain.CatalogExercise, bool)

// ApplyTemplate appends one exercise per template line to a strength workout.
// Each line becomes Sets sets of the template's reps with its rest converted to
// minutes; timed lines carry the hold time as a set note instead of reps.
// Lines whose exercise the catalog does not know are skipped.
func (b *Builder) ApplyTemplate(w domain.Workout, tpl domain.WorkoutTemplate, lookup CatalogLookup) domain.Workout {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		return w
	}
	for _, line := range tpl.Exercises {
		entry, ok := lookup(line.ExerciseID)
		if !ok {
			b.miss("ApplyTemplate", line.ExerciseID)
			continue
		}
		ex := exerciseFromCatalog(b.ids.NextID(), "", entry)
		ex.Sets = nil
		for n := 0; n < line.Sets; n++ {
			ex.Sets = append(ex.Sets, templateSet(b.ids.NextID(), line))
		}
		sw.Exercises = appendNode(sw.Exercises, ex)
	}
	return sw
}

func templateSet(id string, line domain.TemplateExercise) domain.ExerciseSet {
	s := domain.ExerciseSet{
		ID:         id,
		Weight:     ptr(defaultWeight),
		RestPeriod: ptr(float64(line.Rest) / 60),
	}
	if line.Reps != nil {
		s.Reps = ptr(*line.Reps)
	}
	if line.Duration != nil {
		s.Notes = ptr(fmt.Sprintf("%ds", *line.Duration))
	}
	return s
}
