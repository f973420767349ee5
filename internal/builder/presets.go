package builder

import (
	"alcyxob/coach-studio/internal/domain"
)

const (
	defaultReps       = 10
	defaultWeight     = 0.0
	defaultRestPeriod = 2.0 // Minutes

	defaultMuscleGroup = "General"
	defaultDescription = "No description available"

	defaultGroupRepetitions = 4
)

var segmentNames = map[domain.SegmentVariant]string{
	domain.SegmentWarmup:        "Warm-up",
	domain.SegmentCooldown:      "Cool-down",
	domain.SegmentInterval:      "Interval",
	domain.SegmentRecovery:      "Recovery",
	domain.SegmentIntervalGroup: "Interval Block",
	domain.SegmentMain:          "Main Run",
}

func defaultSet(id string) domain.ExerciseSet {
	return domain.ExerciseSet{
		ID:         id,
		Reps:       ptr(defaultReps),
		Weight:     ptr(defaultWeight),
		RestPeriod: ptr(defaultRestPeriod),
	}
}

func exerciseFromCatalog(id, setID string, entry domain.CatalogExercise) domain.StrengthExercise {
	muscle := defaultMuscleGroup
	if len(entry.MuscleGroups) > 0 {
		muscle = entry.MuscleGroups[0]
	}
	desc := entry.Instructions
	if desc == "" {
		desc = entry.Description
	}
	if desc == "" {
		desc = defaultDescription
	}
	return domain.StrengthExercise{
		ID:          id,
		Name:        entry.Name,
		MuscleGroup: muscle,
		Description: desc,
		Sets:        []domain.ExerciseSet{defaultSet(setID)},
	}
}

func (b *Builder) newSegment(variant domain.SegmentVariant) domain.Segment {
	base := domain.SegmentBase{
		ID:   b.ids.NextID(),
		Name: segmentNames[variant],
	}
	if variant == domain.SegmentWarmup || variant == domain.SegmentCooldown {
		base.Duration = ptr(10.0)
		base.Intensity = ptr(domain.Intensity(1))
	} else {
		base.Duration = ptr(30.0)
		base.Intensity = ptr(domain.Intensity(3))
	}
	if variant != domain.SegmentIntervalGroup {
		return domain.SteadySegment{SegmentBase: base, Kind: variant}
	}
	return domain.IntervalGroup{
		SegmentBase: base,
		Repetitions: ptr(defaultGroupRepetitions),
		Intervals: []domain.RunningInterval{
			{
				ID:        b.ids.NextID(),
				Name:      "Work",
				Duration:  ptr(3.0),
				Intensity: ptr(domain.Intensity(4)),
				Kind:      domain.IntervalWork,
			},
			{
				ID:        b.ids.NextID(),
				Name:      "Rest",
				Duration:  ptr(1.0),
				Intensity: ptr(domain.Intensity(1)),
				Kind:      domain.IntervalRest,
			},
		},
	}
}

func (b *Builder) newInterval() domain.RunningInterval {
	return domain.RunningInterval{
		ID:        b.ids.NextID(),
		Name:      "Interval",
		Duration:  ptr(2.0),
		Intensity: ptr(domain.Intensity(3)),
		Kind:      domain.IntervalWork,
	}
}
