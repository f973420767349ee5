package builder

import "alcyxob/coach-studio/internal/domain"

// Change is an optional edit of one field: absent (zero value), set to a value, or cleared.
type Change[T any] struct {
	present bool
	value   *T
}

// To returns a change that sets the field to v.
func To[T any](v T) Change[T] {
	return Change[T]{present: true, value: &v}
}

// Cleared returns a change that removes the field's value.
func Cleared[T any]() Change[T] {
	return Change[T]{present: true}
}

func (c Change[T]) applyPtr(cur *T) *T {
	if !c.present {
		return cur
	}
	if c.value == nil {
		return nil
	}
	v := *c.value
	return &v
}

func (c Change[T]) applyValue(cur T) T {
	if !c.present {
		return cur
	}
	if c.value == nil {
		var zero T
		return zero
	}
	return *c.value
}

// NodePatch is a partial update of one node kind. The kinds are
// ExercisePatch, SetPatch, SegmentPatch and IntervalPatch.
type NodePatch interface {
	isNodePatch()
}

type ExercisePatch struct {
	Name        Change[string]
	MuscleGroup Change[string]
	Description Change[string]
}

func (ExercisePatch) isNodePatch() {}

func (p ExercisePatch) apply(e domain.StrengthExercise) domain.StrengthExercise {
	e.Name = p.Name.applyValue(e.Name)
	e.MuscleGroup = p.MuscleGroup.applyValue(e.MuscleGroup)
	e.Description = p.Description.applyValue(e.Description)
	return e
}

type SetPatch struct {
	Reps       Change[int]
	Weight     Change[float64]
	RestPeriod Change[float64]
	Completed  Change[bool]
	Notes      Change[string]
}

func (SetPatch) isNodePatch() {}

func (p SetPatch) apply(s domain.ExerciseSet) domain.ExerciseSet {
	s.Reps = p.Reps.applyPtr(s.Reps)
	s.Weight = p.Weight.applyPtr(s.Weight)
	s.RestPeriod = p.RestPeriod.applyPtr(s.RestPeriod)
	s.Completed = p.Completed.applyPtr(s.Completed)
	s.Notes = p.Notes.applyPtr(s.Notes)
	return s
}

// SegmentPatch edits a running segment. Repetitions only applies to interval groups
// and is ignored for every other variant.
type SegmentPatch struct {
	Name            Change[string]
	Duration        Change[float64]
	Distance        Change[float64]
	Pace            Change[string]
	TargetHeartRate Change[domain.HeartRateRange]
	Intensity       Change[domain.Intensity]
	Notes           Change[string]
	Repetitions     Change[int]
}

func (SegmentPatch) isNodePatch() {}

func (p SegmentPatch) apply(s domain.Segment) domain.Segment {
	b := s.Base()
	b.Name = p.Name.applyValue(b.Name)
	b.Duration = p.Duration.applyPtr(b.Duration)
	b.Distance = p.Distance.applyPtr(b.Distance)
	b.Pace = p.Pace.applyPtr(b.Pace)
	b.TargetHeartRate = p.TargetHeartRate.applyPtr(b.TargetHeartRate)
	b.Intensity = p.Intensity.applyPtr(b.Intensity)
	b.Notes = p.Notes.applyPtr(b.Notes)
	s = s.WithBase(b)
	if g, ok := s.(domain.IntervalGroup); ok {
		g.Repetitions = p.Repetitions.applyPtr(g.Repetitions)
		return g
	}
	return s
}

type IntervalPatch struct {
	Name      Change[string]
	Duration  Change[float64]
	Distance  Change[float64]
	Pace      Change[string]
	Intensity Change[domain.Intensity]
	Kind      Change[domain.IntervalVariant]
}

func (IntervalPatch) isNodePatch() {}

func (p IntervalPatch) apply(iv domain.RunningInterval) domain.RunningInterval {
	iv.Name = p.Name.applyValue(iv.Name)
	iv.Duration = p.Duration.applyPtr(iv.Duration)
	iv.Distance = p.Distance.applyPtr(iv.Distance)
	iv.Pace = p.Pace.applyPtr(iv.Pace)
	iv.Intensity = p.Intensity.applyPtr(iv.Intensity)
	iv.Kind = p.Kind.applyValue(iv.Kind)
	return iv
}
