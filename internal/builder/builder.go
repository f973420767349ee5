// Package builder composes workout aggregates.
//
// Every operation takes the current aggregate and returns a new one; the value
// passed in is never modified, so callers may keep earlier versions around.
// Operations never fail: an id that does not exist in the aggregate makes the
// operation a no-op that returns its input unchanged.
package builder

import (
	"slices"
	"strings"
	"time"

	"alcyxob/coach-studio/internal/domain"
)

// MissHook is told about operations whose target id did not exist.
type MissHook func(op, id string)

type Option func(*Builder)

// WithMissHook reports ignored ids to h. The operations themselves still no-op.
func WithMissHook(h MissHook) Option {
	return func(b *Builder) { b.onMiss = h }
}

// Builder applies edit operations to workout aggregates.
// It is safe for concurrent use if its IDSource is.
type Builder struct {
	ids    IDSource
	onMiss MissHook
}

// New creates a Builder drawing node ids from ids.
func New(ids IDSource, opts ...Option) *Builder {
	if ids == nil {
		ids = NewCounterIDs("")
	}
	b := &Builder{ids: ids}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) miss(op, id string) {
	if b.onMiss != nil {
		b.onMiss(op, id)
	}
}

// NewWorkout returns an empty aggregate of type t, or nil for an unknown type.
func (b *Builder) NewWorkout(t domain.WorkoutType) domain.Workout {
	head := domain.WorkoutHeader{ID: b.ids.NextID()}
	switch t {
	case domain.WorkoutStrength:
		return domain.StrengthWorkout{WorkoutHeader: head}
	case domain.WorkoutRunning:
		return domain.RunningWorkout{WorkoutHeader: head}
	}
	return nil
}

// === Header fields ===

// HeaderField names a scalar top-level field of a workout.
type HeaderField string

const (
	FieldName          HeaderField = "name"
	FieldDescription   HeaderField = "description"
	FieldNotes         HeaderField = "notes"
	FieldScheduledDate HeaderField = "scheduledDate"
)

var scheduleLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// SetField replaces a scalar header field. Blank values are accepted.
// A scheduled date that does not parse clears the date.
func (b *Builder) SetField(w domain.Workout, f HeaderField, value string) domain.Workout {
	if w == nil {
		return nil
	}
	h := w.Head()
	switch f {
	case FieldName:
		h.Name = value
	case FieldDescription:
		h.Description = value
	case FieldNotes:
		h.Notes = value
	case FieldScheduledDate:
		h.ScheduledDate = parseSchedule(value)
	default:
		b.miss("SetField", string(f))
		return w
	}
	return w.WithHead(h)
}

// SetScheduledDate sets or, with nil, clears the scheduled date.
func (b *Builder) SetScheduledDate(w domain.Workout, at *time.Time) domain.Workout {
	if w == nil {
		return nil
	}
	h := w.Head()
	if at == nil {
		h.ScheduledDate = nil
	} else {
		h.ScheduledDate = ptr(*at)
	}
	return w.WithHead(h)
}

func parseSchedule(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// ToggleAssignedAthlete adds athleteID to the assigned athletes, or removes it if present.
func (b *Builder) ToggleAssignedAthlete(w domain.Workout, athleteID string) domain.Workout {
	if w == nil {
		return nil
	}
	h := w.Head()
	if i := slices.Index(h.AssignedAthletes, athleteID); i >= 0 {
		h.AssignedAthletes = removeAt(h.AssignedAthletes, i)
	} else {
		h.AssignedAthletes = appendNode(h.AssignedAthletes, athleteID)
	}
	return w.WithHead(h)
}

// === Generic node operations ===

// NodeKind names what AddNode appends. Every segment variant is also a node kind.
type NodeKind string

const (
	KindExercise       NodeKind = "exercise"
	KindWarmupExercise NodeKind = "warmup_exercise"
)

// SegmentKind is the node kind that appends a segment of variant v.
func SegmentKind(v domain.SegmentVariant) NodeKind { return NodeKind(v) }

// AddNode appends a child of the given kind with its preset defaults and returns
// the new aggregate and the new node's id. A kind that does not fit the aggregate
// returns the input and an empty id.
func (b *Builder) AddNode(w domain.Workout, kind NodeKind) (domain.Workout, string) {
	switch kind {
	case KindExercise:
		return b.AddExercise(w, domain.CatalogExercise{})
	case KindWarmupExercise:
		return b.AddWarmupExercise(w, domain.CatalogExercise{})
	}
	if v := domain.SegmentVariant(kind); v.Valid() {
		return b.AddSegment(w, v)
	}
	return w, ""
}

// UpdateNode merges patch into the node with the given id. The patch type decides
// which kind of node is looked for.
func (b *Builder) UpdateNode(w domain.Workout, id string, patch NodePatch) domain.Workout {
	switch p := patch.(type) {
	case ExercisePatch:
		return b.UpdateExercise(w, id, p)
	case SetPatch:
		if exerciseID, ok := owningExercise(w, id); ok {
			return b.UpdateSet(w, exerciseID, id, p)
		}
	case SegmentPatch:
		return b.UpdateSegment(w, id, p)
	case IntervalPatch:
		if groupID, ok := owningGroup(w, id); ok {
			return b.UpdateInterval(w, groupID, id, p)
		}
	}
	b.miss("UpdateNode", id)
	return w
}

// RemoveNode removes the node with the given id wherever it sits in the tree,
// together with everything nested under it.
func (b *Builder) RemoveNode(w domain.Workout, id string) domain.Workout {
	switch t := w.(type) {
	case domain.StrengthWorkout:
		if out, ok := removeExercise(t, id); ok {
			return out
		}
		if exerciseID, ok := owningExercise(w, id); ok {
			return b.RemoveSet(w, exerciseID, id)
		}
	case domain.RunningWorkout:
		if i := indexOf(t.Segments, id); i >= 0 {
			t.Segments = removeAt(t.Segments, i)
			return t
		}
		if groupID, ok := owningGroup(w, id); ok {
			return b.RemoveIntervalFromGroup(w, groupID, id)
		}
	}
	b.miss("RemoveNode", id)
	return w
}

// === Strength ===

// AddExercise appends an exercise copied from a catalog entry, with one default set.
func (b *Builder) AddExercise(w domain.Workout, entry domain.CatalogExercise) (domain.Workout, string) {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		return w, ""
	}
	ex := exerciseFromCatalog(b.ids.NextID(), b.ids.NextID(), entry)
	sw.Exercises = appendNode(sw.Exercises, ex)
	return sw, ex.ID
}

// AddWarmupExercise is AddExercise for the warm-up list.
func (b *Builder) AddWarmupExercise(w domain.Workout, entry domain.CatalogExercise) (domain.Workout, string) {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		return w, ""
	}
	ex := exerciseFromCatalog(b.ids.NextID(), b.ids.NextID(), entry)
	sw.WarmupExercises = appendNode(sw.WarmupExercises, ex)
	return sw, ex.ID
}

func (b *Builder) UpdateExercise(w domain.Workout, id string, p ExercisePatch) domain.Workout {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		b.miss("UpdateExercise", id)
		return w
	}
	out, found := editExercise(sw, id, func(e domain.StrengthExercise) (domain.StrengthExercise, bool) {
		return p.apply(e), true
	})
	if !found {
		b.miss("UpdateExercise", id)
		return w
	}
	return out
}

func (b *Builder) RemoveExercise(w domain.Workout, id string) domain.Workout {
	if sw, ok := w.(domain.StrengthWorkout); ok {
		if out, ok := removeExercise(sw, id); ok {
			return out
		}
	}
	b.miss("RemoveExercise", id)
	return w
}

// AddSet appends a default set to an exercise and returns the new set's id.
func (b *Builder) AddSet(w domain.Workout, exerciseID string) (domain.Workout, string) {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		b.miss("AddSet", exerciseID)
		return w, ""
	}
	var setID string
	out, found := editExercise(sw, exerciseID, func(e domain.StrengthExercise) (domain.StrengthExercise, bool) {
		setID = b.ids.NextID()
		e.Sets = appendNode(e.Sets, defaultSet(setID))
		return e, true
	})
	if !found {
		b.miss("AddSet", exerciseID)
		return w, ""
	}
	return out, setID
}

func (b *Builder) UpdateSet(w domain.Workout, exerciseID, setID string, p SetPatch) domain.Workout {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		b.miss("UpdateSet", setID)
		return w
	}
	out, found := editExercise(sw, exerciseID, func(e domain.StrengthExercise) (domain.StrengthExercise, bool) {
		i := indexOf(e.Sets, setID)
		if i < 0 {
			return e, false
		}
		e.Sets = replaceAt(e.Sets, i, p.apply(e.Sets[i]))
		return e, true
	})
	if !found {
		b.miss("UpdateSet", setID)
		return w
	}
	return out
}

func (b *Builder) RemoveSet(w domain.Workout, exerciseID, setID string) domain.Workout {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		b.miss("RemoveSet", setID)
		return w
	}
	out, found := editExercise(sw, exerciseID, func(e domain.StrengthExercise) (domain.StrengthExercise, bool) {
		i := indexOf(e.Sets, setID)
		if i < 0 {
			return e, false
		}
		e.Sets = removeAt(e.Sets, i)
		return e, true
	})
	if !found {
		b.miss("RemoveSet", setID)
		return w
	}
	return out
}

// editExercise applies fn to the exercise with the given id in either exercise list.
// fn reports false when it made no change.
func editExercise(sw domain.StrengthWorkout, id string, fn func(domain.StrengthExercise) (domain.StrengthExercise, bool)) (domain.StrengthWorkout, bool) {
	if i := indexOf(sw.Exercises, id); i >= 0 {
		ex, ok := fn(sw.Exercises[i])
		if !ok {
			return sw, false
		}
		sw.Exercises = replaceAt(sw.Exercises, i, ex)
		return sw, true
	}
	if i := indexOf(sw.WarmupExercises, id); i >= 0 {
		ex, ok := fn(sw.WarmupExercises[i])
		if !ok {
			return sw, false
		}
		sw.WarmupExercises = replaceAt(sw.WarmupExercises, i, ex)
		return sw, true
	}
	return sw, false
}

func removeExercise(sw domain.StrengthWorkout, id string) (domain.StrengthWorkout, bool) {
	if i := indexOf(sw.Exercises, id); i >= 0 {
		sw.Exercises = removeAt(sw.Exercises, i)
		return sw, true
	}
	if i := indexOf(sw.WarmupExercises, id); i >= 0 {
		sw.WarmupExercises = removeAt(sw.WarmupExercises, i)
		return sw, true
	}
	return sw, false
}

func owningExercise(w domain.Workout, setID string) (string, bool) {
	sw, ok := w.(domain.StrengthWorkout)
	if !ok {
		return "", false
	}
	for _, list := range [][]domain.StrengthExercise{sw.Exercises, sw.WarmupExercises} {
		for _, ex := range list {
			if indexOf(ex.Sets, setID) >= 0 {
				return ex.ID, true
			}
		}
	}
	return "", false
}

// === Running ===

// AddSegment appends a segment of the given variant with its preset defaults.
func (b *Builder) AddSegment(w domain.Workout, variant domain.SegmentVariant) (domain.Workout, string) {
	rw, ok := w.(domain.RunningWorkout)
	if !ok || !variant.Valid() {
		return w, ""
	}
	seg := b.newSegment(variant)
	rw.Segments = appendNode(rw.Segments, seg)
	return rw, seg.NodeID()
}

func (b *Builder) UpdateSegment(w domain.Workout, id string, p SegmentPatch) domain.Workout {
	rw, ok := w.(domain.RunningWorkout)
	if !ok {
		b.miss("UpdateSegment", id)
		return w
	}
	i := indexOf(rw.Segments, id)
	if i < 0 {
		b.miss("UpdateSegment", id)
		return w
	}
	rw.Segments = replaceAt(rw.Segments, i, p.apply(rw.Segments[i]))
	return rw
}

func (b *Builder) RemoveSegment(w domain.Workout, id string) domain.Workout {
	rw, ok := w.(domain.RunningWorkout)
	if !ok {
		b.miss("RemoveSegment", id)
		return w
	}
	i := indexOf(rw.Segments, id)
	if i < 0 {
		b.miss("RemoveSegment", id)
		return w
	}
	rw.Segments = removeAt(rw.Segments, i)
	return rw
}

// AddIntervalToGroup appends a default work interval to an interval group.
// Any other segment id is a no-op.
func (b *Builder) AddIntervalToGroup(w domain.Workout, groupID string) (domain.Workout, string) {
	var intervalID string
	out, found := b.editGroup(w, groupID, func(g domain.IntervalGroup) (domain.IntervalGroup, bool) {
		iv := b.newInterval()
		intervalID = iv.ID
		g.Intervals = appendNode(g.Intervals, iv)
		return g, true
	})
	if !found {
		b.miss("AddIntervalToGroup", groupID)
		return w, ""
	}
	return out, intervalID
}

func (b *Builder) UpdateInterval(w domain.Workout, groupID, intervalID string, p IntervalPatch) domain.Workout {
	out, found := b.editGroup(w, groupID, func(g domain.IntervalGroup) (domain.IntervalGroup, bool) {
		i := indexOf(g.Intervals, intervalID)
		if i < 0 {
			return g, false
		}
		g.Intervals = replaceAt(g.Intervals, i, p.apply(g.Intervals[i]))
		return g, true
	})
	if !found {
		b.miss("UpdateInterval", intervalID)
		return w
	}
	return out
}

func (b *Builder) RemoveIntervalFromGroup(w domain.Workout, groupID, intervalID string) domain.Workout {
	out, found := b.editGroup(w, groupID, func(g domain.IntervalGroup) (domain.IntervalGroup, bool) {
		i := indexOf(g.Intervals, intervalID)
		if i < 0 {
			return g, false
		}
		g.Intervals = removeAt(g.Intervals, i)
		return g, true
	})
	if !found {
		b.miss("RemoveIntervalFromGroup", intervalID)
		return w
	}
	return out
}

// editGroup applies fn to the interval group with the given id. Segments that are
// not interval groups are treated as not found.
func (b *Builder) editGroup(w domain.Workout, groupID string, fn func(domain.IntervalGroup) (domain.IntervalGroup, bool)) (domain.Workout, bool) {
	rw, ok := w.(domain.RunningWorkout)
	if !ok {
		return w, false
	}
	i := indexOf(rw.Segments, groupID)
	if i < 0 {
		return w, false
	}
	g, ok := rw.Segments[i].(domain.IntervalGroup)
	if !ok {
		return w, false
	}
	g, ok = fn(g)
	if !ok {
		return w, false
	}
	rw.Segments = replaceAt(rw.Segments, i, domain.Segment(g))
	return rw, true
}

func owningGroup(w domain.Workout, intervalID string) (string, bool) {
	rw, ok := w.(domain.RunningWorkout)
	if !ok {
		return "", false
	}
	for _, s := range rw.Segments {
		if g, ok := s.(domain.IntervalGroup); ok && indexOf(g.Intervals, intervalID) >= 0 {
			return g.ID, true
		}
	}
	return "", false
}
