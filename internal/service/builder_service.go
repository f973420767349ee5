package service

import (
	"alcyxob/coach-studio/internal/builder"
	"alcyxob/coach-studio/internal/config"
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/projection"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoDraft            = errors.New("no workout draft for this session")
	ErrInvalidWorkoutType = errors.New("workout type must be strength or running")
	ErrInvalidSegmentType = errors.New("unknown segment type")
	ErrWrongWorkoutType   = errors.New("operation does not apply to this workout type")
)

// Draft is the workout a coach is composing, with its derived view.
type Draft struct {
	Workout domain.Workout       `json:"workout"`
	View    projection.DraftView `json:"view"`
}

type BuilderService interface {
	// Start replaces the session's draft with an empty workout of type t.
	// The draft is dropped once expiresAt passes; a zero expiresAt keeps it until discarded.
	Start(ctx context.Context, sessionID string, expiresAt time.Time, t domain.WorkoutType) (*Draft, error)
	Current(ctx context.Context, sessionID string) (*Draft, error)
	Discard(ctx context.Context, sessionID string)

	SetFields(ctx context.Context, sessionID string, fields map[builder.HeaderField]string) (*Draft, error)
	ToggleAthlete(ctx context.Context, sessionID, athleteID string) (*Draft, error)

	// AddExercise copies a catalog exercise into the draft and returns the new exercise id.
	AddExercise(ctx context.Context, sessionID, exerciseID string, warmup bool) (*Draft, string, error)
	ApplyTemplate(ctx context.Context, sessionID, templateID string) (*Draft, error)
	AddSet(ctx context.Context, sessionID, exerciseID string) (*Draft, string, error)
	AddSegment(ctx context.Context, sessionID string, variant domain.SegmentVariant) (*Draft, string, error)
	AddInterval(ctx context.Context, sessionID, groupID string) (*Draft, string, error)

	UpdateNode(ctx context.Context, sessionID, nodeID string, patch builder.NodePatch) (*Draft, error)
	RemoveNode(ctx context.Context, sessionID, nodeID string) (*Draft, error)

	SessionListener
}

type draftSlot struct {
	b         *builder.Builder
	workout   domain.Workout
	expiresAt time.Time
}

func (d *draftSlot) expired(now time.Time) bool {
	return !d.expiresAt.IsZero() && !now.Before(d.expiresAt)
}

type builderService struct {
	catalogService CatalogService
	rosterService  RosterService
	idSource       string
	logger         *zap.Logger
	now            func() time.Time

	mu     sync.Mutex
	drafts map[string]*draftSlot
}

// NewBuilderService keeps one draft per session in memory. Drafts are never persisted
// and do not outlive their session.
func NewBuilderService(
	catalogService CatalogService,
	rosterService RosterService,
	idSource string,
	logger *zap.Logger,
) BuilderService {
	return &builderService{
		catalogService: catalogService,
		rosterService:  rosterService,
		idSource:       idSource,
		logger:         logger,
		now:            time.Now,
		drafts:         make(map[string]*draftSlot),
	}
}

func (s *builderService) newBuilder(sessionID string) *builder.Builder {
	var ids builder.IDSource = builder.UUIDs{}
	if s.idSource == config.IDSourceCounter {
		ids = builder.NewCounterIDs("")
	}
	return builder.New(ids, builder.WithMissHook(func(op, id string) {
		s.logger.Debug("Builder operation ignored unknown id",
			zap.String("op", op),
			zap.String("id", id),
			zap.String("sessionId", sessionID),
		)
	}))
}

func (s *builderService) Start(ctx context.Context, sessionID string, expiresAt time.Time, t domain.WorkoutType) (*Draft, error) {
	if !t.Valid() {
		return nil, ErrInvalidWorkoutType
	}
	b := s.newBuilder(sessionID)
	slot := &draftSlot{b: b, workout: b.NewWorkout(t), expiresAt: expiresAt}

	s.mu.Lock()
	s.sweepLocked()
	s.drafts[sessionID] = slot
	s.mu.Unlock()

	s.logger.Debug("Draft started", zap.String("sessionId", sessionID), zap.String("type", string(t)))
	return newDraft(slot.workout), nil
}

func (s *builderService) Current(ctx context.Context, sessionID string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, err := s.slotLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return newDraft(slot.workout), nil
}

func (s *builderService) Discard(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
}

// SessionEnded drops the draft of a session that signed out.
func (s *builderService) SessionEnded(sessionID string) {
	s.Discard(context.Background(), sessionID)
}

func (s *builderService) SetFields(ctx context.Context, sessionID string, fields map[builder.HeaderField]string) (*Draft, error) {
	return s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		for f, v := range fields {
			w = b.SetField(w, f, v)
		}
		return w, nil
	})
}

// ToggleAthlete only assigns athletes on the roster. Removing one is always allowed.
func (s *builderService) ToggleAthlete(ctx context.Context, sessionID, athleteID string) (*Draft, error) {
	current, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	assigned := false
	for _, id := range current.Workout.Head().AssignedAthletes {
		if id == athleteID {
			assigned = true
			break
		}
	}
	if !assigned {
		if _, err := s.rosterService.GetAthlete(ctx, athleteID); err != nil {
			return nil, err
		}
	}
	return s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		return b.ToggleAssignedAthlete(w, athleteID), nil
	})
}

func (s *builderService) AddExercise(ctx context.Context, sessionID, exerciseID string, warmup bool) (*Draft, string, error) {
	entry, err := s.catalogService.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, "", err
	}
	var newID string
	d, err := s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		if w.Type() != domain.WorkoutStrength {
			return w, ErrWrongWorkoutType
		}
		if warmup {
			w, newID = b.AddWarmupExercise(w, *entry)
		} else {
			w, newID = b.AddExercise(w, *entry)
		}
		return w, nil
	})
	return d, newID, err
}

func (s *builderService) ApplyTemplate(ctx context.Context, sessionID, templateID string) (*Draft, error) {
	tpl, err := s.catalogService.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	lib, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		if w.Type() != domain.WorkoutStrength {
			return w, ErrWrongWorkoutType
		}
		return b.ApplyTemplate(w, *tpl, lib.Lookup), nil
	})
}

func (s *builderService) AddSet(ctx context.Context, sessionID, exerciseID string) (*Draft, string, error) {
	var newID string
	d, err := s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		w, newID = b.AddSet(w, exerciseID)
		return w, nil
	})
	return d, newID, err
}

func (s *builderService) AddSegment(ctx context.Context, sessionID string, variant domain.SegmentVariant) (*Draft, string, error) {
	if !variant.Valid() {
		return nil, "", ErrInvalidSegmentType
	}
	var newID string
	d, err := s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		if w.Type() != domain.WorkoutRunning {
			return w, ErrWrongWorkoutType
		}
		w, newID = b.AddSegment(w, variant)
		return w, nil
	})
	return d, newID, err
}

func (s *builderService) AddInterval(ctx context.Context, sessionID, groupID string) (*Draft, string, error) {
	var newID string
	d, err := s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		w, newID = b.AddIntervalToGroup(w, groupID)
		return w, nil
	})
	return d, newID, err
}

func (s *builderService) UpdateNode(ctx context.Context, sessionID, nodeID string, patch builder.NodePatch) (*Draft, error) {
	return s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		return b.UpdateNode(w, nodeID, patch), nil
	})
}

func (s *builderService) RemoveNode(ctx context.Context, sessionID, nodeID string) (*Draft, error) {
	return s.edit(sessionID, func(b *builder.Builder, w domain.Workout) (domain.Workout, error) {
		return b.RemoveNode(w, nodeID), nil
	})
}

// edit runs fn against the session's draft and stores its result.
// When fn fails the draft is left as it was.
func (s *builderService) edit(sessionID string, fn func(*builder.Builder, domain.Workout) (domain.Workout, error)) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, err := s.slotLocked(sessionID)
	if err != nil {
		return nil, err
	}
	next, err := fn(slot.b, slot.workout)
	if err != nil {
		return nil, err
	}
	slot.workout = next
	return newDraft(next), nil
}

// slotLocked returns the session's live draft, dropping it if its session has expired.
func (s *builderService) slotLocked(sessionID string) (*draftSlot, error) {
	slot, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	if slot.expired(s.now()) {
		delete(s.drafts, sessionID)
		return nil, ErrNoDraft
	}
	return slot, nil
}

// sweepLocked drops the drafts of every expired session.
func (s *builderService) sweepLocked() {
	now := s.now()
	for id, slot := range s.drafts {
		if slot.expired(now) {
			delete(s.drafts, id)
			s.logger.Debug("Draft expired with its session", zap.String("sessionId", id))
		}
	}
}

func newDraft(w domain.Workout) *Draft {
	return &Draft{Workout: w, View: projection.Draft(w)}
}
