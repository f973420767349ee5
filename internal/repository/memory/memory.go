// Package memory implements the repository interfaces with in-process maps.
// It backs the server when no database is configured and stands in for MongoDB in tests.
package memory

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds every collection. The zero value is not usable; call New.
type Store struct {
	mu        sync.RWMutex
	users     map[string]domain.User
	sessions  map[string]domain.Session
	athletes  []domain.AthleteRosterEntry
	exercises []domain.CatalogExercise
	templates []domain.WorkoutTemplate
	workouts  []domain.CompletedWorkout
	convs     []domain.Conversation
	plans     []domain.PlannedWorkout
}

func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		sessions: make(map[string]domain.Session),
	}
}

func (s *Store) Users() repository.UserRepository                         { return userRepo{s} }
func (s *Store) Sessions() repository.SessionRepository                   { return sessionRepo{s} }
func (s *Store) Athletes() repository.AthleteRepository                   { return athleteRepo{s} }
func (s *Store) Exercises() repository.ExerciseRepository                 { return exerciseRepo{s} }
func (s *Store) Templates() repository.TemplateRepository                 { return templateRepo{s} }
func (s *Store) CompletedWorkouts() repository.CompletedWorkoutRepository { return workoutRepo{s} }
func (s *Store) Conversations() repository.ConversationRepository         { return conversationRepo{s} }
func (s *Store) PlannedWorkouts() repository.PlannedWorkoutRepository     { return planRepo{s} }

// === Users ===

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertUser(user)
}

func (s *Store) insertUser(user *domain.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(user.Email)
	for _, u := range s.users {
		if u.Email == user.Email {
			return "", repository.ErrDuplicate
		}
	}
	if _, taken := s.users[user.ID]; taken {
		return "", repository.ErrDuplicate
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return user.ID, nil
}

func (r userRepo) CreateMany(_ context.Context, users []domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range users {
		if _, err := r.s.insertUser(&users[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	stored.Name = user.Name
	stored.AvatarURL = user.AvatarURL
	stored.Bio = user.Bio
	stored.Location = user.Location
	stored.Phone = user.Phone
	stored.OrganizationID = user.OrganizationID
	stored.UpdatedAt = user.UpdatedAt
	r.s.users[user.ID] = stored
	return nil
}

func (r userRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

// === Sessions ===

type sessionRepo struct{ s *Store }

// Create also drops sessions that have expired, like the TTL index does in MongoDB.
func (r sessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for id, stored := range r.s.sessions {
		if stored.Expired(now) {
			delete(r.s.sessions, id)
		}
	}
	if _, taken := r.s.sessions[session.ID]; taken {
		return repository.ErrDuplicate
	}
	r.s.sessions[session.ID] = *session
	return nil
}

func (r sessionRepo) GetByID(_ context.Context, id string) (*domain.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (r sessionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, id)
	return nil
}

// === Athletes ===

type athleteRepo struct{ s *Store }

func (r athleteRepo) List(context.Context) ([]domain.AthleteRosterEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.athletes), nil
}

func (r athleteRepo) GetByID(_ context.Context, id string) (*domain.AthleteRosterEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.athletes, func(a domain.AthleteRosterEntry) bool { return a.ID == id })
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	a := r.s.athletes[i]
	return &a, nil
}

func (r athleteRepo) CreateMany(_ context.Context, athletes []domain.AthleteRosterEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.athletes = append(r.s.athletes, athletes...)
	return nil
}

func (r athleteRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.athletes)), nil
}

// === Exercise library ===

type exerciseRepo struct{ s *Store }

func (r exerciseRepo) Create(_ context.Context, exercise *domain.CatalogExercise) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if slices.ContainsFunc(r.s.exercises, func(e domain.CatalogExercise) bool { return e.ID == exercise.ID }) {
		return "", repository.ErrDuplicate
	}
	r.s.exercises = append(r.s.exercises, *exercise)
	return exercise.ID, nil
}

func (r exerciseRepo) CreateMany(_ context.Context, exercises []domain.CatalogExercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.exercises = append(r.s.exercises, exercises...)
	return nil
}

func (r exerciseRepo) GetByID(_ context.Context, id string) (*domain.CatalogExercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.exercises, func(e domain.CatalogExercise) bool { return e.ID == id })
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	e := r.s.exercises[i]
	return &e, nil
}

func (r exerciseRepo) List(context.Context) ([]domain.CatalogExercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.exercises), nil
}

func (r exerciseRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.exercises)), nil
}

// === Templates ===

type templateRepo struct{ s *Store }

func (r templateRepo) CreateMany(_ context.Context, templates []domain.WorkoutTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.templates = append(r.s.templates, templates...)
	return nil
}

func (r templateRepo) GetByID(_ context.Context, id string) (*domain.WorkoutTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.templates, func(t domain.WorkoutTemplate) bool { return t.ID == id })
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	t := r.s.templates[i]
	return &t, nil
}

func (r templateRepo) List(context.Context) ([]domain.WorkoutTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.templates), nil
}

func (r templateRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.templates)), nil
}

// === Completed workouts ===

type workoutRepo struct{ s *Store }

func (r workoutRepo) CreateMany(_ context.Context, workouts []domain.CompletedWorkout) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range workouts {
		r.s.workouts = append(r.s.workouts, cloneWorkout(w))
	}
	return nil
}

func (r workoutRepo) GetByID(_ context.Context, id string) (*domain.CompletedWorkout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.workoutIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	w := cloneWorkout(r.s.workouts[i])
	return &w, nil
}

func (r workoutRepo) ListByAthlete(_ context.Context, athleteID string) ([]domain.CompletedWorkout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.CompletedWorkout{}
	for _, w := range r.s.workouts {
		if w.AthleteID == athleteID {
			out = append(out, cloneWorkout(w))
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CompletedWorkout) int {
		return strings.Compare(b.CompletedDate, a.CompletedDate)
	})
	return out, nil
}

func (r workoutRepo) AddComment(_ context.Context, workoutID, setID string, c domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.workoutIndex(workoutID)
	if i < 0 {
		return repository.ErrNotFound
	}
	w := &r.s.workouts[i]
	if setID == "" {
		w.Comments = append(w.Comments, c)
		return nil
	}
	for e := range w.Exercises {
		for k := range w.Exercises[e].Sets {
			set := &w.Exercises[e].Sets[k]
			if set.ID == setID {
				set.Comments = append(set.Comments, c)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r workoutRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.workouts)), nil
}

func (s *Store) workoutIndex(id string) int {
	return slices.IndexFunc(s.workouts, func(w domain.CompletedWorkout) bool { return w.ID == id })
}

// cloneWorkout copies the nested slices AddComment appends to.
func cloneWorkout(w domain.CompletedWorkout) domain.CompletedWorkout {
	w.Comments = slices.Clone(w.Comments)
	w.Exercises = slices.Clone(w.Exercises)
	for e := range w.Exercises {
		w.Exercises[e].Sets = slices.Clone(w.Exercises[e].Sets)
		for k := range w.Exercises[e].Sets {
			w.Exercises[e].Sets[k].Comments = slices.Clone(w.Exercises[e].Sets[k].Comments)
		}
	}
	return w
}

// === Conversations ===

type conversationRepo struct{ s *Store }

func (r conversationRepo) CreateMany(_ context.Context, conversations []domain.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range conversations {
		c.Messages = slices.Clone(c.Messages)
		r.s.convs = append(r.s.convs, c)
	}
	return nil
}

func (r conversationRepo) List(context.Context) ([]domain.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Conversation, 0, len(r.s.convs))
	for _, c := range r.s.convs {
		c.Messages = slices.Clone(c.Messages)
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b domain.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (r conversationRepo) GetByID(_ context.Context, id string) (*domain.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.conversationIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := r.s.convs[i]
	c.Messages = slices.Clone(c.Messages)
	return &c, nil
}

func (r conversationRepo) AppendMessage(_ context.Context, conversationID string, m domain.Message, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.conversationIndex(conversationID)
	if i < 0 {
		return repository.ErrNotFound
	}
	c := &r.s.convs[i]
	c.Messages = append(slices.Clip(c.Messages), m)
	c.UpdatedAt = at
	return nil
}

func (r conversationRepo) MarkRead(_ context.Context, conversationID string, reader domain.MessageSender) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.conversationIndex(conversationID)
	if i < 0 {
		return repository.ErrNotFound
	}
	msgs := slices.Clone(r.s.convs[i].Messages)
	for k := range msgs {
		if msgs[k].Sender != reader {
			msgs[k].Read = true
		}
	}
	r.s.convs[i].Messages = msgs
	return nil
}

func (r conversationRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.convs)), nil
}

func (s *Store) conversationIndex(id string) int {
	return slices.IndexFunc(s.convs, func(c domain.Conversation) bool { return c.ID == id })
}

// === Planned workouts ===

type planRepo struct{ s *Store }

func (r planRepo) CreateMany(_ context.Context, workouts []domain.PlannedWorkout) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.plans = append(r.s.plans, workouts...)
	return nil
}

func (r planRepo) List(context.Context) ([]domain.PlannedWorkout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := slices.Clone(r.s.plans)
	slices.SortStableFunc(out, func(a, b domain.PlannedWorkout) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r planRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.plans)), nil
}
