package service

import (
	"alcyxob/coach-studio/internal/catalog"
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
)

// --- Error Definitions ---
var (
	ErrCatalogExerciseNotFound = errors.New("exercise not found in catalog")
	ErrTemplateNotFound        = errors.New("workout template not found")
	ErrValidationFailed        = errors.New("validation failed")
)

// CustomExerciseInput describes an exercise a coach adds to the library.
type CustomExerciseInput struct {
	Name         string
	Type         domain.ExerciseType
	MuscleGroups []string
	Instructions string
}

type CatalogService interface {
	// Catalog returns a snapshot of the library for lookups.
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	ListExercises(ctx context.Context, f catalog.Filter) ([]domain.CatalogExercise, error)
	GetExercise(ctx context.Context, id string) (*domain.CatalogExercise, error)
	CreateCustomExercise(ctx context.Context, in CustomExerciseInput) (*domain.CatalogExercise, error)
	MuscleGroups(ctx context.Context) ([]string, error)
	Types(ctx context.Context) ([]domain.ExerciseType, error)
	ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, id string) (*domain.WorkoutTemplate, error)
}

type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	templateRepo repository.TemplateRepository
}

// NewCatalogService creates the exercise library service.
func NewCatalogService(exerciseRepo repository.ExerciseRepository, templateRepo repository.TemplateRepository) CatalogService {
	return &catalogService{
		exerciseRepo: exerciseRepo,
		templateRepo: templateRepo,
	}
}

func (s *catalogService) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	entries, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(entries), nil
}

func (s *catalogService) ListExercises(ctx context.Context, f catalog.Filter) ([]domain.CatalogExercise, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Filter(f), nil
}

func (s *catalogService) GetExercise(ctx context.Context, id string) (*domain.CatalogExercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// CreateCustomExercise adds a coach's own exercise to the library.
func (s *catalogService) CreateCustomExercise(ctx context.Context, in CustomExerciseInput) (*domain.CatalogExercise, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	switch in.Type {
	case domain.ExerciseStrength, domain.ExerciseCardio, domain.ExerciseFlexibility, domain.ExerciseOther:
	default:
		return nil, fmt.Errorf("%w: unknown exercise type %q", ErrValidationFailed, in.Type)
	}

	groups := make([]string, 0, len(in.MuscleGroups))
	for _, g := range in.MuscleGroups {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			groups = append(groups, g)
		}
	}

	exercise := &domain.CatalogExercise{
		Name:         name,
		Type:         in.Type,
		MuscleGroups: groups,
		Instructions: strings.TrimSpace(in.Instructions),
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *catalogService) MuscleGroups(ctx context.Context) ([]string, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.MuscleGroups(), nil
}

func (s *catalogService) Types(ctx context.Context) ([]domain.ExerciseType, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Types(), nil
}

func (s *catalogService) ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.List(ctx)
}

func (s *catalogService) GetTemplate(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}
