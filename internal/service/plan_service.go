package service

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/plans"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"fmt"
)

// WorkoutList is one rendering of the coach's workouts page.
type WorkoutList struct {
	Workouts []domain.PlannedWorkout `json:"workouts"`
	Counts   plans.Counts            `json:"counts"` // Over every workout, not just the matches
}

type PlanService interface {
	ListWorkouts(ctx context.Context, q plans.Query) (*WorkoutList, error)
}

type planService struct {
	planRepo repository.PlannedWorkoutRepository
}

func NewPlanService(planRepo repository.PlannedWorkoutRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) ListWorkouts(ctx context.Context, q plans.Query) (*WorkoutList, error) {
	all, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return &WorkoutList{
		Workouts: plans.Filter(all, q),
		Counts:   plans.Count(all),
	}, nil
}
