package service

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"alcyxob/coach-studio/internal/roster"
	"context"
	"errors"
)

var ErrAthleteNotFound = errors.New("athlete not found on roster")

// RosterPage is one rendering of the athletes page.
type RosterPage struct {
	Athletes []domain.AthleteRosterEntry `json:"athletes"`
	Summary  roster.Overview             `json:"summary"` // Over the whole roster, not just the matches
}

type RosterService interface {
	ListAthletes(ctx context.Context, q roster.Query, sortBy roster.SortKey) (*RosterPage, error)
	GetAthlete(ctx context.Context, id string) (*domain.AthleteRosterEntry, error)
}

type rosterService struct {
	athleteRepo repository.AthleteRepository
}

func NewRosterService(athleteRepo repository.AthleteRepository) RosterService {
	return &rosterService{athleteRepo: athleteRepo}
}

func (s *rosterService) ListAthletes(ctx context.Context, q roster.Query, sortBy roster.SortKey) (*RosterPage, error) {
	all, err := s.athleteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &RosterPage{
		Athletes: roster.Sort(roster.Filter(all, q), sortBy),
		Summary:  roster.Summary(all),
	}, nil
}

func (s *rosterService) GetAthlete(ctx context.Context, id string) (*domain.AthleteRosterEntry, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return athlete, nil
}
