package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/roster"
)

func names(entries []domain.AthleteRosterEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestRosterServiceListAthletes(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(seededStore(t).Athletes())

	page, err := svc.ListAthletes(ctx, roster.Query{Status: roster.StatusAll}, roster.SortLastActivity)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Johnson", "Mike Wilson", "Emily Davis", "James Brown"}, names(page.Athletes))

	page, err = svc.ListAthletes(ctx, roster.Query{Status: string(domain.AthleteActive)}, roster.SortName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mike Wilson", "Sarah Johnson"}, names(page.Athletes))
	// The summary always covers everyone.
	assert.Equal(t, 4, page.Summary.Total)
	assert.Equal(t, 1, page.Summary.Trial)

	page, err = svc.ListAthletes(ctx, roster.Query{Search: "EMILY"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Emily Davis"}, names(page.Athletes))
}

func TestRosterServiceGetAthlete(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(seededStore(t).Athletes())

	a, err := svc.GetAthlete(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, domain.AthleteTrial, a.Status)

	_, err = svc.GetAthlete(ctx, "99")
	assert.ErrorIs(t, err, ErrAthleteNotFound)
}
