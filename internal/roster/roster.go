// Package roster filters and orders a coach's athlete list for display.
// Nothing here modifies the slice it is given.
package roster

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"alcyxob/coach-studio/internal/domain"
)

// StatusAll matches every status.
const StatusAll = "all"

// Query selects roster entries. Empty fields match everything.
type Query struct {
	Search string
	Status string // An AthleteStatus or StatusAll
}

// Matches reports whether e satisfies both predicates of q.
func (q Query) Matches(e domain.AthleteRosterEntry) bool {
	if q.Status != "" && q.Status != StatusAll && string(e.Status) != q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Email), needle)
}

// Filter returns the entries matching q, in their original order.
func Filter(entries []domain.AthleteRosterEntry, q Query) []domain.AthleteRosterEntry {
	out := make([]domain.AthleteRosterEntry, 0, len(entries))
	for _, e := range entries {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortKey names a roster ordering.
type SortKey string

const (
	SortName           SortKey = "name"
	SortJoinedDate     SortKey = "joinedDate"
	SortCompletionRate SortKey = "completionRate"
	SortLastActivity   SortKey = "lastActivity"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortName, SortJoinedDate, SortCompletionRate, SortLastActivity:
		return true
	}
	return false
}

// Sort returns a stably sorted copy of entries. Names sort ascending by the
// English collation, joined date, completion rate and last activity newest or
// highest first. An unknown key returns the entries in their original order.
func Sort(entries []domain.AthleteRosterEntry, key SortKey) []domain.AthleteRosterEntry {
	out := slices.Clone(entries)
	switch key {
	case SortName:
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b domain.AthleteRosterEntry) int {
			return c.CompareString(a.Name, b.Name)
		})
	case SortJoinedDate:
		slices.SortStableFunc(out, func(a, b domain.AthleteRosterEntry) int {
			return b.JoinedDate.Compare(a.JoinedDate)
		})
	case SortCompletionRate:
		slices.SortStableFunc(out, func(a, b domain.AthleteRosterEntry) int {
			return cmp.Compare(b.Stats.CompletionRate, a.Stats.CompletionRate)
		})
	case SortLastActivity:
		slices.SortStableFunc(out, func(a, b domain.AthleteRosterEntry) int {
			return compareRecency(a.LastActivity, b.LastActivity)
		})
	}
	return out
}

var agoPattern = regexp.MustCompile(`^(\d+|an?|one)\s+(second|minute|hour|day|week|month|year)s?\s+ago$`)

var unitDurations = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// ParseRecency turns a label such as "2 hours ago", "an hour ago", "yesterday"
// or "just now" into how long ago it was.
func ParseRecency(label string) (time.Duration, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	switch s {
	case "just now", "now", "online", "today":
		return 0, true
	case "yesterday":
		return unitDurations["day"], true
	}
	m := agoPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	count := 1
	if m[1] != "a" && m[1] != "an" && m[1] != "one" {
		var err error
		if count, err = strconv.Atoi(m[1]); err != nil {
			return 0, false
		}
	}
	return time.Duration(count) * unitDurations[m[2]], true
}

// compareRecency orders the most recent label first; labels that do not parse go last.
func compareRecency(a, b string) int {
	da, okA := ParseRecency(a)
	db, okB := ParseRecency(b)
	switch {
	case okA && okB:
		return cmp.Compare(da, db)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// Overview is the header of the athletes page.
type Overview struct {
	Total                 int     `json:"total"`
	Active                int     `json:"active"`
	Trial                 int     `json:"trial"`
	Inactive              int     `json:"inactive"`
	AverageCompletionRate float64 `json:"averageCompletionRate"`
}

// Summary counts entries per status and averages their completion rate.
func Summary(entries []domain.AthleteRosterEntry) Overview {
	s := Overview{Total: len(entries)}
	var rate float64
	for _, e := range entries {
		switch e.Status {
		case domain.AthleteActive:
			s.Active++
		case domain.AthleteTrial:
			s.Trial++
		case domain.AthleteInactive:
			s.Inactive++
		}
		rate += e.Stats.CompletionRate
	}
	if len(entries) > 0 {
		s.AverageCompletionRate = rate / float64(len(entries))
	}
	return s
}
