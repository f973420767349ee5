package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/coach-studio/internal/domain"
)

func entry(id, name, email string, status domain.AthleteStatus, joined string, last string, rate float64) domain.AthleteRosterEntry {
	j, err := time.Parse("2006-01-02", joined)
	if err != nil {
		panic(err)
	}
	return domain.AthleteRosterEntry{
		ID: id, Name: name, Email: email, Status: status, JoinedDate: j, LastActivity: last,
		Stats: domain.AthleteStats{CompletionRate: rate},
	}
}

func fixture() []domain.AthleteRosterEntry {
	return []domain.AthleteRosterEntry{
		entry("1", "Sarah Johnson", "sarah.johnson@email.com", domain.AthleteActive, "2023-11-15", "2 hours ago", 93),
		entry("2", "Mike Wilson", "mike.wilson@email.com", domain.AthleteActive, "2023-12-01", "1 day ago", 92),
		entry("3", "Emily Davis", "emily.davis@email.com", domain.AthleteTrial, "2024-01-08", "3 days ago", 75),
		entry("4", "James Brown", "james.brown@email.com", domain.AthleteInactive, "2023-10-20", "2 weeks ago", 73),
	}
}

func ids(entries []domain.AthleteRosterEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	r := fixture()
	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"empty query keeps all", Query{}, []string{"1", "2", "3", "4"}},
		{"status all", Query{Status: StatusAll}, []string{"1", "2", "3", "4"}},
		{"search name ignores case", Query{Search: "SARAH"}, []string{"1"}},
		{"search email", Query{Search: "wilson@"}, []string{"2"}},
		{"status", Query{Status: "active"}, []string{"1", "2"}},
		{"search and status", Query{Search: "j", Status: "inactive"}, []string{"4"}},
		{"no match", Query{Search: "zzz"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(r, tc.q)))
		})
	}
}

func TestFilterIsExact(t *testing.T) {
	r := fixture()
	for _, q := range []Query{{Search: "e"}, {Search: "o", Status: "active"}, {Status: "trial"}, {Search: "@email"}} {
		got := Filter(r, q)
		seen := make(map[string]int)
		for _, e := range got {
			assert.True(t, q.Matches(e))
			seen[e.ID]++
		}
		for _, e := range r {
			if q.Matches(e) {
				assert.Equal(t, 1, seen[e.ID], "entry %s for query %+v", e.ID, q)
			}
		}
	}
}

func TestSort(t *testing.T) {
	r := fixture()
	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortName, []string{"3", "4", "2", "1"}},
		{SortJoinedDate, []string{"3", "2", "1", "4"}},
		{SortCompletionRate, []string{"1", "2", "3", "4"}},
		{SortLastActivity, []string{"1", "2", "3", "4"}},
		{"unknown", []string{"1", "2", "3", "4"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Sort(r, tc.key)))
		})
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(r), "input order unchanged")
}

func TestSortIsStable(t *testing.T) {
	r := []domain.AthleteRosterEntry{
		entry("a", "Alex", "a@x", domain.AthleteActive, "2024-01-01", "1 day ago", 80),
		entry("b", "alex", "b@x", domain.AthleteTrial, "2024-01-01", "yesterday", 80),
		entry("c", "Zed", "c@x", domain.AthleteActive, "2024-02-01", "unknown", 90),
		entry("d", "Alex", "d@x", domain.AthleteActive, "2024-01-01", "24 hours ago", 80),
		entry("e", "Bo", "e@x", domain.AthleteActive, "2023-01-01", "", 10),
	}
	assert.Equal(t, []string{"a", "b", "d", "e", "c"}, ids(Sort(r, SortName)))
	assert.Equal(t, []string{"c", "a", "b", "d", "e"}, ids(Sort(r, SortJoinedDate)))
	assert.Equal(t, []string{"c", "a", "b", "d", "e"}, ids(Sort(r, SortCompletionRate)))
	assert.Equal(t, []string{"a", "b", "d", "c", "e"}, ids(Sort(r, SortLastActivity)))
}

func TestParseRecency(t *testing.T) {
	cases := []struct {
		label string
		want  time.Duration
		ok    bool
	}{
		{"just now", 0, true},
		{"5 minutes ago", 5 * time.Minute, true},
		{"an hour ago", time.Hour, true},
		{"2 Hours Ago", 2 * time.Hour, true},
		{"1 day ago", 24 * time.Hour, true},
		{"yesterday", 24 * time.Hour, true},
		{"2 weeks ago", 14 * 24 * time.Hour, true},
		{"last tuesday", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseRecency(tc.label)
		require.Equal(t, tc.ok, ok, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(fixture())
	assert.Equal(t, Overview{Total: 4, Active: 2, Trial: 1, Inactive: 1, AverageCompletionRate: 83.25}, s)
	assert.Equal(t, Overview{}, Summary(nil))
}
