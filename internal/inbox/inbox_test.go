package inbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alcyxob/coach-studio/internal/domain"
)

func msg(id string, from domain.MessageSender, read bool) domain.Message {
	return domain.Message{ID: id, Sender: from, Content: "message " + id, Timestamp: id + "m ago", Read: read}
}

func fixture() []domain.Conversation {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC) }
	return []domain.Conversation{
		{ID: "c1", AthleteName: "Sarah Johnson", UpdatedAt: day(10), Messages: []domain.Message{
			msg("1", domain.SenderAthlete, true), msg("2", domain.SenderCoach, false),
		}},
		{ID: "c2", AthleteName: "Mike Wilson", UpdatedAt: day(14), Messages: []domain.Message{
			msg("3", domain.SenderAthlete, false), msg("4", domain.SenderAthlete, false),
		}},
		{ID: "c3", AthleteName: "Emily Davis", UpdatedAt: day(12)},
		{ID: "c4", AthleteName: "James Brown", UpdatedAt: day(14), Messages: []domain.Message{
			msg("5", domain.SenderAthlete, false),
		}},
	}
}

func ids(convs []domain.Conversation) []string {
	out := make([]string, len(convs))
	for i, c := range convs {
		out[i] = c.ID
	}
	return out
}

func TestUnreadCountsOnlyTheOtherSide(t *testing.T) {
	convs := fixture()
	assert.Equal(t, 0, Unread(convs[0], domain.SenderCoach))
	assert.Equal(t, 1, Unread(convs[0], domain.SenderAthlete))
	assert.Equal(t, 2, Unread(convs[1], domain.SenderCoach))
	assert.Equal(t, 0, Unread(convs[2], domain.SenderCoach))
	assert.Equal(t, 3, TotalUnread(convs, domain.SenderCoach))
}

func TestSummarize(t *testing.T) {
	convs := fixture()

	s := Summarize(convs[1], domain.SenderCoach)
	assert.Equal(t, Summary{
		ID:          "c2",
		AthleteName: "Mike Wilson",
		LastMessage: "message 4",
		Timestamp:   "4m ago",
		UnreadCount: 2,
	}, s)

	empty := Summarize(convs[2], domain.SenderCoach)
	assert.Empty(t, empty.LastMessage)
	assert.Zero(t, empty.UnreadCount)
}

func TestFilter(t *testing.T) {
	convs := fixture()
	cases := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty keeps all", "", []string{"c1", "c2", "c3", "c4"}},
		{"ignores case", "WILSON", []string{"c2"}},
		{"substring of several", "j", []string{"c1", "c4"}},
		{"trims space", "  emily ", []string{"c3"}},
		{"no match", "zzz", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(convs, tc.search)))
		})
	}
}

func TestNewestIsStableAndLeavesInputAlone(t *testing.T) {
	convs := fixture()
	assert.Equal(t, []string{"c2", "c4", "c3", "c1"}, ids(Newest(convs)))
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids(convs))
}
