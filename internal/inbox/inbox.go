// Package inbox turns message threads into the conversation list a reader sees.
package inbox

import (
	"slices"
	"strings"

	"alcyxob/coach-studio/internal/domain"
)

// Summary is one row of the conversation list.
type Summary struct {
	ID              string `json:"id"`
	AthleteID       string `json:"athleteId"`
	AthleteName     string `json:"athleteName"`
	AthleteInitials string `json:"athleteInitials"`
	LastMessage     string `json:"lastMessage"`
	Timestamp       string `json:"timestamp"`
	UnreadCount     int    `json:"unreadCount"`
}

// Unread counts the messages in c that the other side wrote and reader has not seen.
func Unread(c domain.Conversation, reader domain.MessageSender) int {
	n := 0
	for _, m := range c.Messages {
		if m.Sender != reader && !m.Read {
			n++
		}
	}
	return n
}

// Summarize builds the list row of c as reader sees it.
func Summarize(c domain.Conversation, reader domain.MessageSender) Summary {
	s := Summary{
		ID:              c.ID,
		AthleteID:       c.AthleteID,
		AthleteName:     c.AthleteName,
		AthleteInitials: c.AthleteInitials,
		UnreadCount:     Unread(c, reader),
	}
	if last := c.Last(); last != nil {
		s.LastMessage = last.Content
		s.Timestamp = last.Timestamp
	}
	return s
}

// Filter keeps the conversations whose athlete name contains search, ignoring case.
func Filter(convs []domain.Conversation, search string) []domain.Conversation {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Conversation, 0, len(convs))
	for _, c := range convs {
		if strings.Contains(strings.ToLower(c.AthleteName), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Newest returns a copy of convs, most recently active first. Ties keep their order.
func Newest(convs []domain.Conversation) []domain.Conversation {
	out := slices.Clone(convs)
	slices.SortStableFunc(out, func(a, b domain.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// TotalUnread sums the unread messages of every conversation for reader.
func TotalUnread(convs []domain.Conversation, reader domain.MessageSender) int {
	total := 0
	for _, c := range convs {
		total += Unread(c, reader)
	}
	return total
}
