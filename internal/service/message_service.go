package service

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/inbox"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content is required")
)

// Inbox is the conversation list as one reader sees it.
type Inbox struct {
	Conversations []inbox.Summary `json:"conversations"`
	UnreadTotal   int             `json:"unreadTotal"` // Over every conversation, not just the matches
}

type MessageService interface {
	ListConversations(ctx context.Context, reader *domain.User, search string) (*Inbox, error)
	// OpenConversation returns the thread and marks what the other side wrote as read.
	OpenConversation(ctx context.Context, reader *domain.User, id string) (*domain.Conversation, error)
	SendMessage(ctx context.Context, author *domain.User, conversationID, content string) (*domain.Message, error)
}

type messageService struct {
	conversationRepo repository.ConversationRepository
	logger           *zap.Logger
}

func NewMessageService(conversationRepo repository.ConversationRepository, logger *zap.Logger) MessageService {
	return &messageService{conversationRepo: conversationRepo, logger: logger}
}

func (s *messageService) ListConversations(ctx context.Context, reader *domain.User, search string) (*Inbox, error) {
	all, err := s.conversationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	side := domain.SenderFor(reader)
	matches := inbox.Newest(inbox.Filter(all, search))

	out := &Inbox{
		Conversations: make([]inbox.Summary, 0, len(matches)),
		UnreadTotal:   inbox.TotalUnread(all, side),
	}
	for _, c := range matches {
		out.Conversations = append(out.Conversations, inbox.Summarize(c, side))
	}
	return out, nil
}

func (s *messageService) OpenConversation(ctx context.Context, reader *domain.User, id string) (*domain.Conversation, error) {
	if err := s.conversationRepo.MarkRead(ctx, id, domain.SenderFor(reader)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	conversation, err := s.conversationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return conversation, nil
}

func (s *messageService) SendMessage(ctx context.Context, author *domain.User, conversationID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	now := time.Now().UTC()
	m := domain.Message{
		ID:        uuid.NewString(),
		Sender:    domain.SenderFor(author),
		Content:   content,
		Timestamp: now.Format(time.RFC3339),
	}
	if err := s.conversationRepo.AppendMessage(ctx, conversationID, m, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("send message: %w", err)
	}
	s.logger.Debug("Message sent", zap.String("conversationId", conversationID), zap.String("sender", string(m.Sender)))
	return &m, nil
}
