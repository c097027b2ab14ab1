package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// CreateSession opens a chat session for a display name.
func (s *Service) CreateSession(ctx context.Context, displayName string) (*domain.ChatSession, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	return s.store.CreateChatSession(ctx, name)
}

// GetSession returns one session or a NotFoundError.
func (s *Service) GetSession(ctx context.Context, sessionID int64) (*domain.ChatSession, error) {
	session, err := s.store.GetChatSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &domain.NotFoundError{Resource: "session", Key: strconv.FormatInt(sessionID, 10)}
	}
	return session, nil
}

// SessionsByName lists the sessions opened under a display name.
func (s *Service) SessionsByName(ctx context.Context, displayName string) ([]domain.ChatSession, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	return s.store.GetSessionsByName(ctx, name)
}

// ListMessages returns the history of a session, oldest first. Unknown
// sessions yield an empty slice.
func (s *Service) ListMessages(ctx context.Context, sessionID int64) ([]domain.Message, error) {
	messages, err := s.store.GetMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
