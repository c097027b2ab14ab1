// Package repository defines the storage interface and implementations.
package repository

import (
	"context"
	"strings"

	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// Store defines the interface for data persistence. Lookups by key return
// nil without error when nothing matches. Failures of the backend are
// returned as *domain.StorageError.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByName(ctx context.Context, username string) (*domain.User, error)

	// Session operations
	CreateChatSession(ctx context.Context, name string) (*domain.ChatSession, error)
	GetChatSession(ctx context.Context, id int64) (*domain.ChatSession, error)
	GetSessionsByName(ctx context.Context, name string) ([]domain.ChatSession, error)

	// Message operations
	CreateMessage(ctx context.Context, sessionID int64, content string, isAssistant bool) (*domain.Message, error)
	GetMessagesBySession(ctx context.Context, sessionID int64) ([]domain.Message, error)

	// Lifecycle
	Close() error
}

func validateMessage(content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.NewValidationError("content", "must not be empty")
	}
	return nil
}

func storageErr(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err}
}
