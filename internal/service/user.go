package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xiaot623/gogo/concierge/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a username with a bcrypt-hashed credential.
func (s *Service) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("password", "must be at most 72 bytes")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.store.CreateUser(ctx, name, string(hash))
}

// GetUser returns a user by id or a NotFoundError.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Resource: "user", Key: strconv.FormatInt(id, 10)}
	}
	return user, nil
}

// GetUserByName returns a user by username or a NotFoundError.
func (s *Service) GetUserByName(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.store.GetUserByName(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Resource: "user", Key: username}
	}
	return user, nil
}
