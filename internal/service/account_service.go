package service

import (
	"context"
	"fmt"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/repository"
)

// AccountService handles registration and credential checks against the
// Users collection.
type AccountService interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	Authenticate(email, password string, role model.Role) (*model.User, error)
}

type accountService struct {
	users repository.UserRepository
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository) AccountService {
	return &accountService{users: users}
}

// Register creates a new user. The email must not be on file already; the
// check is a case-sensitive exact match. The created user is persisted before
// it is returned.
func (s *accountService) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	switch {
	case name == "":
		return nil, errors.NewValidationError("name")
	case email == "":
		return nil, errors.NewValidationError("email")
	case password == "":
		return nil, errors.NewValidationError("password")
	}
	if !role.Valid() {
		return nil, errors.NewValidationError("role")
	}
	if s.users.FindByEmail(email) != nil {
		return nil, errors.ErrDuplicateEmail
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	return user, nil
}

// Authenticate returns the user whose email, password, and role all match
// exactly. Any mismatch yields the same undifferentiated error.
func (s *accountService) Authenticate(email, password string, role model.Role) (*model.User, error) {
	user := s.users.FindByEmail(email)
	if user == nil || user.Password != password || user.Role != role {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}
