package service

import (
	"context"

	"medicare/internal/model"
)

// SessionService holds the identity of the currently signed-in user, if any.
// At most one identity is held at a time.
type SessionService interface {
	Login(email, password string, role model.Role) (*model.User, error)
	RegisterAndLogin(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	Logout()
	Current() *model.User
}

type sessionService struct {
	accounts AccountService
	current  *model.User
}

// NewSessionService creates a session service with no identity held.
func NewSessionService(accounts AccountService) SessionService {
	return &sessionService{accounts: accounts}
}

// Login authenticates and, on success, holds the matched identity. On failure
// the held identity is left unchanged.
func (s *sessionService) Login(email, password string, role model.Role) (*model.User, error) {
	user, err := s.accounts.Authenticate(email, password, role)
	if err != nil {
		return nil, err
	}
	s.current = user
	return user, nil
}

// RegisterAndLogin registers a new user and holds it as the signed-in
// identity, so signup doubles as login.
func (s *sessionService) RegisterAndLogin(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	user, err := s.accounts.Register(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	s.current = user
	return user, nil
}

// Logout clears the held identity. Calling it when signed out is a no-op.
func (s *sessionService) Logout() {
	s.current = nil
}

// Current returns the held identity, or nil when signed out.
func (s *sessionService) Current() *model.User {
	return s.current
}
