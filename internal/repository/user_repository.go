package repository

import (
	"context"

	"medicare/internal/model"
	"medicare/internal/store"
)

// UserRepository defines persistence operations on the Users collection.
type UserRepository interface {
	Append(ctx context.Context, user *model.User) error
	FindByEmail(email string) *model.User
	List() []model.User
	ListByRole(role model.Role) []model.User
}

type userRepository struct {
	store store.Store
	users []model.User
}

// NewUserRepository hydrates the Users collection from the durable store.
// An absent key hydrates as an empty collection.
func NewUserRepository(ctx context.Context, st store.Store) (UserRepository, error) {
	users, err := loadCollection[model.User](ctx, st, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	return &userRepository{store: st, users: users}, nil
}

// Append adds the user and re-serializes the full collection.
func (r *userRepository) Append(ctx context.Context, user *model.User) error {
	r.users = append(r.users, *user)
	return persistCollection(ctx, r.store, store.KeyUsers, r.users)
}

// FindByEmail returns the user with the exact email, or nil. The match is
// case-sensitive.
func (r *userRepository) FindByEmail(email string) *model.User {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// List returns all users in insertion order.
func (r *userRepository) List() []model.User {
	return append([]model.User(nil), r.users...)
}

// ListByRole returns all users with the given role, insertion order preserved.
func (r *userRepository) ListByRole(role model.Role) []model.User {
	var out []model.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
