package memory

import (
	"context"
	"sync"

	"github.com/openfleet/garage-api/internal/core/domain"
)

// UserRepository keeps accounts in an ordered slice. Name is the uniqueness
// key; login lookups go by email.
type UserRepository struct {
	mu    sync.Mutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create appends the user, rejecting a duplicate name. This check is a
// backstop: the service performs its own conflict lookup before hashing,
// and the window between the two is an accepted race.
func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Name == user.Name {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByName(_ context.Context, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
