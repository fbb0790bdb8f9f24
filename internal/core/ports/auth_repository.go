package ports

import (
	"context"

	"github.com/openfleet/garage-api/internal/core/domain"
)

// UserRepository defines the interface for user account storage.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
