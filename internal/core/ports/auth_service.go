package ports

import (
	"context"

	"github.com/openfleet/garage-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) error
}
