package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openfleet/garage-api/internal/api/metrics"
	"github.com/openfleet/garage-api/internal/core/domain"
	"github.com/openfleet/garage-api/internal/core/ports"
)

// PasswordHasher abstracts the bcrypt worker pool. The key shards work so
// jobs for one account stay ordered.
type PasswordHasher interface {
	Hash(ctx context.Context, key, password string) (string, error)
	Compare(ctx context.Context, key, hashed, password string) error
}

// AuthService implements signup and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

// Signup registers a new account. Name is the uniqueness key; the conflict
// check runs before hashing, so two concurrent signups for the same name
// can both pass it while the hash is in flight (accepted limitation, same
// as the repository backstop catching only one of them).
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	}

	hashed, err := s.hasher.Hash(ctx, name, password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("name", name).Msg("password hashing failed")
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return nil, err
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("name", created.Name).Str("email", created.Email).Msg("user created")

	return created, nil
}

// Login verifies email + password. Success is an acknowledgment only; no
// token or session artifact is issued.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return err
	}

	if err := s.hasher.Compare(ctx, email, user.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			return domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("email", email).Msg("password verification failed")
		return fmt.Errorf("login: verify password: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", email).Msg("login succeeded")
	return nil
}
