package auth

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"spendbook/internal/crypto"
	"spendbook/internal/domain"
	"spendbook/internal/repository"
	"spendbook/internal/token"
)

// ErrEmailTaken is returned by Signup when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials covers both an unknown email and a password
// mismatch so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles authentication workflows.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	secret string
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, secret string) Service {
	return Service{users: users, logger: logger, secret: secret}
}

// Signup registers a new account.
func (s Service) Signup(ctx context.Context, email, name, password string) (*domain.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates an account and returns a signed bearer token.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	signed, err := token.Issue(user.ID, s.secret)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, signed, nil
}

// Verify validates a bearer token and returns the bound account id. No
// store access happens here; authenticity rests on the signature alone.
func (s Service) Verify(rawToken string) (string, error) {
	claims, err := token.Parse(rawToken, s.secret)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
