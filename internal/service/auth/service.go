// Package auth implements registration and credential-based login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	userservice "github.com/firewatch-bo/chiquitos-backend/internal/service/user"
)

// userReader defines what the service needs to look up users.
type userReader interface {
	GetByCI(ctx context.Context, ci string) (*domain.User, error)
}

// registrar defines what the service needs to create accounts.
type registrar interface {
	Create(ctx context.Context, in userservice.CreateInput) (*domain.User, error)
}

// tokenIssuer defines what the service needs to mint access tokens.
type tokenIssuer interface {
	GenerateAccessToken(userID string, admin bool) (string, error)
}

// Service implements login and registration.
type Service struct {
	log    *slog.Logger
	users  userReader
	signup registrar
	tokens tokenIssuer
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userReader, signup registrar, tokens tokenIssuer) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		signup: signup,
		tokens: tokens,
	}
}

// Result is a successful authentication: the user plus an access token.
type Result struct {
	Token string
	User  *domain.User
}

// Login authenticates by CI and password. An unknown CI surfaces as
// domain.ErrNotFound, a bad password as domain.ErrWrongPassword.
func (s *Service) Login(ctx context.Context, ci, password string) (*Result, error) {
	u, err := s.users.GetByCI(ctx, ci)
	if err != nil {
		return nil, fmt.Errorf("auth.Login %s: %w", ci, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.WarnContext(ctx, "login rejected", slog.String("ci", ci))
			return nil, fmt.Errorf("auth.Login %s: %w", ci, domain.ErrWrongPassword)
		}
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "login succeeded", slog.String("user_id", u.ID))

	return &Result{Token: token, User: u}, nil
}

// Register creates an account and logs the new user in.
func (s *Service) Register(ctx context.Context, in userservice.CreateInput) (*Result, error) {
	created, err := s.signup.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(created.ID, created.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID))

	return &Result{Token: token, User: created}, nil
}
