// Package user implements administration of registered users.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// userRepo defines what the service needs from the user repository.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	SetAdmin(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service implements user management operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// CreateInput carries the fields of a new user account.
type CreateInput struct {
	Nombre   string
	Apellido string
	Email    string
	CI       string
	Password string
	Telefono string
}

// Validate checks required fields.
func (in CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Nombre) == "" {
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "required"})
	}
	if strings.TrimSpace(in.Apellido) == "" {
		errs = append(errs, domain.FieldError{Field: "apellido", Message: "required"})
	}
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid address"})
	}
	if strings.TrimSpace(in.CI) == "" {
		errs = append(errs, domain.FieldError{Field: "ci", Message: "required"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create validates input, hashes the password and stores the user.
// A duplicate CI surfaces as domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		CI:           in.CI,
		PasswordHash: string(hash),
		Telefono:     in.Telefono,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("id", created.ID),
		slog.String("ci", created.CI),
	)

	return created, nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get %s: %w", id, err)
	}
	return u, nil
}

// List returns all registered users.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// UpdateInput carries optional field changes; nil fields are untouched.
type UpdateInput struct {
	Nombre   *string
	Apellido *string
	Email    *string
	Telefono *string
	Password *string
}

// Update applies the non-nil fields of in to the user with the given id.
// A new password is hashed before it is stored.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.User, error) {
	upd := domain.UserUpdate{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Telefono: in.Telefono,
	}

	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, domain.NewValidationError("password", "must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	updated, err := s.users.UpdateFields(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("user.Update %s: %w", id, err)
	}
	return updated, nil
}

// MakeAdmin grants admin rights to the user with the given id.
func (s *Service) MakeAdmin(ctx context.Context, id string) (*domain.User, error) {
	promoted, err := s.users.SetAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.MakeAdmin %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "admin rights granted", slog.String("id", id))
	return promoted, nil
}

// Delete removes a user. Unknown ids report false, not an error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("user.Delete %s: %w", id, err)
	}
	if deleted {
		s.log.InfoContext(ctx, "user deleted", slog.String("id", id))
	}
	return deleted, nil
}
