package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	userservice "github.com/firewatch-bo/chiquitos-backend/internal/service/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userReaderMock struct {
	GetByCIFunc func(ctx context.Context, ci string) (*domain.User, error)
}

func (m *userReaderMock) GetByCI(ctx context.Context, ci string) (*domain.User, error) {
	return m.GetByCIFunc(ctx, ci)
}

type registrarMock struct {
	CreateFunc func(ctx context.Context, in userservice.CreateInput) (*domain.User, error)
}

func (m *registrarMock) Create(ctx context.Context, in userservice.CreateInput) (*domain.User, error) {
	return m.CreateFunc(ctx, in)
}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID string, admin bool) (string, error)
}

func (m *tokenIssuerMock) GenerateAccessToken(userID string, admin bool) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, admin)
	}
	return "token-" + userID, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		t.Parallel()

		stored := &domain.User{
			ID:           "u-1",
			CI:           "1234567",
			PasswordHash: hashOf(t, "s3cret-pass"),
			IsAdmin:      true,
		}
		users := &userReaderMock{
			GetByCIFunc: func(_ context.Context, ci string) (*domain.User, error) {
				require.Equal(t, "1234567", ci)
				return stored, nil
			},
		}
		var gotAdmin bool
		tokens := &tokenIssuerMock{
			GenerateAccessTokenFunc: func(userID string, admin bool) (string, error) {
				gotAdmin = admin
				return "signed-token", nil
			},
		}
		svc := NewService(discardLogger(), users, &registrarMock{}, tokens)

		res, err := svc.Login(context.Background(), "1234567", "s3cret-pass")
		require.NoError(t, err)

		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, stored, res.User)
		assert.True(t, gotAdmin, "admin flag must reach the token claims")
	})

	t.Run("unknown ci surfaces not-found", func(t *testing.T) {
		t.Parallel()

		users := &userReaderMock{
			GetByCIFunc: func(_ context.Context, _ string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewService(discardLogger(), users, &registrarMock{}, &tokenIssuerMock{})

		_, err := svc.Login(context.Background(), "0000000", "whatever")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bad password is distinct from unknown user", func(t *testing.T) {
		t.Parallel()

		users := &userReaderMock{
			GetByCIFunc: func(_ context.Context, _ string) (*domain.User, error) {
				return &domain.User{ID: "u-1", PasswordHash: hashOf(t, "right-pass")}, nil
			},
		}
		svc := NewService(discardLogger(), users, &registrarMock{}, &tokenIssuerMock{})

		_, err := svc.Login(context.Background(), "1234567", "wrong-pass")
		require.ErrorIs(t, err, domain.ErrWrongPassword)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates the account and logs the user in", func(t *testing.T) {
		t.Parallel()

		signup := &registrarMock{
			CreateFunc: func(_ context.Context, in userservice.CreateInput) (*domain.User, error) {
				return &domain.User{ID: "u-new", CI: in.CI, Nombre: in.Nombre}, nil
			},
		}
		svc := NewService(discardLogger(), &userReaderMock{}, signup, &tokenIssuerMock{})

		res, err := svc.Register(context.Background(), userservice.CreateInput{
			Nombre:   "Carla",
			Apellido: "Mendoza",
			Email:    "carla@example.com",
			CI:       "7654321",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, "token-u-new", res.Token)
		assert.Equal(t, "u-new", res.User.ID)
	})

	t.Run("duplicate ci propagates already-exists", func(t *testing.T) {
		t.Parallel()

		signup := &registrarMock{
			CreateFunc: func(_ context.Context, _ userservice.CreateInput) (*domain.User, error) {
				return nil, domain.ErrAlreadyExists
			},
		}
		svc := NewService(discardLogger(), &userReaderMock{}, signup, &tokenIssuerMock{})

		_, err := svc.Register(context.Background(), userservice.CreateInput{CI: "1234567"})
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("token failure is returned", func(t *testing.T) {
		t.Parallel()

		signup := &registrarMock{
			CreateFunc: func(_ context.Context, _ userservice.CreateInput) (*domain.User, error) {
				return &domain.User{ID: "u-new"}, nil
			},
		}
		issueErr := errors.New("key unavailable")
		tokens := &tokenIssuerMock{
			GenerateAccessTokenFunc: func(_ string, _ bool) (string, error) {
				return "", issueErr
			},
		}
		svc := NewService(discardLogger(), &userReaderMock{}, signup, tokens)

		_, err := svc.Register(context.Background(), userservice.CreateInput{})
		require.ErrorIs(t, err, issueErr)
	})
}
