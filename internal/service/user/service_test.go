package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userRepoMock struct {
	CreateFunc       func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc      func(ctx context.Context, id string) (*domain.User, error)
	ListFunc         func(ctx context.Context) ([]domain.User, error)
	UpdateFieldsFunc func(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	SetAdminFunc     func(ctx context.Context, id string) (*domain.User, error)
	DeleteFunc       func(ctx context.Context, id string) (bool, error)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFunc(ctx)
}

func (m *userRepoMock) UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	return m.UpdateFieldsFunc(ctx, id, upd)
}

func (m *userRepoMock) SetAdmin(ctx context.Context, id string) (*domain.User, error) {
	return m.SetAdminFunc(ctx, id)
}

func (m *userRepoMock) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}

func validCreateInput() CreateInput {
	return CreateInput{
		Nombre:   "Carla",
		Apellido: "Mendoza",
		Email:    "carla@example.com",
		CI:       "7654321",
		Password: "s3cret-pass",
		Telefono: "70000000",
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password before storing", func(t *testing.T) {
		t.Parallel()

		var stored *domain.User
		repo := &userRepoMock{
			CreateFunc: func(_ context.Context, u *domain.User) (*domain.User, error) {
				stored = u
				created := *u
				created.ID = "u-1"
				return &created, nil
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		got, err := svc.Create(context.Background(), validCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "u-1", got.ID)
		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		t.Parallel()

		repo := &userRepoMock{
			CreateFunc: func(_ context.Context, _ *domain.User) (*domain.User, error) {
				t.Fatal("repository must not be called")
				return nil, nil
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		in := validCreateInput()
		in.Email = "not-an-address"
		in.Password = "shr"

		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrValidation)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Errors, 2)
	})

	t.Run("duplicate ci propagates already-exists", func(t *testing.T) {
		t.Parallel()

		repo := &userRepoMock{
			CreateFunc: func(_ context.Context, _ *domain.User) (*domain.User, error) {
				return nil, domain.ErrAlreadyExists
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		_, err := svc.Create(context.Background(), validCreateInput())
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	t.Run("hashes a replacement password", func(t *testing.T) {
		t.Parallel()

		var gotUpd domain.UserUpdate
		repo := &userRepoMock{
			UpdateFieldsFunc: func(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
				gotUpd = upd
				return &domain.User{ID: id}, nil
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		pass := "new-s3cret"
		_, err := svc.Update(context.Background(), "u-1", UpdateInput{Password: &pass})
		require.NoError(t, err)

		require.NotNil(t, gotUpd.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*gotUpd.PasswordHash), []byte("new-s3cret")))
	})

	t.Run("passes field changes through untouched", func(t *testing.T) {
		t.Parallel()

		var gotUpd domain.UserUpdate
		repo := &userRepoMock{
			UpdateFieldsFunc: func(_ context.Context, _ string, upd domain.UserUpdate) (*domain.User, error) {
				gotUpd = upd
				return &domain.User{}, nil
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		tel := "71111111"
		_, err := svc.Update(context.Background(), "u-1", UpdateInput{Telefono: &tel})
		require.NoError(t, err)

		require.NotNil(t, gotUpd.Telefono)
		assert.Equal(t, "71111111", *gotUpd.Telefono)
		assert.Nil(t, gotUpd.Nombre)
		assert.Nil(t, gotUpd.PasswordHash)
	})

	t.Run("rejects a short replacement password", func(t *testing.T) {
		t.Parallel()

		svc := NewService(discardLogger(), &userRepoMock{}, bcrypt.MinCost)

		pass := "shr"
		_, err := svc.Update(context.Background(), "u-1", UpdateInput{Password: &pass})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id propagates not-found", func(t *testing.T) {
		t.Parallel()

		repo := &userRepoMock{
			UpdateFieldsFunc: func(_ context.Context, _ string, _ domain.UserUpdate) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		nom := "x"
		_, err := svc.Update(context.Background(), "missing", UpdateInput{Nombre: &nom})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_MakeAdmin(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		SetAdminFunc: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, IsAdmin: true}, nil
		},
	}
	svc := NewService(discardLogger(), repo, bcrypt.MinCost)

	got, err := svc.MakeAdmin(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("reports false for unknown ids without erroring", func(t *testing.T) {
		t.Parallel()

		repo := &userRepoMock{
			DeleteFunc: func(_ context.Context, _ string) (bool, error) { return false, nil },
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		ok, err := svc.Delete(context.Background(), "ffffffffffffffffffffffff")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reports true after removal", func(t *testing.T) {
		t.Parallel()

		repo := &userRepoMock{
			DeleteFunc: func(_ context.Context, _ string) (bool, error) { return true, nil },
		}
		svc := NewService(discardLogger(), repo, bcrypt.MinCost)

		ok, err := svc.Delete(context.Background(), "u-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
