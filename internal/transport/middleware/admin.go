package middleware

import (
	"context"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	"github.com/firewatch-bo/chiquitos-backend/pkg/ctxutil"
)

// RequireAuth returns domain.ErrUnauthorized if the context has no user.
// Use in resolvers, not as HTTP middleware.
func RequireAuth(ctx context.Context) (string, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

// RequireAdmin returns domain.ErrUnauthorized if the context user is
// not an admin.
func RequireAdmin(ctx context.Context) error {
	if _, err := RequireAuth(ctx); err != nil {
		return err
	}
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrUnauthorized
	}
	return nil
}
