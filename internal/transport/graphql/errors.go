package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// Error codes surfaced in the GraphQL extensions block.
const (
	codeNotFound           = "NOT_FOUND"
	codeValidation         = "VALIDATION"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeAlreadyExists      = "ALREADY_EXISTS"
	codeStorageUnavailable = "STORAGE_UNAVAILABLE"
	codeInternal           = "INTERNAL"
)

// apiError carries a stable error code (and optional field details) to
// the client through the extensions block of the GraphQL response.
type apiError struct {
	message    string
	extensions map[string]interface{}
}

func (e *apiError) Error() string { return e.message }

// Extensions implements gqlerrors.ExtendedError.
func (e *apiError) Extensions() map[string]interface{} { return e.extensions }

// presentError maps domain errors to client-safe API errors. Unknown
// errors are logged and masked.
func presentError(ctx context.Context, log *slog.Logger, err error) error {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		fields := make(map[string]interface{}, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields[fe.Field] = fe.Message
		}
		return &apiError{
			message:    vErr.Error(),
			extensions: map[string]interface{}{"code": codeValidation, "fields": fields},
		}
	case errors.Is(err, domain.ErrNotFound):
		return &apiError{
			message:    "not found",
			extensions: map[string]interface{}{"code": codeNotFound},
		}
	case errors.Is(err, domain.ErrAlreadyExists):
		return &apiError{
			message:    "already exists",
			extensions: map[string]interface{}{"code": codeAlreadyExists},
		}
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrWrongPassword):
		return &apiError{
			message:    "unauthorized",
			extensions: map[string]interface{}{"code": codeUnauthenticated},
		}
	case errors.Is(err, domain.ErrStorageUnavailable):
		return &apiError{
			message:    "stored records are temporarily unavailable",
			extensions: map[string]interface{}{"code": codeStorageUnavailable},
		}
	default:
		log.ErrorContext(ctx, "internal resolver error", slog.String("error", err.Error()))
		return &apiError{
			message:    "internal server error",
			extensions: map[string]interface{}{"code": codeInternal},
		}
	}
}
