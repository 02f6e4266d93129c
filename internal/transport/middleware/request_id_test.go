package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/firewatch-bo/chiquitos-backend/pkg/ctxutil"
)

func TestRequestID_UsesIncomingHeader(t *testing.T) {
	incomingID := uuid.New().String()

	var gotID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", incomingID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if gotID != incomingID {
		t.Errorf("expected request id %q in context, got %q", incomingID, gotID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != incomingID {
		t.Errorf("expected response header %q, got %q", incomingID, got)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var gotID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if gotID == "" {
		t.Fatal("expected a generated request id in context")
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("expected a UUID request id, got %q: %v", gotID, err)
	}

	gotHeader := rec.Header().Get("X-Request-Id")
	if gotHeader != gotID {
		t.Errorf("expected response header %q, got %q", gotID, gotHeader)
	}
	if _, err := uuid.Parse(gotHeader); err != nil {
		t.Errorf("expected a UUID response header, got %q: %v", gotHeader, err)
	}
}
