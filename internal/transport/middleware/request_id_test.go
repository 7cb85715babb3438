package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var inCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, inCtx)
	_, err := uuid.Parse(inCtx)
	assert.NoError(t, err)
	assert.Equal(t, inCtx, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_ClientSupplied(t *testing.T) {
	t.Parallel()

	var inCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", inCtx)
	assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-Id"))
}
