package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerMock struct {
	err error
}

func (m *pingerMock) Ping(context.Context) error { return m.err }

func healthGet(t *testing.T, fn http.HandlerFunc) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestHealth_Live(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{}, "v1")

	rec, resp := healthGet(t, h.Live)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealth_Ready(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{name: "database up", pingErr: nil, wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "database down", pingErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&pingerMock{err: tt.pingErr}, "v1")

			rec, resp := healthGet(t, h.Ready)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestHealth_Full(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{}, "v1.2.3")

	rec, resp := healthGet(t, h.Health)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "v1.2.3", resp.Version)

	db, ok := resp.Components["database"]
	require.True(t, ok)
	assert.Equal(t, "ok", db.Status)
	assert.NotEmpty(t, db.Latency)
}

func TestHealth_FullDatabaseDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{err: errors.New("connection refused")}, "v1.2.3")

	rec, resp := healthGet(t, h.Health)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "down", resp.Status)
	assert.Equal(t, "down", resp.Components["database"].Status)
}
