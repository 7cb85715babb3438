package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

// logLine is the subset of the emitted record the tests look at.
type logLine struct {
	Level     string `json:"level"`
	Msg       string `json:"msg"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
}

func captureLog(t *testing.T, status int, decorate func(*http.Request) *http.Request) logLine {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	if decorate != nil {
		req = decorate(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogger_RequestFields(t *testing.T) {
	t.Parallel()

	line := captureLog(t, http.StatusCreated, func(r *http.Request) *http.Request {
		return r.WithContext(ctxutil.WithRequestID(r.Context(), "req-1"))
	})

	assert.Equal(t, "http.request", line.Msg)
	assert.Equal(t, "INFO", line.Level)
	assert.Equal(t, http.MethodGet, line.Method)
	assert.Equal(t, "/api/logs", line.Path)
	assert.Equal(t, http.StatusCreated, line.Status)
	assert.Equal(t, "req-1", line.RequestID)
	assert.Empty(t, line.UserID)
}

func TestLogger_ServerErrorLevel(t *testing.T) {
	t.Parallel()

	line := captureLog(t, http.StatusInternalServerError, nil)

	assert.Equal(t, "ERROR", line.Level)
	assert.Equal(t, http.StatusInternalServerError, line.Status)
}

func TestLogger_UserAttached(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	line := captureLog(t, http.StatusOK, func(r *http.Request) *http.Request {
		return r.WithContext(ctxutil.WithUserID(r.Context(), userID))
	})

	assert.Equal(t, userID.String(), line.UserID)
}

func TestLogger_DefaultStatusIs200(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Write without an explicit WriteHeader.
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, http.StatusOK, line.Status)
}
