package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitly/wardrobe-backend/internal/catalog"
	"github.com/outfitly/wardrobe-backend/internal/config"
	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/internal/service/analytics"
	"github.com/outfitly/wardrobe-backend/internal/service/calendar"
	"github.com/outfitly/wardrobe-backend/internal/service/stylequiz"
	"github.com/outfitly/wardrobe-backend/internal/service/wearlog"
	"github.com/outfitly/wardrobe-backend/internal/transport/middleware"
	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

// userInjector stands in for the auth middleware in handler tests.
func userInjector(userID uuid.UUID) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func testRouter(t *testing.T, userID uuid.UUID) http.Handler {
	t.Helper()

	log := slog.Default()
	cat := catalog.NewSnapshot(
		[]domain.Outfit{
			{ID: "o1", Name: "Office", ItemIDs: []string{"shirt"}, Occasions: []string{"work"}, Tags: []string{"classic"}, TimesWorn: 3},
			{ID: "o2", Name: "Night out", ItemIDs: []string{"dress"}, Occasions: []string{"party"}, Tags: []string{"bold", "evening"}},
		},
		[]domain.ClothingItem{
			{ID: "shirt", Name: "Oxford shirt", Color: "white"},
			{ID: "dress", Name: "Dress", Color: "black"},
		},
	)

	logs := wearlog.NewService(log, nil, time.UTC)
	cal := calendar.NewService(log, logs, time.UTC)
	an := analytics.NewService(log, cat, analytics.DefaultConfig(), time.UTC)
	matcher := stylequiz.NewMatcher(log, rand.New(rand.NewSource(1)))

	h := Handlers{
		Logs:      NewLogsHandler(log, logs),
		Calendar:  NewCalendarHandler(log, cal),
		Analytics: NewAnalyticsHandler(log, logs, an),
		Quiz:      NewQuizHandler(log, matcher, cat, nil),
		Health:    NewHealthHandler(nil, "test"),
	}

	return NewRouter(h, RouterDeps{
		Logger: log,
		CORS:   config.CORSConfig{AllowedOrigins: "*"},
		Auth:   userInjector(userID),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogs_CreateAndList(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/logs", map[string]any{
		"outfit_id":   "o1",
		"date":        "2024-06-03",
		"time_of_day": "MORNING",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.OutfitLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "o1", created.OutfitID)

	rec = doJSON(t, router, http.MethodGet, "/api/logs?day=2024-06-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var logs []domain.OutfitLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)
}

func TestLogs_CreateValidationFailure(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/logs", map[string]any{
		"outfit_id":   "activity",
		"date":        "2024-06-03",
		"time_of_day": "MORNING",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "activity", resp.Fields[0].Field)
}

func TestLogs_UpdateNotFound(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/api/logs/%s", uuid.New()), map[string]any{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogs_DeleteIdempotent(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/logs", map[string]any{
		"outfit_id":   "o1",
		"date":        "2024-06-03",
		"time_of_day": "ALL_DAY",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.OutfitLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/logs/%s", created.ID)

	rec = doJSON(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":false}`, rec.Body.String())
}

func TestLogs_LoadWithoutMirror(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/logs/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loaded":0}`, rec.Body.String())
}

func TestLogs_BadID(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodDelete, "/api/logs/not-a-uuid", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCalendar_MonthProjection(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodGet, "/api/calendar?date=2024-06-15&granularity=MONTH", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var days []domain.CalendarDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	assert.Len(t, days, 30)
}

func TestCalendar_BadGranularity(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodGet, "/api/calendar?granularity=DECADE", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalytics_MostWorn(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/logs", map[string]any{
		"outfit_id":   "o1",
		"date":        "2024-06-03",
		"time_of_day": "ALL_DAY",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/analytics/most-worn", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ranking []domain.ItemWearCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranking))
	require.Len(t, ranking, 1)
	assert.Equal(t, "shirt", ranking[0].Item.ID)
	assert.Equal(t, 1, ranking[0].Count)
}

func TestAnalytics_TrendBadWindow(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodGet, "/api/analytics/trend?window=DECADE", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestQuiz_Match(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodPost, "/api/quiz/match", map[string]any{
		"answers": map[string]string{"style": "Bold & trendy"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var outfit domain.Outfit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outfit))
	assert.Equal(t, "o2", outfit.ID)
}

func TestQuiz_Questions(t *testing.T) {
	router := testRouter(t, uuid.New())

	rec := doJSON(t, router, http.MethodGet, "/api/quiz/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []stylequiz.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &questions))
	assert.NotEmpty(t, questions)
}
