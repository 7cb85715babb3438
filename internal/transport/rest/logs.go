package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/internal/service/wearlog"
)

// LogsHandler serves the outfit log CRUD endpoints.
type LogsHandler struct {
	log  *slog.Logger
	logs *wearlog.Service
}

// NewLogsHandler creates a LogsHandler.
func NewLogsHandler(log *slog.Logger, logs *wearlog.Service) *LogsHandler {
	return &LogsHandler{log: log, logs: logs}
}

// addLogRequest is the POST /api/logs payload.
type addLogRequest struct {
	OutfitID           string   `json:"outfit_id"`
	Date               string   `json:"date"`
	TimeOfDay          string   `json:"time_of_day"`
	Activity           string   `json:"activity"`
	CustomActivity     string   `json:"custom_activity"`
	Notes              string   `json:"notes"`
	WeatherCondition   string   `json:"weather_condition"`
	Temperature        *float64 `json:"temperature"`
	AskForAISuggestion bool     `json:"ask_for_ai_suggestion"`
	AISuggested        bool     `json:"ai_suggested"`
}

// updateLogRequest is the PATCH /api/logs/{id} payload; absent fields keep
// their prior value.
type updateLogRequest struct {
	OutfitID             *string  `json:"outfit_id"`
	Date                 *string  `json:"date"`
	TimeOfDay            *string  `json:"time_of_day"`
	Activity             *string  `json:"activity"`
	CustomActivity       *string  `json:"custom_activity"`
	Notes                *string  `json:"notes"`
	WeatherCondition     *string  `json:"weather_condition"`
	Temperature          *float64 `json:"temperature"`
	AskForAISuggestion   *bool    `json:"ask_for_ai_suggestion"`
	AISuggested          *bool    `json:"ai_suggested"`
	AISuggestionFeedback *string  `json:"ai_suggestion_feedback"`
}

// parseDate accepts a date-only value or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}

// Create handles POST /api/logs.
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := wearlog.AddLogInput{
		OutfitID:           req.OutfitID,
		TimeOfDay:          domain.TimeOfDay(req.TimeOfDay),
		Activity:           req.Activity,
		CustomActivity:     req.CustomActivity,
		Notes:              req.Notes,
		WeatherCondition:   req.WeatherCondition,
		Temperature:        req.Temperature,
		AskForAISuggestion: req.AskForAISuggestion,
		AISuggested:        req.AISuggested,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		input.Date = date
	}

	created, err := h.logs.AddLog(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/logs/{id}.
func (h *LogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req updateLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := wearlog.UpdateLogInput{
		OutfitID:           req.OutfitID,
		Activity:           req.Activity,
		CustomActivity:     req.CustomActivity,
		Notes:              req.Notes,
		WeatherCondition:   req.WeatherCondition,
		Temperature:        req.Temperature,
		AskForAISuggestion: req.AskForAISuggestion,
		AISuggested:        req.AISuggested,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		input.Date = &date
	}
	if req.TimeOfDay != nil {
		tod := domain.TimeOfDay(*req.TimeOfDay)
		input.TimeOfDay = &tod
	}
	if req.AISuggestionFeedback != nil {
		fb := domain.AIFeedback(*req.AISuggestionFeedback)
		input.AISuggestionFeedback = &fb
	}

	updated, err := h.logs.UpdateLog(r.Context(), id, input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/logs/{id}. Deleting twice is fine; the response
// reports whether anything was removed.
func (h *LogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	deleted, err := h.logs.DeleteLog(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// Load handles POST /api/logs/load. It rebuilds the caller's in-memory
// session from persistence, replacing whatever is held for that user.
func (h *LogsHandler) Load(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.logs.Load(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"loaded": loaded})
}

// List handles GET /api/logs?day= and GET /api/logs?from=&to=.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		logs []*domain.OutfitLog
		err  error
	)
	switch {
	case q.Get("day") != "":
		var day time.Time
		if day, err = parseDate(q.Get("day")); err == nil {
			logs, err = h.logs.LogsForDay(r.Context(), day)
		}
	case q.Get("from") != "" && q.Get("to") != "":
		var from, to time.Time
		if from, err = parseDate(q.Get("from")); err == nil {
			if to, err = parseDate(q.Get("to")); err == nil {
				logs, err = h.logs.LogsInRange(r.Context(), from, to)
			}
		}
	default:
		logs, err = h.logs.AllLogs(r.Context())
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
