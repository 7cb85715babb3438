package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/internal/service/calendar"
)

// CalendarHandler serves the calendar projection endpoint.
type CalendarHandler struct {
	log      *slog.Logger
	calendar *calendar.Service
	now      func() time.Time
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(log *slog.Logger, cal *calendar.Service) *CalendarHandler {
	return &CalendarHandler{log: log, calendar: cal, now: time.Now}
}

// Project handles GET /api/calendar?date=&granularity=. The date defaults to
// today, the granularity to MONTH.
func (h *CalendarHandler) Project(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ref := h.now()
	if raw := q.Get("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		ref = parsed
	}

	granularity := domain.GranularityMonth
	if raw := q.Get("granularity"); raw != "" {
		granularity = domain.CalendarGranularity(raw)
	}

	days, err := h.calendar.Project(r.Context(), ref, granularity)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}
