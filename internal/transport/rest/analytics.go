package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/internal/service/analytics"
	"github.com/outfitly/wardrobe-backend/internal/service/wearlog"
)

// AnalyticsHandler serves the usage analytics endpoints. Every endpoint
// derives its view from the caller's full log set on demand.
type AnalyticsHandler struct {
	log       *slog.Logger
	logs      *wearlog.Service
	analytics *analytics.Service
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(log *slog.Logger, logs *wearlog.Service, svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{log: log, logs: logs, analytics: svc}
}

// MostWorn handles GET /api/analytics/most-worn?limit=.
func (h *AnalyticsHandler) MostWorn(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.AllLogs(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, r, h.log, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
	}

	writeJSON(w, http.StatusOK, h.analytics.MostWornItems(logs, limit))
}

// Occasions handles GET /api/analytics/occasions.
func (h *AnalyticsHandler) Occasions(w http.ResponseWriter, r *http.Request) {
	h.distribution(w, r, h.analytics.OccasionDistribution)
}

// Seasons handles GET /api/analytics/seasons.
func (h *AnalyticsHandler) Seasons(w http.ResponseWriter, r *http.Request) {
	h.distribution(w, r, h.analytics.SeasonDistribution)
}

// Colors handles GET /api/analytics/colors.
func (h *AnalyticsHandler) Colors(w http.ResponseWriter, r *http.Request) {
	h.distribution(w, r, h.analytics.ColorDistribution)
}

func (h *AnalyticsHandler) distribution(w http.ResponseWriter, r *http.Request, fn func([]*domain.OutfitLog) []domain.DistributionSlice) {
	logs, err := h.logs.AllLogs(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, fn(logs))
}

// WearPartition handles GET /api/analytics/wear-partition.
func (h *AnalyticsHandler) WearPartition(w http.ResponseWriter, r *http.Request) {
	// The partition reads wear counters straight off the catalog; the user
	// check still applies like every other analytics read.
	if _, err := h.logs.AllLogs(r.Context()); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.analytics.WearPartition())
}

// Trend handles GET /api/analytics/trend?window=.
func (h *AnalyticsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.AllLogs(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	window := domain.TrendWindowWeek
	if raw := r.URL.Query().Get("window"); raw != "" {
		window = domain.TrendWindow(raw)
		if !window.IsValid() {
			writeError(w, r, h.log, domain.NewValidationError("window", "must be WEEK, MONTH, or YEAR"))
			return
		}
	}

	writeJSON(w, http.StatusOK, h.analytics.UsageTrend(logs, window))
}

// AIAssist handles GET /api/analytics/ai.
func (h *AnalyticsHandler) AIAssist(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.AllLogs(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.analytics.AIAssistStats(logs))
}
