package rest

import (
	"log/slog"
	"net/http"

	"github.com/outfitly/wardrobe-backend/internal/config"
	"github.com/outfitly/wardrobe-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Logs      *LogsHandler
	Calendar  *CalendarHandler
	Analytics *AnalyticsHandler
	Quiz      *QuizHandler
	Health    *HealthHandler
}

// RouterDeps carries the cross-cutting pieces of the middleware chain.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Auth        middleware.Middleware
	RateLimiter *middleware.RateLimiter
}

// NewRouter mounts all routes and wraps them in the standard middleware
// chain: request id, logging, panic recovery, rate limiting, CORS, auth.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/logs", h.Logs.Create)
	mux.HandleFunc("POST /api/logs/load", h.Logs.Load)
	mux.HandleFunc("GET /api/logs", h.Logs.List)
	mux.HandleFunc("PATCH /api/logs/{id}", h.Logs.Update)
	mux.HandleFunc("DELETE /api/logs/{id}", h.Logs.Delete)

	mux.HandleFunc("GET /api/calendar", h.Calendar.Project)

	mux.HandleFunc("GET /api/analytics/most-worn", h.Analytics.MostWorn)
	mux.HandleFunc("GET /api/analytics/occasions", h.Analytics.Occasions)
	mux.HandleFunc("GET /api/analytics/seasons", h.Analytics.Seasons)
	mux.HandleFunc("GET /api/analytics/colors", h.Analytics.Colors)
	mux.HandleFunc("GET /api/analytics/wear-partition", h.Analytics.WearPartition)
	mux.HandleFunc("GET /api/analytics/trend", h.Analytics.Trend)
	mux.HandleFunc("GET /api/analytics/ai", h.Analytics.AIAssist)

	mux.HandleFunc("GET /api/quiz/questions", h.Quiz.Questions)
	mux.HandleFunc("POST /api/quiz/match", h.Quiz.Match)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	}
	if deps.RateLimiter != nil {
		mws = append(mws, deps.RateLimiter.Limit(600))
	}
	mws = append(mws, middleware.CORS(deps.CORS))
	if deps.Auth != nil {
		mws = append(mws, deps.Auth)
	}

	return middleware.Chain(mws...)(mux)
}
