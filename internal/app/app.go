package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres"
	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres/clothingitem"
	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres/outfit"
	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres/outfitlog"
	"github.com/outfitly/wardrobe-backend/internal/auth"
	"github.com/outfitly/wardrobe-backend/internal/catalog"
	"github.com/outfitly/wardrobe-backend/internal/config"
	"github.com/outfitly/wardrobe-backend/internal/service/analytics"
	"github.com/outfitly/wardrobe-backend/internal/service/calendar"
	"github.com/outfitly/wardrobe-backend/internal/service/stylequiz"
	"github.com/outfitly/wardrobe-backend/internal/service/wearlog"
	"github.com/outfitly/wardrobe-backend/internal/transport/middleware"
	"github.com/outfitly/wardrobe-backend/internal/transport/rest"
	"github.com/outfitly/wardrobe-backend/migrations"
)

// Run is the application entry point: load configuration, connect to
// postgres, apply migrations, build the service graph, and serve HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	outfitRepo := outfit.New(pool)
	itemRepo := clothingitem.New(pool)
	logRepo := outfitlog.New(pool)

	snapshot, err := catalog.Load(ctx, outfitRepo, itemRepo)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	loc := cfg.Analytics.Location()

	logStore := wearlog.NewService(logger, logRepo, loc)
	calendarSvc := calendar.NewService(logger, logStore, loc)
	analyticsSvc := analytics.NewService(logger, snapshot, analytics.Config{
		TopWornLimit:       cfg.Analytics.TopWornLimit,
		FrequentQuartile:   cfg.Analytics.FrequentQuartile,
		RareQuartile:       cfg.Analytics.RareQuartile,
		RarelyIncludesZero: cfg.Analytics.RarelyIncludesZero,
	}, loc)
	matcher := stylequiz.NewMatcher(logger, nil)

	questions, err := loadQuestions(cfg.Quiz)
	if err != nil {
		return fmt.Errorf("load quiz questions: %w", err)
	}

	validator := auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Logs:      rest.NewLogsHandler(logger, logStore),
		Calendar:  rest.NewCalendarHandler(logger, calendarSvc),
		Analytics: rest.NewAnalyticsHandler(logger, logStore, analyticsSvc),
		Quiz:      rest.NewQuizHandler(logger, matcher, snapshot, questions),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Auth:        middleware.Auth(validator),
		RateLimiter: limiter,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	// Let in-flight log mirror writes drain before the pool closes.
	logStore.Wait()

	logger.Info("stopped")
	return nil
}
