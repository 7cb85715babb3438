// Package wearlog owns the canonical, date-indexed collection of outfit logs.
// The in-memory store is the source of truth for the session; the persistence
// repository is a best-effort mirror written to in the background. A failed
// mirror write is logged and never rolls back the local mutation.
package wearlog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

// mirrorTimeout bounds each background mirror write.
const mirrorTimeout = 5 * time.Second

// persistence is the external collaborator that mirrors log mutations.
type persistence interface {
	Insert(ctx context.Context, log *domain.OutfitLog) error
	Update(ctx context.Context, log *domain.OutfitLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.OutfitLog, error)
}

// Service implements the outfit log store.
type Service struct {
	log    *slog.Logger
	mirror persistence
	loc    *time.Location
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	inflight sync.WaitGroup
}

// session holds one user's logs for the lifetime of the process.
type session struct {
	logs []*domain.OutfitLog // insertion order
	byID map[uuid.UUID]*domain.OutfitLog
}

// NewService creates the log store. mirror may be nil (no persistence, e.g.
// in tests); loc controls calendar-day bucketing.
func NewService(log *slog.Logger, mirror persistence, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      log.With("service", "wearlog"),
		mirror:   mirror,
		loc:      loc,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Wait blocks until all in-flight mirror writes have finished. Called during
// graceful shutdown.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) session(userID uuid.UUID) *session {
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &session{byID: make(map[uuid.UUID]*domain.OutfitLog)}
	s.sessions[userID] = sess
	return sess
}

// Load hydrates the user's session from the persistence collaborator,
// replacing whatever is currently in memory for that user.
func (s *Service) Load(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if s.mirror == nil {
		return 0, nil
	}

	logs, err := s.mirror.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	sess := &session{
		logs: logs,
		byID: make(map[uuid.UUID]*domain.OutfitLog, len(logs)),
	}
	for _, l := range logs {
		sess.byID[l.ID] = l
	}

	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session hydrated",
		slog.String("user_id", userID.String()),
		slog.Int("logs", len(logs)),
	)
	return len(logs), nil
}

// mirrorWrite runs op in the background and logs a warning on failure.
// The local mutation is already committed when this is called.
func (s *Service) mirrorWrite(what string, id uuid.UUID, op func(ctx context.Context) error) {
	if s.mirror == nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := op(ctx); err != nil {
			s.log.Warn("log sync failed",
				slog.String("op", what),
				slog.String("log_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func copyLog(l *domain.OutfitLog) *domain.OutfitLog {
	cp := *l
	return &cp
}
