package wearlog

import (
	"context"
	"sort"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

// LogsForDay returns all logs whose date falls on the given calendar day,
// in insertion order. Days without logs yield an empty slice.
func (s *Service) LogsForDay(ctx context.Context, day time.Time) ([]*domain.OutfitLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, found := s.sessions[userID]
	if !found {
		return []*domain.OutfitLog{}, nil
	}

	out := make([]*domain.OutfitLog, 0, 2)
	for _, l := range sess.logs {
		if domain.SameDay(l.Date, day, s.loc) {
			out = append(out, copyLog(l))
		}
	}
	return out, nil
}

// LogsInRange returns logs with date between start and end inclusive,
// ordered by calendar day, then insertion order within a day.
func (s *Service) LogsInRange(ctx context.Context, start, end time.Time) ([]*domain.OutfitLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from := domain.DayStart(start, s.loc)
	to := domain.DayStart(end, s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, found := s.sessions[userID]
	if !found {
		return []*domain.OutfitLog{}, nil
	}

	out := make([]*domain.OutfitLog, 0)
	for _, l := range sess.logs {
		day := domain.DayStart(l.Date, s.loc)
		if !day.Before(from) && !day.After(to) {
			out = append(out, copyLog(l))
		}
	}

	// Stable: insertion order is preserved within a day.
	sort.SliceStable(out, func(i, j int) bool {
		return domain.DayStart(out[i].Date, s.loc).Before(domain.DayStart(out[j].Date, s.loc))
	})
	return out, nil
}

// AllLogs returns every log of the session in insertion order. Analytics
// consumes this as its input set.
func (s *Service) AllLogs(ctx context.Context) ([]*domain.OutfitLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, found := s.sessions[userID]
	if !found {
		return []*domain.OutfitLog{}, nil
	}

	out := make([]*domain.OutfitLog, 0, len(sess.logs))
	for _, l := range sess.logs {
		out = append(out, copyLog(l))
	}
	return out, nil
}
