package wearlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/outfitly/wardrobe-backend/internal/domain"
	"github.com/outfitly/wardrobe-backend/pkg/ctxutil"
)

// AddLog validates input, assigns a fresh id, stores the record, and returns
// the stored copy. The store is never touched on validation failure.
func (s *Service) AddLog(ctx context.Context, input AddLogInput) (*domain.OutfitLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.OutfitLog{
		ID:                 uuid.New(),
		UserID:             userID,
		OutfitID:           input.OutfitID,
		Date:               input.Date,
		TimeOfDay:          input.TimeOfDay,
		Activity:           input.Activity,
		CustomActivity:     input.CustomActivity,
		Notes:              input.Notes,
		WeatherCondition:   input.WeatherCondition,
		Temperature:        input.Temperature,
		AskForAISuggestion: input.AskForAISuggestion,
		AISuggested:        input.AISuggested,
		CreatedAt:          s.now(),
	}

	s.mu.Lock()
	sess := s.session(userID)
	sess.logs = append(sess.logs, entry)
	sess.byID[entry.ID] = entry
	stored := copyLog(entry)
	s.mu.Unlock()

	s.mirrorWrite("insert", stored.ID, func(ctx context.Context) error {
		return s.mirror.Insert(ctx, stored)
	})

	s.log.InfoContext(ctx, "log added",
		slog.String("user_id", userID.String()),
		slog.String("log_id", entry.ID.String()),
		slog.String("outfit_id", entry.OutfitID),
		slog.Time("date", entry.Date),
	)

	return copyLog(stored), nil
}

// UpdateLog merges the provided fields into the record at id. The id itself
// never changes; fields not present in the input keep their prior value.
func (s *Service) UpdateLog(ctx context.Context, id uuid.UUID, input UpdateLogInput) (*domain.OutfitLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess := s.session(userID)
	entry, found := sess.byID[id]
	if !found {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	input.apply(entry)
	updated := copyLog(entry)
	s.mu.Unlock()

	s.mirrorWrite("update", id, func(ctx context.Context) error {
		return s.mirror.Update(ctx, updated)
	})

	s.log.InfoContext(ctx, "log updated",
		slog.String("user_id", userID.String()),
		slog.String("log_id", id.String()),
	)

	return copyLog(updated), nil
}

// DeleteLog removes the record at id and reports whether anything was removed.
// Deleting twice is not an error; the second call returns false.
func (s *Service) DeleteLog(ctx context.Context, id uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	s.mu.Lock()
	sess := s.session(userID)
	if _, found := sess.byID[id]; !found {
		s.mu.Unlock()
		return false, nil
	}
	delete(sess.byID, id)
	for idx, l := range sess.logs {
		if l.ID == id {
			sess.logs = append(sess.logs[:idx], sess.logs[idx+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.mirrorWrite("delete", id, func(ctx context.Context) error {
		return s.mirror.Delete(ctx, id)
	})

	s.log.InfoContext(ctx, "log deleted",
		slog.String("user_id", userID.String()),
		slog.String("log_id", id.String()),
	)

	return true, nil
}
