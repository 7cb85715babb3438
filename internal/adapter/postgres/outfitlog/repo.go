// Package outfitlog implements the outfit log repository using PostgreSQL.
// It is the mirror target of the in-memory log store: the store writes here
// in the background and hydrates from here at session start.
package outfitlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres"
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

const table = "outfit_logs"

var columns = []string{
	"id", "user_id", "outfit_id", "date", "time_of_day",
	"activity", "custom_activity", "notes", "weather_condition", "temperature",
	"ask_for_ai_suggestion", "ai_suggested", "ai_suggestion_feedback", "created_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides outfit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates an outfit log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// logRow mirrors the outfit_logs table for pgxscan.
type logRow struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	OutfitID             string     `db:"outfit_id"`
	Date                 time.Time  `db:"date"`
	TimeOfDay            string     `db:"time_of_day"`
	Activity             string     `db:"activity"`
	CustomActivity       string     `db:"custom_activity"`
	Notes                string     `db:"notes"`
	WeatherCondition     string     `db:"weather_condition"`
	Temperature          *float64   `db:"temperature"`
	AskForAISuggestion   bool       `db:"ask_for_ai_suggestion"`
	AISuggested          bool       `db:"ai_suggested"`
	AISuggestionFeedback *string    `db:"ai_suggestion_feedback"`
	CreatedAt            time.Time  `db:"created_at"`
}

func (r logRow) toDomain() *domain.OutfitLog {
	l := &domain.OutfitLog{
		ID:                 r.ID,
		UserID:             r.UserID,
		OutfitID:           r.OutfitID,
		Date:               r.Date,
		TimeOfDay:          domain.TimeOfDay(r.TimeOfDay),
		Activity:           r.Activity,
		CustomActivity:     r.CustomActivity,
		Notes:              r.Notes,
		WeatherCondition:   r.WeatherCondition,
		Temperature:        r.Temperature,
		AskForAISuggestion: r.AskForAISuggestion,
		AISuggested:        r.AISuggested,
		CreatedAt:          r.CreatedAt,
	}
	if r.AISuggestionFeedback != nil {
		fb := domain.AIFeedback(*r.AISuggestionFeedback)
		l.AISuggestionFeedback = &fb
	}
	return l
}

func feedbackValue(l *domain.OutfitLog) *string {
	if l.AISuggestionFeedback == nil {
		return nil
	}
	s := l.AISuggestionFeedback.String()
	return &s
}

// Insert stores a new outfit log.
func (r *Repo) Insert(ctx context.Context, l *domain.OutfitLog) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.OutfitID, l.Date, l.TimeOfDay.String(),
			l.Activity, l.CustomActivity, l.Notes, l.WeatherCondition, l.Temperature,
			l.AskForAISuggestion, l.AISuggested, feedbackValue(l), l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert outfit_log: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "outfit_log", l.ID.String())
	}
	return nil
}

// Update replaces all mutable fields of an existing outfit log.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Update(ctx context.Context, l *domain.OutfitLog) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Update(table).
		Set("outfit_id", l.OutfitID).
		Set("date", l.Date).
		Set("time_of_day", l.TimeOfDay.String()).
		Set("activity", l.Activity).
		Set("custom_activity", l.CustomActivity).
		Set("notes", l.Notes).
		Set("weather_condition", l.WeatherCondition).
		Set("temperature", l.Temperature).
		Set("ask_for_ai_suggestion", l.AskForAISuggestion).
		Set("ai_suggested", l.AISuggested).
		Set("ai_suggestion_feedback", feedbackValue(l)).
		Where(squirrel.Eq{"id": l.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update outfit_log: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "outfit_log", l.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outfit_log %s: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an outfit log by id. Deleting an absent row is not an error;
// the store's delete is idempotent and has already decided the outcome.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete outfit_log: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "outfit_log", id.String())
	}
	return nil
}

// ListByUser returns a user's logs ordered by date then insertion time.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.OutfitLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list outfit_logs: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list outfit_logs: %w", err)
	}

	logs := make([]*domain.OutfitLog, len(rows))
	for i, row := range rows {
		logs[i] = row.toDomain()
	}
	return logs, nil
}
