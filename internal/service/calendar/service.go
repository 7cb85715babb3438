// Package calendar derives render-ready day sequences from the log store.
// Projection is a pure function of (reference date, granularity, store
// contents) and is safe to recompute on every request.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

type logSource interface {
	LogsForDay(ctx context.Context, day time.Time) ([]*domain.OutfitLog, error)
}

// Service implements the calendar projection layer.
type Service struct {
	log  *slog.Logger
	logs logSource
	loc  *time.Location
}

// NewService creates the calendar projection service.
func NewService(log *slog.Logger, logs logSource, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:  log.With("service", "calendar"),
		logs: logs,
		loc:  loc,
	}
}

// Project returns the ordered day sequence for ref at the given granularity,
// each day annotated with its logs.
//
//   - MONTH: every date of the calendar month containing ref.
//   - WEEK: the Sunday on/before ref through the following Saturday.
//   - DAY: ref alone.
func (s *Service) Project(ctx context.Context, ref time.Time, granularity domain.CalendarGranularity) ([]domain.CalendarDay, error) {
	if !granularity.IsValid() {
		return nil, domain.NewValidationError("granularity", "must be DAY, WEEK, or MONTH")
	}

	var first time.Time
	var count int
	switch granularity {
	case domain.GranularityMonth:
		r := ref.In(s.loc)
		first = time.Date(r.Year(), r.Month(), 1, 0, 0, 0, 0, s.loc)
		count = first.AddDate(0, 1, -1).Day()
	case domain.GranularityWeek:
		start := domain.DayStart(ref, s.loc)
		first = start.AddDate(0, 0, -int(start.Weekday()))
		count = 7
	case domain.GranularityDay:
		first = domain.DayStart(ref, s.loc)
		count = 1
	}

	days := make([]domain.CalendarDay, 0, count)
	for i := 0; i < count; i++ {
		date := first.AddDate(0, 0, i)
		logs, err := s.logs.LogsForDay(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("logs for %s: %w", date.Format("2006-01-02"), err)
		}
		days = append(days, domain.CalendarDay{
			Date: date,
			Logs: logs,
			// Only dates of the displayed month are enumerated; the flag lets
			// a grid renderer pad around them.
			InMonth: true,
		})
	}

	return days, nil
}
