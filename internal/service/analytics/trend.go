package analytics

import (
	"strings"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// UsageTrend buckets logs over a trailing window ending today: one bucket per
// day for WEEK (7) and MONTH (30), one per calendar month for YEAR (12).
// Bucket totals count each log once; category counts may overlap when a log's
// occasions match several categories, which is why Other is derived as
// total minus named, clamped at zero.
func (s *Service) UsageTrend(logs []*domain.OutfitLog, window domain.TrendWindow) []domain.TrendBucket {
	today := domain.DayStart(s.now(), s.loc)

	switch window {
	case domain.TrendWindowWeek:
		return s.dailyTrend(logs, today, 7)
	case domain.TrendWindowMonth:
		return s.dailyTrend(logs, today, 30)
	case domain.TrendWindowYear:
		return s.monthlyTrend(logs, today)
	default:
		return s.dailyTrend(logs, today, 7)
	}
}

func (s *Service) dailyTrend(logs []*domain.OutfitLog, today time.Time, days int) []domain.TrendBucket {
	buckets := make([]domain.TrendBucket, days)
	index := make(map[string]int, days)
	for i := range buckets {
		start := today.AddDate(0, 0, i-days+1)
		buckets[i] = domain.TrendBucket{
			Label: start.Format("Jan 2"),
			Start: start,
		}
		index[start.Format("2006-01-02")] = i
	}

	for _, l := range logs {
		key := domain.DayStart(l.Date, s.loc).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		s.countInto(&buckets[i], l)
	}

	finishBuckets(buckets)
	return buckets
}

func (s *Service) monthlyTrend(logs []*domain.OutfitLog, today time.Time) []domain.TrendBucket {
	const months = 12

	buckets := make([]domain.TrendBucket, months)
	for i := range buckets {
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc).AddDate(0, i-months+1, 0)
		buckets[i] = domain.TrendBucket{
			Label: start.Format("Jan 2006"),
			Start: start,
		}
	}

	for _, l := range logs {
		d := l.Date.In(s.loc)
		for i := range buckets {
			if buckets[i].Start.Year() == d.Year() && buckets[i].Start.Month() == d.Month() {
				s.countInto(&buckets[i], l)
				break
			}
		}
	}

	finishBuckets(buckets)
	return buckets
}

// countInto adds one log to a bucket's total and to every matching named
// category.
func (s *Service) countInto(b *domain.TrendBucket, l *domain.OutfitLog) {
	b.Total++

	for _, label := range s.occasionLabels(l) {
		label = strings.ToLower(label)
		if strings.Contains(label, "casual") {
			b.Categories.Casual++
		}
		if strings.Contains(label, "business") || strings.Contains(label, "work") {
			b.Categories.Business++
		}
		if strings.Contains(label, "formal") {
			b.Categories.Formal++
		}
		if strings.Contains(label, "party") {
			b.Categories.Party++
		}
	}
}

// occasionLabels resolves the occasion labels of a log the same way the
// occasion distribution does: own activity first, outfit occasions otherwise.
func (s *Service) occasionLabels(l *domain.OutfitLog) []string {
	if activity := l.EffectiveActivity(); activity != "" {
		return []string{activity}
	}
	if outfit, ok := s.catalog.OutfitByID(l.OutfitID); ok {
		return outfit.Occasions
	}
	return nil
}

// finishBuckets derives Other = total - named, clamped at zero.
func finishBuckets(buckets []domain.TrendBucket) {
	for i := range buckets {
		c := &buckets[i].Categories
		other := buckets[i].Total - c.Casual - c.Business - c.Formal - c.Party
		if other < 0 {
			other = 0
		}
		c.Other = other
	}
}
