package analytics

import (
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// counter accumulates labeled counts while remembering first-encounter order.
type counter struct {
	counts map[string]int
	order  []string
	total  int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if label == "" {
		return
	}
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
	c.total++
}

func (c *counter) slices() []domain.DistributionSlice {
	out := make([]domain.DistributionSlice, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, domain.DistributionSlice{
			Label:      label,
			Count:      c.counts[label],
			Percentage: percentage(c.counts[label], c.total),
		})
	}
	return out
}

// OccasionDistribution aggregates logs by occasion. A log's own activity wins
// (with the "other" substitution); otherwise every occasion of the resolved
// outfit counts once. Logs with neither contribute nothing.
func (s *Service) OccasionDistribution(logs []*domain.OutfitLog) []domain.DistributionSlice {
	c := newCounter()
	for _, l := range logs {
		if activity := l.EffectiveActivity(); activity != "" {
			c.add(activity)
			continue
		}
		outfit, ok := s.catalog.OutfitByID(l.OutfitID)
		if !ok {
			continue
		}
		for _, occasion := range outfit.Occasions {
			c.add(occasion)
		}
	}
	return c.slices()
}

// SeasonDistribution aggregates logs by the season sets of their resolved
// outfits. The sentinel season "all" counts like any other season.
func (s *Service) SeasonDistribution(logs []*domain.OutfitLog) []domain.DistributionSlice {
	c := newCounter()
	for _, l := range logs {
		outfit, ok := s.catalog.OutfitByID(l.OutfitID)
		if !ok {
			continue
		}
		for _, season := range outfit.Seasons {
			c.add(season)
		}
	}
	return c.slices()
}

// ColorDistribution aggregates logs by the colors of the items in their
// resolved outfits. Unresolvable items are skipped.
func (s *Service) ColorDistribution(logs []*domain.OutfitLog) []domain.DistributionSlice {
	c := newCounter()
	for _, l := range logs {
		outfit, ok := s.catalog.OutfitByID(l.OutfitID)
		if !ok {
			continue
		}
		for _, itemID := range outfit.ItemIDs {
			item, ok := s.catalog.ClothingItemByID(itemID)
			if !ok {
				continue
			}
			c.add(item.Color)
		}
	}
	return c.slices()
}
