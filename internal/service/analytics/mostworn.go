package analytics

import (
	"sort"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// MostWornItems counts item appearances across the resolved outfits of the
// given logs and returns the topN items by count, descending. Ties keep
// first-encountered order. Items (or outfits) that fail catalog resolution
// are silently excluded. topN <= 0 falls back to the configured limit.
func (s *Service) MostWornItems(logs []*domain.OutfitLog, topN int) []domain.ItemWearCount {
	if topN <= 0 {
		topN = s.cfg.TopWornLimit
	}

	counts := make(map[string]int)
	var order []string

	for _, l := range logs {
		if l.IsActivity() {
			continue
		}
		outfit, ok := s.catalog.OutfitByID(l.OutfitID)
		if !ok {
			continue
		}
		for _, itemID := range outfit.ItemIDs {
			if _, seen := counts[itemID]; !seen {
				order = append(order, itemID)
			}
			counts[itemID]++
		}
	}

	// Stable sort keeps first-encountered order on equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]domain.ItemWearCount, 0, topN)
	for _, itemID := range order {
		item, ok := s.catalog.ClothingItemByID(itemID)
		if !ok {
			continue
		}
		out = append(out, domain.ItemWearCount{Item: *item, Count: counts[itemID]})
		if len(out) == topN {
			break
		}
	}
	return out
}
