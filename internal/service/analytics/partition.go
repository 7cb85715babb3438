package analytics

import (
	"math"
	"sort"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// WearPartition splits the catalog's outfits into frequently and rarely worn
// buckets by their own wear counters. The quartile fractions and the
// zero-count rule come from Config. Never-worn outfits are excluded from the
// frequently bucket even when the quartile would reach them.
func (s *Service) WearPartition() domain.WearPartition {
	outfits := s.catalog.Outfits()
	n := len(outfits)
	if n == 0 {
		return domain.WearPartition{}
	}

	byWear := make([]domain.Outfit, n)
	copy(byWear, outfits)
	sort.SliceStable(byWear, func(i, j int) bool {
		return byWear[i].TimesWorn > byWear[j].TimesWorn
	})

	freqN := quartileSize(n, s.cfg.FrequentQuartile)
	rareN := quartileSize(n, s.cfg.RareQuartile)

	var p domain.WearPartition

	for _, o := range byWear[:freqN] {
		if o.TimesWorn == 0 {
			break // sorted descending, everything after is also zero
		}
		p.Frequently = append(p.Frequently, o)
	}

	rare := make(map[string]bool, rareN)
	for _, o := range byWear[n-rareN:] {
		rare[o.ID] = true
	}
	if s.cfg.RarelyIncludesZero {
		for _, o := range byWear {
			if o.TimesWorn == 0 {
				rare[o.ID] = true
			}
		}
	}

	// Report rarely worn outfits in catalog order.
	for _, o := range outfits {
		if rare[o.ID] {
			p.Rarely = append(p.Rarely, o)
		}
	}
	return p
}

// quartileSize converts a fraction of n into a bucket size, at least 1.
func quartileSize(n int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	size := int(math.Round(float64(n) * fraction))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}
	return size
}
