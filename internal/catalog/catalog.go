// Package catalog exposes the read-only wardrobe catalog to the engine.
// Outfits and clothing items are owned by the wardrobe side of the
// application; the engine resolves them by identifier and must tolerate
// dangling references, so lookups report presence instead of erroring.
package catalog

import (
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// Provider is the catalog boundary consumed by analytics and style matching.
// Implementations never fail on a missing id.
type Provider interface {
	OutfitByID(id string) (*domain.Outfit, bool)
	ClothingItemByID(id string) (*domain.ClothingItem, bool)
	Outfits() []domain.Outfit
}

// Snapshot is an immutable in-memory catalog. It preserves the order outfits
// were given in, which downstream tie-breaking depends on.
type Snapshot struct {
	outfits     map[string]domain.Outfit
	outfitOrder []string
	items       map[string]domain.ClothingItem
}

// NewSnapshot builds a Snapshot from outfit and item slices. Later duplicates
// of an id replace earlier ones without changing their position.
func NewSnapshot(outfits []domain.Outfit, items []domain.ClothingItem) *Snapshot {
	s := &Snapshot{
		outfits: make(map[string]domain.Outfit, len(outfits)),
		items:   make(map[string]domain.ClothingItem, len(items)),
	}
	for _, o := range outfits {
		if _, seen := s.outfits[o.ID]; !seen {
			s.outfitOrder = append(s.outfitOrder, o.ID)
		}
		s.outfits[o.ID] = o
	}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

// OutfitByID returns the outfit for id, reporting whether it exists.
func (s *Snapshot) OutfitByID(id string) (*domain.Outfit, bool) {
	o, ok := s.outfits[id]
	if !ok {
		return nil, false
	}
	return &o, true
}

// ClothingItemByID returns the clothing item for id, reporting whether it exists.
func (s *Snapshot) ClothingItemByID(id string) (*domain.ClothingItem, bool) {
	it, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return &it, true
}

// Outfits returns all outfits in their original order.
func (s *Snapshot) Outfits() []domain.Outfit {
	out := make([]domain.Outfit, 0, len(s.outfitOrder))
	for _, id := range s.outfitOrder {
		out = append(out, s.outfits[id])
	}
	return out
}
