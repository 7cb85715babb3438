package catalog

import (
	"context"
	"fmt"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

type outfitSource interface {
	List(ctx context.Context) ([]domain.Outfit, error)
}

type clothingItemSource interface {
	List(ctx context.Context) ([]domain.ClothingItem, error)
}

// Load builds a Snapshot from the persistence repositories. Called once at
// startup; the engine works against the snapshot for the rest of the session.
func Load(ctx context.Context, outfits outfitSource, items clothingItemSource) (*Snapshot, error) {
	os, err := outfits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load outfits: %w", err)
	}

	is, err := items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clothing items: %w", err)
	}

	return NewSnapshot(os, is), nil
}
