// Command seeder populates the outfit and clothing-item catalog from wardrobe
// export files (JSON). It is intended to be run offline against an empty or
// freshly migrated database, not as part of the main server.
//
// Each fixture file holds a {"clothing_items": [...], "outfits": [...]}
// document. Legacy exports that carry a single "occasion" string instead of
// an "occasions" array are accepted and normalized on load. All fixtures are
// inserted in a single transaction: either the whole catalog lands or none
// of it does.
//
// Usage:
//
//	seeder [--dry-run] fixture.json [fixture.json ...]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres"
	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres/clothingitem"
	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres/outfit"
	"github.com/outfitly/wardrobe-backend/internal/app"
	"github.com/outfitly/wardrobe-backend/internal/config"
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

// rawItem is the fixture-file shape of a clothing item. Set-valued fields
// tolerate both a single string and an array; "occasion" is the legacy
// single-value spelling still present in old exports.
type rawItem struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Category  string                 `json:"category"`
	Color     string                 `json:"color"`
	Material  string                 `json:"material"`
	Seasons   domain.FlexibleStrings `json:"seasons"`
	Occasions domain.FlexibleStrings `json:"occasions"`
	Occasion  string                 `json:"occasion"`
	Favorite  bool                   `json:"favorite"`
	TimesWorn int                    `json:"times_worn"`
	ImageURL  string                 `json:"image_url"`
}

type rawOutfit struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	ItemIDs   domain.FlexibleStrings `json:"item_ids"`
	Seasons   domain.FlexibleStrings `json:"seasons"`
	Occasions domain.FlexibleStrings `json:"occasions"`
	Occasion  string                 `json:"occasion"`
	Tags      domain.FlexibleStrings `json:"tags"`
	Favorite  bool                   `json:"favorite"`
	TimesWorn int                    `json:"times_worn"`
	LastWorn  *time.Time             `json:"last_worn"`
	CreatedAt *time.Time             `json:"created_at"`
}

type fixture struct {
	ClothingItems []rawItem   `json:"clothing_items"`
	Outfits       []rawOutfit `json:"outfits"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "parse fixtures without writing to DB")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("usage: seeder [--dry-run] fixture.json [fixture.json ...]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	items, outfits, err := loadFixtures(ctx, paths)
	if err != nil {
		logger.Error("load fixtures", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("fixtures parsed",
		slog.Int("files", len(paths)),
		slog.Int("clothing_items", len(items)),
		slog.Int("outfits", len(outfits)),
	)

	if *dryRun {
		logger.Info("dry run, nothing written")
		return
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	itemRepo := clothingitem.New(pool)
	outfitRepo := outfit.New(pool)
	txm := postgres.NewTxManager(pool)

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		for i := range items {
			if err := itemRepo.Insert(ctx, &items[i]); err != nil {
				return fmt.Errorf("insert clothing item %s: %w", items[i].ID, err)
			}
		}
		for i := range outfits {
			if err := outfitRepo.Insert(ctx, &outfits[i]); err != nil {
				return fmt.Errorf("insert outfit %s: %w", outfits[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalog seeded",
		slog.Int("clothing_items", len(items)),
		slog.Int("outfits", len(outfits)),
	)
}

// loadFixtures parses all fixture files concurrently and concatenates their
// contents in path order.
func loadFixtures(ctx context.Context, paths []string) ([]domain.ClothingItem, []domain.Outfit, error) {
	fixtures := make([]fixture, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if err := json.Unmarshal(data, &fixtures[i]); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var items []domain.ClothingItem
	var outfits []domain.Outfit
	for _, f := range fixtures {
		for _, raw := range f.ClothingItems {
			items = append(items, domain.ClothingItem{
				ID:        raw.ID,
				Name:      raw.Name,
				Category:  raw.Category,
				Color:     raw.Color,
				Material:  raw.Material,
				Seasons:   raw.Seasons.Strings(),
				Occasions: domain.MergeOccasions(raw.Occasions.Strings(), raw.Occasion),
				Favorite:  raw.Favorite,
				TimesWorn: raw.TimesWorn,
				ImageURL:  raw.ImageURL,
			})
		}
		for _, raw := range f.Outfits {
			createdAt := time.Now()
			if raw.CreatedAt != nil {
				createdAt = *raw.CreatedAt
			}
			outfits = append(outfits, domain.Outfit{
				ID:        raw.ID,
				Name:      raw.Name,
				ItemIDs:   raw.ItemIDs.Strings(),
				Seasons:   raw.Seasons.Strings(),
				Occasions: domain.MergeOccasions(raw.Occasions.Strings(), raw.Occasion),
				Tags:      raw.Tags.Strings(),
				Favorite:  raw.Favorite,
				TimesWorn: raw.TimesWorn,
				LastWorn:  raw.LastWorn,
				CreatedAt: createdAt,
			})
		}
	}
	return items, outfits, nil
}
