// Package clothingitem implements the clothing item repository using
// PostgreSQL. The engine treats items as read-only; writes exist for the
// catalog seeder.
package clothingitem

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres"
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

const table = "clothing_items"

var columns = []string{
	"id", "name", "category", "color", "material",
	"seasons", "occasions", "favorite", "times_worn", "image_url",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides clothing item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a clothing item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// itemRow mirrors the clothing_items table for pgxscan.
type itemRow struct {
	ID        string   `db:"id"`
	Name      string   `db:"name"`
	Category  string   `db:"category"`
	Color     string   `db:"color"`
	Material  string   `db:"material"`
	Seasons   []string `db:"seasons"`
	Occasions []string `db:"occasions"`
	Favorite  bool     `db:"favorite"`
	TimesWorn int      `db:"times_worn"`
	ImageURL  string   `db:"image_url"`
}

func (r itemRow) toDomain() domain.ClothingItem {
	return domain.ClothingItem{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Color:     r.Color,
		Material:  r.Material,
		Seasons:   r.Seasons,
		Occasions: r.Occasions,
		Favorite:  r.Favorite,
		TimesWorn: r.TimesWorn,
		ImageURL:  r.ImageURL,
	}
}

// List returns all clothing items ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.ClothingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clothing_items: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list clothing_items: %w", err)
	}

	items := make([]domain.ClothingItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// GetByID returns a single clothing item.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.ClothingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get clothing_item: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "clothing_item", id)
	}

	item := row.toDomain()
	return &item, nil
}

// Insert stores a clothing item. Used by the seeder.
func (r *Repo) Insert(ctx context.Context, item *domain.ClothingItem) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(item.ID, item.Name, item.Category, item.Color, item.Material,
			item.Seasons, item.Occasions, item.Favorite, item.TimesWorn, item.ImageURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert clothing_item: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "clothing_item", item.ID)
	}
	return nil
}
