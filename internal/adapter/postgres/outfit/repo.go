// Package outfit implements the outfit repository using PostgreSQL. Item
// membership lives in the ordered outfit_items join table.
package outfit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/outfitly/wardrobe-backend/internal/adapter/postgres"
	"github.com/outfitly/wardrobe-backend/internal/domain"
)

const (
	table      = "outfits"
	itemsTable = "outfit_items"
)

var columns = []string{
	"id", "name", "seasons", "occasions", "tags",
	"favorite", "times_worn", "last_worn", "created_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides outfit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates an outfit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// outfitRow mirrors the outfits table for pgxscan.
type outfitRow struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Seasons   []string   `db:"seasons"`
	Occasions []string   `db:"occasions"`
	Tags      []string   `db:"tags"`
	Favorite  bool       `db:"favorite"`
	TimesWorn int        `db:"times_worn"`
	LastWorn  *time.Time `db:"last_worn"`
	CreatedAt time.Time  `db:"created_at"`
}

// itemRef is one row of the ordered outfit_items join table.
type itemRef struct {
	OutfitID string `db:"outfit_id"`
	ItemID   string `db:"item_id"`
	Position int    `db:"position"`
}

func (r outfitRow) toDomain(itemIDs []string) domain.Outfit {
	return domain.Outfit{
		ID:        r.ID,
		Name:      r.Name,
		ItemIDs:   itemIDs,
		Seasons:   r.Seasons,
		Occasions: r.Occasions,
		Tags:      r.Tags,
		Favorite:  r.Favorite,
		TimesWorn: r.TimesWorn,
		LastWorn:  r.LastWorn,
		CreatedAt: r.CreatedAt,
	}
}

// List returns all outfits with their ordered item ids.
func (r *Repo) List(ctx context.Context) ([]domain.Outfit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Select(columns...).From(table).OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list outfits: %w", err)
	}

	var rows []outfitRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}

	itemsByOutfit, err := r.listItemRefs(ctx, q)
	if err != nil {
		return nil, err
	}

	outfits := make([]domain.Outfit, len(rows))
	for i, row := range rows {
		outfits[i] = row.toDomain(itemsByOutfit[row.ID])
	}
	return outfits, nil
}

// GetByID returns a single outfit with its ordered item ids.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Outfit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get outfit: %w", err)
	}

	var row outfitRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "outfit", id)
	}

	itemsSQL, itemsArgs, err := builder.
		Select("outfit_id", "item_id", "position").From(itemsTable).
		Where(squirrel.Eq{"outfit_id": id}).
		OrderBy("position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get outfit items: %w", err)
	}

	var refs []itemRef
	if err := pgxscan.Select(ctx, q, &refs, itemsSQL, itemsArgs...); err != nil {
		return nil, fmt.Errorf("get outfit items: %w", err)
	}

	itemIDs := make([]string, len(refs))
	for i, ref := range refs {
		itemIDs[i] = ref.ItemID
	}

	outfit := row.toDomain(itemIDs)
	return &outfit, nil
}

// Insert stores an outfit and its item membership. Used by the seeder.
func (r *Repo) Insert(ctx context.Context, o *domain.Outfit) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(o.ID, o.Name, o.Seasons, o.Occasions, o.Tags,
			o.Favorite, o.TimesWorn, o.LastWorn, o.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert outfit: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "outfit", o.ID)
	}

	for pos, itemID := range o.ItemIDs {
		refSQL, refArgs, err := builder.Insert(itemsTable).
			Columns("outfit_id", "item_id", "position").
			Values(o.ID, itemID, pos).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert outfit item: %w", err)
		}
		if _, err := q.Exec(ctx, refSQL, refArgs...); err != nil {
			return postgres.MapError(err, "outfit_item", itemID)
		}
	}
	return nil
}

// listItemRefs loads the whole join table grouped by outfit, positions kept.
func (r *Repo) listItemRefs(ctx context.Context, q postgres.Querier) (map[string][]string, error) {
	sql, args, err := builder.
		Select("outfit_id", "item_id", "position").From(itemsTable).
		OrderBy("outfit_id", "position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list outfit items: %w", err)
	}

	var refs []itemRef
	if err := pgxscan.Select(ctx, q, &refs, sql, args...); err != nil {
		return nil, fmt.Errorf("list outfit items: %w", err)
	}

	byOutfit := make(map[string][]string)
	for _, ref := range refs {
		byOutfit[ref.OutfitID] = append(byOutfit[ref.OutfitID], ref.ItemID)
	}
	return byOutfit, nil
}
