package clothingitem

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitly/wardrobe-backend/internal/domain"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func TestRepo_List(t *testing.T) {
	mock, repo := newMock(t)

	rows := pgxmock.NewRows(columns).
		AddRow("i1", "Oxford shirt", "top", "white", "cotton",
			[]string{"spring", "autumn"}, []string{"work"}, true, 12, "").
		AddRow("i2", "Jeans", "bottom", "blue", "denim",
			[]string{"all"}, []string{"casual"}, false, 30, "https://img/jeans.png")
	mock.ExpectQuery("SELECT .* FROM clothing_items").
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, []string{"spring", "autumn"}, items[0].Seasons)
	assert.True(t, items[0].Favorite)
	assert.Equal(t, 30, items[1].TimesWorn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT .* FROM clothing_items").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Insert(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec("INSERT INTO clothing_items").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Insert(context.Background(), &domain.ClothingItem{
		ID:   "i1",
		Name: "Oxford shirt",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
