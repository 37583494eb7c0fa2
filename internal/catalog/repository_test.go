package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title_ar", "title_en", "author", "description_ar", "description_en",
		"price", "points_price", "category", "category_id", "image", "language",
		"published", "isbn", "stock", "created_at",
	})
}

func TestRepository_GetBooks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("No filter", func(t *testing.T) {
		rows := bookRows().AddRow(
			1, "مقدمة ابن خلدون", "The Muqaddimah", "Ibn Khaldun", "...", "...",
			"2500", 0, "History", nil, "img", "both", true, nil, 10, time.Now(),
		)

		mock.ExpectQuery(`SELECT .* FROM books ORDER BY created_at DESC`).
			WillReturnRows(rows)

		books, err := repo.GetBooks(ctx, BookFilter{})
		assert.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, "The Muqaddimah", books[0].TitleEn)
		assert.True(t, books[0].Price.Equal(decimal.NewFromInt(2500)))
	})

	t.Run("Search matches title and author case-insensitively", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM books WHERE \(title_ar ILIKE \$1 OR title_en ILIKE \$1 OR author ILIKE \$1\) ORDER BY created_at DESC`).
			WithArgs("%خلدون%").
			WillReturnRows(bookRows().AddRow(
				1, "مقدمة ابن خلدون", "The Muqaddimah", "Ibn Khaldun", "...", "...",
				"2500", 0, "History", nil, "img", "both", true, nil, 10, time.Now(),
			))

		books, err := repo.GetBooks(ctx, BookFilter{Search: "خلدون"})
		assert.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, "مقدمة ابن خلدون", books[0].TitleAr)
	})

	t.Run("Category and search combined", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM books WHERE category = \$1 AND \(title_ar ILIKE \$2 OR title_en ILIKE \$2 OR author ILIKE \$2\)`).
			WithArgs("History", "%ibn%").
			WillReturnRows(bookRows())

		books, err := repo.GetBooks(ctx, BookFilter{Category: "History", Search: "ibn"})
		assert.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM books`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetBooks(ctx, BookFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_GetBook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM books WHERE id = \$1`).
			WithArgs(99).
			WillReturnRows(bookRows())

		_, err := repo.GetBook(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestDecrementStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Enough stock", func(t *testing.T) {
		mock.ExpectExec(`UPDATE books\s+SET stock = stock - \$1\s+WHERE id = \$2 AND stock >= \$1`).
			WithArgs(2, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DecrementStock(ctx, 1, 2))
	})

	t.Run("Last copy cannot oversell", func(t *testing.T) {
		mock.ExpectExec(`UPDATE books`).
			WithArgs(2, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DecrementStock(ctx, 1, 2), ErrInsufficientStock)
	})
}

func TestRepository_DeleteBook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteBook(context.Background(), 1))
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteBook(context.Background(), 2), ErrBookNotFound)
	})
}

func TestRepository_Categories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO categories`).
			WithArgs("تاريخ", "History", "history").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_en", "slug"}).
				AddRow(1, "تاريخ", "History", "history"))

		c, err := repo.CreateCategory(ctx, CategoryInput{NameAr: "تاريخ", NameEn: "History", Slug: "history"})
		assert.NoError(t, err)
		assert.Equal(t, 1, c.ID)
	})

	t.Run("Update missing", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE categories`).
			WithArgs(9, "x", "y", "z").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.UpdateCategory(ctx, 9, CategoryInput{NameAr: "x", NameEn: "y", Slug: "z"})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
