package order

import (
	"context"
	"testing"
	"time"

	"maktaba-be/internal/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "customer_name", "phone", "address", "city",
		"wilaya_code", "wilaya_name", "baladiya", "shipping_price", "status",
		"total", "notes", "created_at",
	})
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "order_id", "book_id", "quantity", "unit_price",
		"id", "title_ar", "title_en", "author", "image",
	})
}

func TestRepository_CreateOrderTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Commits order, items and stock decrement", func(t *testing.T) {
		o := &Order{
			CustomerName: "Amine Benali",
			Phone:        "0550123456",
			Address:      "12 Rue Didouche Mourad",
			City:         "Algiers",
			Status:       StatusPending,
			Total:        decimal.NewFromInt(5000),
		}
		items := []Item{{BookID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(2500)}}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(7, 1, 2, decimal.NewFromInt(2500)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectExec(`UPDATE books`).
			WithArgs(2, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateOrderTx(ctx, o, items)
		assert.NoError(t, err)
		assert.Equal(t, 7, o.ID)
		require.Len(t, o.Items, 1)
		assert.Equal(t, 11, o.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back when stock runs out", func(t *testing.T) {
		o := &Order{
			CustomerName: "Amine Benali",
			Phone:        "0550123456",
			Address:      "12 Rue Didouche Mourad",
			City:         "Algiers",
			Status:       StatusPending,
			Total:        decimal.NewFromInt(2500),
		}
		items := []Item{{BookID: 1, Quantity: 5, UnitPrice: decimal.NewFromInt(2500)}}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec(`UPDATE books`).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateOrderTx(ctx, o, items)
		assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found with items", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(orderRows().AddRow(
				7, nil, "Amine Benali", "0550123456", "12 Rue Didouche Mourad", "Algiers",
				16, "الجزائر", nil, "400", "pending", "5400", nil, time.Now(),
			))
		mock.ExpectQuery(`SELECT .* FROM order_items oi`).
			WithArgs(7).
			WillReturnRows(itemRows().AddRow(
				11, 7, 1, 2, "2500",
				1, "مقدمة ابن خلدون", "The Muqaddimah", "Ibn Khaldun", "img",
			))

		o, err := repo.GetOrder(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "5400", o.Total.String())
		require.Len(t, o.Items, 1)
		assert.Equal(t, "The Muqaddimah", o.Items[0].Book.TitleEn)
		assert.Equal(t, "2500", o.Items[0].UnitPrice.String())
	})

	t.Run("Item survives deleted book", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).
			WithArgs(8).
			WillReturnRows(orderRows().AddRow(
				8, nil, "Amine Benali", "0550123456", "12 Rue Didouche Mourad", "Algiers",
				nil, nil, nil, nil, "delivered", "1800", nil, time.Now(),
			))
		mock.ExpectQuery(`SELECT .* FROM order_items oi`).
			WithArgs(8).
			WillReturnRows(itemRows().AddRow(
				12, 8, 3, 1, "1800",
				nil, nil, nil, nil, nil,
			))

		o, err := repo.GetOrder(ctx, 8)
		assert.NoError(t, err)
		require.Len(t, o.Items, 1)
		assert.Nil(t, o.Items[0].Book)
		assert.Equal(t, "1800", o.Items[0].UnitPrice.String())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).
			WithArgs(99).
			WillReturnRows(orderRows())

		_, err := repo.GetOrder(ctx, 99)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Updates", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$2 WHERE id = \$1`).
			WithArgs(7, StatusShipped).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 7, StatusShipped))
	})

	t.Run("Missing order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$2 WHERE id = \$1`).
			WithArgs(99, StatusShipped).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 99, StatusShipped), ErrOrderNotFound)
	})
}

func TestRepository_TotalRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	// Cancelled orders stay out of the sum.
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM orders WHERE status != 'cancelled'`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("7300"))

	total, err := repo.TotalRevenue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "7300", total.String())
}
