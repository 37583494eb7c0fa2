package points

import (
	"context"
	"testing"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Redeem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Commits deduction and stock decrement together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users SET points = points - \$1 WHERE id = \$2 AND points >= \$1 RETURNING points`).
			WithArgs(500, 7).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(0))
		mock.ExpectExec(`UPDATE books SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$1`).
			WithArgs(1, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		remaining, err := repo.Redeem(ctx, 7, 1, 1, 500)
		assert.NoError(t, err)
		assert.Equal(t, 0, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Balance guard rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users SET points = points - \$1`).
			WithArgs(500, 7).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))
		mock.ExpectRollback()

		_, err := repo.Redeem(ctx, 7, 1, 1, 500)
		assert.ErrorIs(t, err, user.ErrInsufficientPoints)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stock guard rolls back after deduction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users SET points = points - \$1`).
			WithArgs(500, 7).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(200))
		mock.ExpectExec(`UPDATE books SET stock = stock - \$1`).
			WithArgs(1, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Redeem(ctx, 7, 1, 1, 500)
		assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
