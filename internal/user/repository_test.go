package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(points int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password", "role", "name", "phone", "address", "city",
		"points", "enabled", "created_at",
	}).AddRow(1, "reader@example.com", "hashed", "user", "Reader", nil, nil, nil,
		points, true, time.Now())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("reader@example.com", "hashed", RoleUser, "Reader", nil).
			WillReturnRows(userRows(0))

		u, err := repo.Create(ctx, RegisterInput{Email: "reader@example.com", Name: "Reader"}, "hashed", RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, RegisterInput{Email: "x@example.com", Name: "X"}, "hashed", RoleUser)
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("reader@example.com").
			WillReturnRows(userRows(120))

		u, err := repo.FindByEmail(context.Background(), "reader@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 120, u.Points)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDeductPoints(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Sufficient balance", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users\s+SET points = points - \$1\s+WHERE id = \$2 AND points >= \$1\s+RETURNING points`).
			WithArgs(500, 1).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(0))

		remaining, err := repo.DeductPoints(context.Background(), 1, 500)
		assert.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("Insufficient balance leaves no trace", func(t *testing.T) {
		// The conditional WHERE matches no row, so the driver returns no rows
		// and nothing was written.
		mock.ExpectQuery(`UPDATE users`).
			WithArgs(500, 1).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))

		_, err := repo.DeductPoints(context.Background(), 1, 500)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})
}

func TestRepository_CountByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role = \$1`).
		WithArgs(RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.CountByRole(context.Background(), RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
}
