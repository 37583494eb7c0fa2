package points

import (
	"context"
	"database/sql"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/user"
)

type Repository interface {
	// Redeem deducts the point cost and decrements stock in one transaction.
	// Either guard failing aborts the whole redemption.
	Redeem(ctx context.Context, userID, bookID, qty, cost int) (remaining int, err error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Redeem(ctx context.Context, userID, bookID, qty, cost int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	remaining, err := user.DeductPointsQ(ctx, tx, userID, cost)
	if err != nil {
		return 0, err
	}

	if err := catalog.DecrementStockQ(ctx, tx, bookID, qty); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return remaining, nil
}
