package activity

import (
	"context"
	"database/sql"
)

const defaultListLimit = 100

type Repository interface {
	Log(ctx context.Context, e Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Log(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (admin_id, admin_email, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.AdminID, e.AdminEmail, e.Action, e.EntityType, e.EntityID, e.Details)
	return err
}

func (r *repository) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, admin_id, admin_email, action, entity_type, entity_id, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminEmail, &e.Action,
			&e.EntityType, &e.EntityID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
