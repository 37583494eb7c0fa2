package user

import (
	"context"
	"database/sql"
	"errors"

	"maktaba-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const userColumns = "id, email, password, role, name, phone, address, city, points, enabled, created_at"

type Repository interface {
	Create(ctx context.Context, in RegisterInput, hashedPassword string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	EmailByID(ctx context.Context, id int) (string, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, in UpdateInput) (*User, error)
	Delete(ctx context.Context, id int) error
	CountByRole(ctx context.Context, role Role) (int, error)
	DeductPoints(ctx context.Context, userID, cost int) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.Name, &u.Phone,
		&u.Address, &u.City, &u.Points, &u.Enabled, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, in RegisterInput, hashedPassword string, role Role) (*User, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password, role, name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		in.Email, hashedPassword, role, in.Name, in.Phone,
	)

	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (r *repository) GetByID(ctx context.Context, id int) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *repository) EmailByID(ctx context.Context, id int) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx, "SELECT email FROM users WHERE id = $1", id).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return email, err
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.Name, &u.Phone,
			&u.Address, &u.City, &u.Points, &u.Enabled, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *repository) Update(ctx context.Context, id int, in UpdateInput) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			role    = COALESCE($2, role),
			enabled = COALESCE($3, enabled),
			points  = COALESCE($4, points),
			name    = COALESCE($5, name),
			phone   = COALESCE($6, phone),
			address = COALESCE($7, address),
			city    = COALESCE($8, city)
		WHERE id = $1
		RETURNING `+userColumns,
		id, in.Role, in.Enabled, in.Points, in.Name, in.Phone, in.Address, in.City,
	)
	return scanUser(row)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}

func (r *repository) CountByRole(ctx context.Context, role Role) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE role = $1", role).Scan(&n)
	return n, err
}

// Queryer is satisfied by both *sql.DB and *sql.Tx so the deduction can
// participate in a larger transaction.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DeductPointsQ performs the balance check and deduction as one conditional
// update. Two concurrent redemptions can never both pass the guard.
func DeductPointsQ(ctx context.Context, q Queryer, userID, cost int) (int, error) {
	var remaining int
	err := q.QueryRowContext(ctx, `
		UPDATE users
		SET points = points - $1
		WHERE id = $2 AND points >= $1
		RETURNING points
	`, cost, userID).Scan(&remaining)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInsufficientPoints
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *repository) DeductPoints(ctx context.Context, userID, cost int) (int, error) {
	return DeductPointsQ(ctx, r.db, userID, cost)
}
