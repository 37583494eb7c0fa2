package review

import (
	"context"
	"database/sql"
)

const reviewColumns = "id, book_id, user_id, name, rating, comment, approved, created_at"

type Repository interface {
	Create(ctx context.Context, in SubmitInput, approved bool) (*Review, error)
	ListApproved(ctx context.Context, bookID int) ([]Review, error)
	RatingSummary(ctx context.Context, bookID int) (RatingSummary, error)
	AllRatingSummaries(ctx context.Context) (map[int]RatingSummary, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, in SubmitInput, approved bool) (*Review, error) {
	var rv Review
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (book_id, user_id, name, rating, comment, approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reviewColumns+`
	`, in.BookID, in.UserID, in.Name, in.Rating, in.Comment, approved).
		Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Name, &rv.Rating, &rv.Comment, &rv.Approved, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) ListApproved(ctx context.Context, bookID int) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE book_id = $1 AND approved = true
		ORDER BY created_at DESC
	`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Name, &rv.Rating,
			&rv.Comment, &rv.Approved, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *repository) RatingSummary(ctx context.Context, bookID int) (RatingSummary, error) {
	var s RatingSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE book_id = $1 AND approved = true
	`, bookID).Scan(&s.Average, &s.Count)
	return s, err
}

func (r *repository) AllRatingSummaries(ctx context.Context) (map[int]RatingSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT book_id, AVG(rating), COUNT(*)
		FROM reviews
		WHERE approved = true
		GROUP BY book_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make(map[int]RatingSummary)
	for rows.Next() {
		var (
			bookID int
			s      RatingSummary
		)
		if err := rows.Scan(&bookID, &s.Average, &s.Count); err != nil {
			return nil, err
		}
		summaries[bookID] = s
	}
	return summaries, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}
