package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const bookColumns = `id, title_ar, title_en, author, description_ar, description_en,
	price, points_price, category, category_id, image, language, published, isbn, stock, created_at`

type Repository interface {
	GetBooks(ctx context.Context, filter BookFilter) ([]Book, error)
	GetBook(ctx context.Context, id int) (*Book, error)
	CreateBook(ctx context.Context, in BookInput) (*Book, error)
	UpdateBook(ctx context.Context, id int, in BookInput) (*Book, error)
	DeleteBook(ctx context.Context, id int) error
	CountBooks(ctx context.Context) (int, error)
	CountLowStockBooks(ctx context.Context) (int, error)
	DecrementStock(ctx context.Context, bookID, qty int) error

	GetCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanBook(s interface{ Scan(...any) error }) (*Book, error) {
	var b Book
	err := s.Scan(&b.ID, &b.TitleAr, &b.TitleEn, &b.Author, &b.DescriptionAr, &b.DescriptionEn,
		&b.Price, &b.PointsPrice, &b.Category, &b.CategoryID, &b.Image, &b.Language,
		&b.Published, &b.ISBN, &b.Stock, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	query := "SELECT " + bookColumns + " FROM books"
	var (
		conds []string
		args  []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title_ar ILIKE $%d OR title_en ILIKE $%d OR author ILIKE $%d)", n, n, n))
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

func (r *repository) GetBook(ctx context.Context, id int) (*Book, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	return scanBook(row)
}

func (r *repository) CreateBook(ctx context.Context, in BookInput) (*Book, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO books (title_ar, title_en, author, description_ar, description_en,
			price, points_price, category, category_id, image, language, published, isbn, stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING `+bookColumns,
		in.TitleAr, in.TitleEn, in.Author, in.DescriptionAr, in.DescriptionEn,
		in.Price, in.PointsPrice, in.Category, in.CategoryID, in.Image, in.Language,
		in.Published, in.ISBN, in.Stock,
	)
	return scanBook(row)
}

func (r *repository) UpdateBook(ctx context.Context, id int, in BookInput) (*Book, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE books SET
			title_ar = $2, title_en = $3, author = $4,
			description_ar = $5, description_en = $6,
			price = $7, points_price = $8, category = $9, category_id = $10,
			image = $11, language = $12, published = $13, isbn = $14, stock = $15
		WHERE id = $1
		RETURNING `+bookColumns,
		id, in.TitleAr, in.TitleEn, in.Author, in.DescriptionAr, in.DescriptionEn,
		in.Price, in.PointsPrice, in.Category, in.CategoryID, in.Image, in.Language,
		in.Published, in.ISBN, in.Stock,
	)
	return scanBook(row)
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&n)
	return n, err
}

func (r *repository) CountLowStockBooks(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books WHERE stock < 5").Scan(&n)
	return n, err
}

// Execer is satisfied by both *sql.DB and *sql.Tx so stock decrements can
// join the order or redemption transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DecrementStockQ decrements stock only when enough remains. The guard lives
// in the statement itself, so concurrent buyers of the last copy cannot both
// succeed.
func DecrementStockQ(ctx context.Context, ex Execer, bookID, qty int) error {
	res, err := ex.ExecContext(ctx, `
		UPDATE books
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1
	`, qty, bookID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *repository) DecrementStock(ctx context.Context, bookID, qty int) error {
	return DecrementStockQ(ctx, r.db, bookID, qty)
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name_ar, name_en, slug FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.NameAr, &c.NameEn, &c.Slug); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *repository) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name_ar, name_en, slug)
		VALUES ($1, $2, $3)
		RETURNING id, name_ar, name_en, slug`,
		in.NameAr, in.NameEn, in.Slug,
	).Scan(&c.ID, &c.NameAr, &c.NameEn, &c.Slug)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories SET name_ar = $2, name_en = $3, slug = $4
		WHERE id = $1
		RETURNING id, name_ar, name_en, slug`,
		id, in.NameAr, in.NameEn, in.Slug,
	).Scan(&c.ID, &c.NameAr, &c.NameEn, &c.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
