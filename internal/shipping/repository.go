package shipping

import (
	"context"
	"database/sql"
	"errors"
)

const wilayaColumns = "id, code, name_ar, name_en, shipping_price, is_active"

type Repository interface {
	GetAll(ctx context.Context) ([]Wilaya, error)
	GetActive(ctx context.Context) ([]Wilaya, error)
	GetByCode(ctx context.Context, code int) (*Wilaya, error)
	Create(ctx context.Context, in WilayaInput) (*Wilaya, error)
	Update(ctx context.Context, id int, in WilayaInput) (*Wilaya, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanWilaya(s interface{ Scan(...any) error }) (*Wilaya, error) {
	var w Wilaya
	err := s.Scan(&w.ID, &w.Code, &w.NameAr, &w.NameEn, &w.ShippingPrice, &w.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWilayaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) list(ctx context.Context, query string) ([]Wilaya, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wilayas []Wilaya
	for rows.Next() {
		w, err := scanWilaya(rows)
		if err != nil {
			return nil, err
		}
		wilayas = append(wilayas, *w)
	}
	return wilayas, rows.Err()
}

func (r *repository) GetAll(ctx context.Context) ([]Wilaya, error) {
	return r.list(ctx, "SELECT "+wilayaColumns+" FROM wilayas ORDER BY code")
}

func (r *repository) GetActive(ctx context.Context) ([]Wilaya, error) {
	return r.list(ctx, "SELECT "+wilayaColumns+" FROM wilayas WHERE is_active = true ORDER BY code")
}

func (r *repository) GetByCode(ctx context.Context, code int) (*Wilaya, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+wilayaColumns+" FROM wilayas WHERE code = $1", code)
	return scanWilaya(row)
}

func (r *repository) Create(ctx context.Context, in WilayaInput) (*Wilaya, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO wilayas (code, name_ar, name_en, shipping_price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+wilayaColumns,
		in.Code, in.NameAr, in.NameEn, in.ShippingPrice, in.IsActive,
	)
	return scanWilaya(row)
}

func (r *repository) Update(ctx context.Context, id int, in WilayaInput) (*Wilaya, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE wilayas SET code = $2, name_ar = $3, name_en = $4,
			shipping_price = $5, is_active = $6
		WHERE id = $1
		RETURNING `+wilayaColumns,
		id, in.Code, in.NameAr, in.NameEn, in.ShippingPrice, in.IsActive,
	)
	return scanWilaya(row)
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM wilayas").Scan(&n)
	return n, err
}
