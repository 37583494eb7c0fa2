package order

import (
	"context"
	"database/sql"
	"errors"

	"maktaba-be/internal/catalog"

	"github.com/shopspring/decimal"
)

const orderColumns = `id, user_id, customer_name, phone, address, city,
	wilaya_code, wilaya_name, baladiya, shipping_price, status, total, notes, created_at`

type Repository interface {
	// CreateOrderTx inserts the order and its items and decrements stock in
	// one transaction. The order comes back with its id and inserted items.
	CreateOrderTx(ctx context.Context, o *Order, items []Item) error
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (*Order, error)
	GetUserOrders(ctx context.Context, userID int) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanOrder(s interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := s.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.Phone, &o.Address, &o.City,
		&o.WilayaCode, &o.WilayaName, &o.Baladiya, &o.ShippingPrice, &o.Status,
		&o.Total, &o.Notes, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreateOrderTx(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, customer_name, phone, address, city,
			wilaya_code, wilaya_name, baladiya, shipping_price, status, total, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at
	`,
		o.UserID, o.CustomerName, o.Phone, o.Address, o.City,
		o.WilayaCode, o.WilayaName, o.Baladiya, o.ShippingPrice, o.Status, o.Total, o.Notes,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		item := &items[i]
		item.OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, book_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.BookID, item.Quantity, item.UnitPrice).Scan(&item.ID)
		if err != nil {
			return err
		}

		// Guarded decrement; the whole order fails when any line oversells.
		if err := catalog.DecrementStockQ(ctx, tx, item.BookID, item.Quantity); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	o.Items = items
	return nil
}

func (r *repository) itemsForOrder(ctx context.Context, orderID int) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.book_id, oi.quantity, oi.unit_price,
			b.id, b.title_ar, b.title_en, b.author, b.image
		FROM order_items oi
		LEFT JOIN books b ON b.id = oi.book_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			it      Item
			bID     sql.NullInt64
			titleAr sql.NullString
			titleEn sql.NullString
			author  sql.NullString
			image   sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.BookID, &it.Quantity, &it.UnitPrice,
			&bID, &titleAr, &titleEn, &author, &image); err != nil {
			return nil, err
		}
		// The book may have been deleted since; the snapshot price stands.
		if bID.Valid {
			it.Book = &catalog.Book{
				ID:      int(bID.Int64),
				TitleAr: titleAr.String,
				TitleEn: titleEn.String,
				Author:  author.String,
				Image:   image.String,
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) withItems(ctx context.Context, orders []Order) ([]Order, error) {
	for i := range orders {
		items, err := r.itemsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *repository) listOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) GetOrders(ctx context.Context) ([]Order, error) {
	orders, err := r.listOrders(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return r.withItems(ctx, orders)
}

func (r *repository) GetOrder(ctx context.Context, id int) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *repository) GetUserOrders(ctx context.Context, userID int) ([]Order, error) {
	orders, err := r.listOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	return r.withItems(ctx, orders)
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return tx.Commit()
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&n)
	return n, err
}

func (r *repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM orders WHERE status != 'cancelled'
	`).Scan(&total)
	return total, err
}
