package order

import (
	"time"

	"maktaba-be/internal/catalog"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal states accept no further transition.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo enforces the forward-only lifecycle:
// pending → confirmed → shipped → delivered, with cancellation possible
// while the order has not shipped.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

type Order struct {
	ID            int              `json:"id"`
	UserID        *int             `json:"userId,omitempty"`
	CustomerName  string           `json:"customerName"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	WilayaCode    *int             `json:"wilayaCode,omitempty"`
	WilayaName    *string          `json:"wilayaName,omitempty"`
	Baladiya      *string          `json:"baladiya,omitempty"`
	ShippingPrice *decimal.Decimal `json:"shippingPrice,omitempty"`
	Status        Status           `json:"status"`
	Total         decimal.Decimal  `json:"total"`
	Notes         *string          `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	Items         []Item           `json:"items,omitempty"`
}

// Item keeps the unit price the customer actually paid; it is never
// recomputed from the current catalog price.
type Item struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"orderId"`
	BookID    int             `json:"bookId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Book      *catalog.Book   `json:"book,omitempty"`
}

type ItemInput struct {
	BookID   int `json:"bookId"`
	Quantity int `json:"quantity"`
}

type CreateInput struct {
	UserID       *int        `json:"-"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	WilayaCode   *int        `json:"wilayaCode,omitempty"`
	Baladiya     *string     `json:"baladiya,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
	Items        []ItemInput `json:"items"`
}
