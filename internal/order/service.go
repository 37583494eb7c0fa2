package order

import (
	"context"
	"fmt"
	"strings"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/logger"
	"maktaba-be/internal/metrics"
	"maktaba-be/internal/shipping"
	"maktaba-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Notifier delivers order emails. Implementations must be safe to call from
// a goroutine; failures never reach the caller.
type Notifier interface {
	OrderCreated(ctx context.Context, o *Order, customerEmail string)
	OrderStatusChanged(ctx context.Context, o *Order, customerEmail string)
}

// UserDirectory resolves a customer's account email for notifications.
type UserDirectory interface {
	EmailByID(ctx context.Context, id int) (string, error)
}

// BookCatalog is the slice of the catalog the order service needs.
type BookCatalog interface {
	GetBook(ctx context.Context, id int) (*catalog.Book, error)
}

// ShippingQuoter resolves a shipping price for a wilaya code.
type ShippingQuoter interface {
	QuoteForCode(ctx context.Context, code *int) shipping.Quote
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (*Order, error)
	GetUserOrders(ctx context.Context, userID int) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (string, error)
}

type service struct {
	repo     Repository
	books    BookCatalog
	shipping ShippingQuoter
	users    UserDirectory
	notifier Notifier
}

func NewService(repo Repository, books BookCatalog, ship ShippingQuoter, users UserDirectory, notifier Notifier) Service {
	return &service{
		repo:     repo,
		books:    books,
		shipping: ship,
		users:    users,
		notifier: notifier,
	}
}

func validateCreate(in CreateInput) error {
	if len(strings.TrimSpace(in.CustomerName)) < 2 {
		return fmt.Errorf("customer name must be at least 2 characters: %w", utils.ErrValidation)
	}
	if len(strings.TrimSpace(in.Phone)) < 8 {
		return fmt.Errorf("phone must be at least 8 characters: %w", utils.ErrValidation)
	}
	if len(strings.TrimSpace(in.Address)) < 5 {
		return fmt.Errorf("address must be at least 5 characters: %w", utils.ErrValidation)
	}
	if len(strings.TrimSpace(in.City)) < 2 {
		return fmt.Errorf("city must be at least 2 characters: %w", utils.ErrValidation)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("order must contain at least one item: %w", utils.ErrValidation)
	}
	for i, item := range in.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("quantity must be at least 1 at index %d: %w", i, utils.ErrValidation)
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(in.Items)),
	)

	if err := validateCreate(in); err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	// Snapshot unit prices before any write. Every referenced book must
	// exist and be published.
	items := make([]Item, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		book, err := s.books.GetBook(ctx, line.BookID)
		if err != nil {
			return nil, err
		}
		if !book.Published {
			return nil, catalog.ErrBookNotFound
		}

		items = append(items, Item{
			BookID:    book.ID,
			Quantity:  line.Quantity,
			UnitPrice: book.Price,
		})
		total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	quote := s.shipping.QuoteForCode(ctx, in.WilayaCode)
	total = total.Add(quote.Price)

	o := &Order{
		UserID:       in.UserID,
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		WilayaCode:   in.WilayaCode,
		Baladiya:     in.Baladiya,
		Status:       StatusPending,
		Total:        total,
		Notes:        in.Notes,
	}
	if quote.WilayaName != "" {
		o.WilayaName = &quote.WilayaName
	}
	if in.WilayaCode != nil {
		price := quote.Price
		o.ShippingPrice = &price
	}

	if err := s.repo.CreateOrderTx(ctx, o, items); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.Int("order_id", o.ID),
		zap.String("total", o.Total.String()),
	)

	s.notifyAsync(ctx, o, func(ctx context.Context, email string) {
		s.notifier.OrderCreated(ctx, o, email)
	})

	return o, nil
}

// notifyAsync resolves the customer email and fires the notification without
// blocking the request. Email delivery never affects the committed order.
func (s *service) notifyAsync(ctx context.Context, o *Order, send func(context.Context, string)) {
	reqID := logger.RequestIDFrom(ctx)
	go func() {
		bg := logger.WithRequestID(context.Background(), reqID)

		email := ""
		if o.UserID != nil {
			var err error
			email, err = s.users.EmailByID(bg, *o.UserID)
			if err != nil {
				logger.FromCtx(bg).Warn("could not resolve customer email",
					zap.Int("order_id", o.ID),
					zap.Error(err),
				)
			}
		}
		send(bg, email)
	}()
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	return s.repo.GetOrders(ctx)
}

func (s *service) GetOrder(ctx context.Context, id int) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *service) GetUserOrders(ctx context.Context, userID int) ([]Order, error) {
	return s.repo.GetUserOrders(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	log := logger.FromCtx(ctx)

	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, utils.ErrValidation)
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", o.Status, status, ErrInvalidTransition)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status

	log.Info("order status updated",
		zap.Int("order_id", id),
		zap.String("status", string(status)),
	)

	s.notifyAsync(ctx, o, func(ctx context.Context, email string) {
		s.notifier.OrderStatusChanged(ctx, o, email)
	})

	return o, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) TotalRevenue(ctx context.Context) (string, error) {
	total, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return "", err
	}
	return total.String(), nil
}
