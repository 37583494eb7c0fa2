package shipping

import (
	"context"
	"errors"

	"maktaba-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Quote is the resolved shipping cost for an order destination.
type Quote struct {
	Price      decimal.Decimal
	WilayaName string
}

type Service interface {
	GetAll(ctx context.Context) ([]Wilaya, error)
	GetActive(ctx context.Context) ([]Wilaya, error)
	Create(ctx context.Context, in WilayaInput) (*Wilaya, error)
	Update(ctx context.Context, id int, in WilayaInput) (*Wilaya, error)
	Count(ctx context.Context) (int, error)
	// QuoteForCode resolves the shipping price for a wilaya code. Unknown or
	// inactive codes quote zero so checkout never fails on shipping lookup.
	QuoteForCode(ctx context.Context, code *int) Quote
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func withBaladiyas(ws []Wilaya) []Wilaya {
	for i := range ws {
		ws[i].Baladiyas = BaladiyasForCode(ws[i].Code)
	}
	return ws
}

func (s *service) GetAll(ctx context.Context) ([]Wilaya, error) {
	ws, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return withBaladiyas(ws), nil
}

func (s *service) GetActive(ctx context.Context) ([]Wilaya, error) {
	ws, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return withBaladiyas(ws), nil
}

func (s *service) Create(ctx context.Context, in WilayaInput) (*Wilaya, error) {
	return s.repo.Create(ctx, in)
}

func (s *service) Update(ctx context.Context, id int, in WilayaInput) (*Wilaya, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) QuoteForCode(ctx context.Context, code *int) Quote {
	if code == nil {
		return Quote{Price: decimal.Zero}
	}

	w, err := s.repo.GetByCode(ctx, *code)
	if err != nil {
		if !errors.Is(err, ErrWilayaNotFound) {
			logger.FromCtx(ctx).Warn("shipping lookup failed",
				zap.Int("wilaya_code", *code),
				zap.Error(err),
			)
		}
		return Quote{Price: decimal.Zero}
	}
	if !w.IsActive {
		return Quote{Price: decimal.Zero, WilayaName: w.NameAr}
	}
	return Quote{Price: w.ShippingPrice, WilayaName: w.NameAr}
}
