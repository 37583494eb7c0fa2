package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Wilaya, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Wilaya), args.Error(1)
}

func (m *MockRepository) GetActive(ctx context.Context) ([]Wilaya, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Wilaya), args.Error(1)
}

func (m *MockRepository) GetByCode(ctx context.Context, code int) (*Wilaya, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wilaya), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, in WilayaInput) (*Wilaya, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wilaya), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, in WilayaInput) (*Wilaya, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wilaya), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestQuoteForCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Active wilaya", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByCode", ctx, 16).Return(&Wilaya{
			Code: 16, NameAr: "الجزائر", NameEn: "Algiers",
			ShippingPrice: decimal.NewFromInt(400), IsActive: true,
		}, nil)

		code := 16
		q := svc.QuoteForCode(ctx, &code)
		assert.True(t, q.Price.Equal(decimal.NewFromInt(400)))
		assert.Equal(t, "الجزائر", q.WilayaName)
	})

	t.Run("No code quotes zero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		q := svc.QuoteForCode(ctx, nil)
		assert.True(t, q.Price.IsZero())
		repo.AssertNotCalled(t, "GetByCode")
	})

	t.Run("Unknown code falls back to zero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByCode", ctx, 99).Return(nil, ErrWilayaNotFound)

		code := 99
		q := svc.QuoteForCode(ctx, &code)
		assert.True(t, q.Price.IsZero())
	})

	t.Run("Inactive wilaya quotes zero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByCode", ctx, 33).Return(&Wilaya{
			Code: 33, NameAr: "إليزي", ShippingPrice: decimal.NewFromInt(1200), IsActive: false,
		}, nil)

		code := 33
		q := svc.QuoteForCode(ctx, &code)
		assert.True(t, q.Price.IsZero())
	})

	t.Run("DB failure degrades to zero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByCode", ctx, 5).Return(nil, errors.New("db down"))

		code := 5
		q := svc.QuoteForCode(ctx, &code)
		assert.True(t, q.Price.IsZero())
	})
}

func TestStaticWilayaData(t *testing.T) {
	assert.Len(t, AlgerianWilayas, 58)

	seen := map[int]bool{}
	for _, w := range AlgerianWilayas {
		assert.False(t, seen[w.Code], "duplicate wilaya code %d", w.Code)
		seen[w.Code] = true
		assert.NotEmpty(t, w.NameAr)
		assert.NotEmpty(t, w.NameEn)
		assert.Positive(t, w.DefaultPrice)
		assert.NotEmpty(t, w.Baladiyas)
	}

	assert.NotNil(t, BaladiyasForCode(16))
	assert.Nil(t, BaladiyasForCode(99))
}

func TestGetActiveAttachesBaladiyas(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetActive", ctx).Return([]Wilaya{{Code: 16, NameEn: "Algiers"}}, nil)

	ws, err := svc.GetActive(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, ws[0].Baladiyas)
}
