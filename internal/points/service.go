package points

import (
	"context"
	"fmt"

	"maktaba-be/internal/activity"
	"maktaba-be/internal/catalog"
	"maktaba-be/internal/logger"
	"maktaba-be/internal/metrics"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

// BookCatalog is the slice of the catalog redemption needs.
type BookCatalog interface {
	GetBook(ctx context.Context, id int) (*catalog.Book, error)
}

// ActivityLog records successful redemptions. Failures are logged, never
// returned; the redemption already committed.
type ActivityLog interface {
	Log(ctx context.Context, e activity.Entry) error
}

type Service interface {
	Redeem(ctx context.Context, in RedeemInput) (*Receipt, error)
}

type service struct {
	repo     Repository
	books    BookCatalog
	activity ActivityLog
}

func NewService(repo Repository, books BookCatalog, log ActivityLog) Service {
	return &service{repo: repo, books: books, activity: log}
}

func (s *service) Redeem(ctx context.Context, in RedeemInput) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Redeem"),
		zap.Int("user_id", in.UserID),
		zap.Int("book_id", in.BookID),
	)

	if in.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", utils.ErrValidation)
	}

	book, err := s.books.GetBook(ctx, in.BookID)
	if err != nil {
		return nil, err
	}
	if !book.Redeemable() {
		return nil, fmt.Errorf("book cannot be redeemed with points: %w", utils.ErrValidation)
	}

	cost := book.PointsPrice * in.Quantity
	remaining, err := s.repo.Redeem(ctx, in.UserID, in.BookID, in.Quantity, cost)
	if err != nil {
		log.Warn("redemption failed", zap.Int("cost", cost), zap.Error(err))
		return nil, err
	}

	metrics.Redemptions.Inc()
	log.Info("points redeemed",
		zap.Int("cost", cost),
		zap.Int("remaining", remaining),
	)

	if s.activity != nil {
		details := fmt.Sprintf("redeemed %d x book %d for %d points", in.Quantity, in.BookID, cost)
		entry := activity.Entry{
			AdminID:    &in.UserID,
			AdminEmail: in.UserEmail,
			Action:     "redeem_points",
			EntityType: "book",
			EntityID:   &in.BookID,
			Details:    &details,
		}
		if err := s.activity.Log(ctx, entry); err != nil {
			log.Warn("could not record redemption", zap.Error(err))
		}
	}

	return &Receipt{
		BookID:          in.BookID,
		Quantity:        in.Quantity,
		PointsUsed:      cost,
		RemainingPoints: remaining,
	}, nil
}
