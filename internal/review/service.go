package review

import (
	"context"
	"fmt"
	"strings"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, in SubmitInput) (*Review, error)
	ListForBook(ctx context.Context, bookID int) ([]Review, error)
	RatingSummary(ctx context.Context, bookID int) (RatingSummary, error)
	AllRatingSummaries(ctx context.Context) (map[int]RatingSummary, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, in SubmitInput) (*Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", utils.ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("reviewer name is required: %w", utils.ErrValidation)
	}

	// Reviews go live immediately; admins remove abuse after the fact.
	rv, err := s.repo.Create(ctx, in, true)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("review submitted",
		zap.String("layer", "service"),
		zap.Int("book_id", in.BookID),
		zap.Int("rating", in.Rating),
	)
	return rv, nil
}

func (s *service) ListForBook(ctx context.Context, bookID int) ([]Review, error) {
	return s.repo.ListApproved(ctx, bookID)
}

func (s *service) RatingSummary(ctx context.Context, bookID int) (RatingSummary, error) {
	return s.repo.RatingSummary(ctx, bookID)
}

func (s *service) AllRatingSummaries(ctx context.Context) (map[int]RatingSummary, error) {
	return s.repo.AllRatingSummaries(ctx)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
