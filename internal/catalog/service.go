package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	GetBooks(ctx context.Context, filter BookFilter) ([]Book, error)
	GetBook(ctx context.Context, id int) (*Book, error)
	CreateBook(ctx context.Context, in BookInput) (*Book, error)
	UpdateBook(ctx context.Context, id int, in BookInput) (*Book, error)
	DeleteBook(ctx context.Context, id int) error
	CountBooks(ctx context.Context) (int, error)
	CountLowStockBooks(ctx context.Context) (int, error)

	GetCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateBook(in BookInput) error {
	if strings.TrimSpace(in.TitleAr) == "" && strings.TrimSpace(in.TitleEn) == "" {
		return fmt.Errorf("title is required: %w", utils.ErrValidation)
	}
	if strings.TrimSpace(in.Author) == "" {
		return fmt.Errorf("author is required: %w", utils.ErrValidation)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative: %w", utils.ErrValidation)
	}
	if in.PointsPrice < 0 {
		return fmt.Errorf("points price cannot be negative: %w", utils.ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("stock cannot be negative: %w", utils.ErrValidation)
	}
	switch in.Language {
	case LangArabic, LangEnglish, LangBoth:
	default:
		return fmt.Errorf("language must be one of ar, en, both: %w", utils.ErrValidation)
	}
	return nil
}

func (s *service) GetBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetBooks"),
	)

	start := time.Now()
	books, err := s.repo.GetBooks(ctx, filter)
	if err != nil {
		log.Error("failed to fetch book list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Debug("book list fetched",
		zap.Int("count", len(books)),
		zap.String("category", filter.Category),
		zap.String("search", filter.Search),
		zap.Duration("duration", time.Since(start)),
	)

	return books, nil
}

func (s *service) GetBook(ctx context.Context, id int) (*Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *service) CreateBook(ctx context.Context, in BookInput) (*Book, error) {
	if err := validateBook(in); err != nil {
		return nil, err
	}
	return s.repo.CreateBook(ctx, in)
}

func (s *service) UpdateBook(ctx context.Context, id int, in BookInput) (*Book, error) {
	if err := validateBook(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateBook(ctx, id, in)
}

func (s *service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *service) CountBooks(ctx context.Context) (int, error) {
	return s.repo.CountBooks(ctx)
}

func (s *service) CountLowStockBooks(ctx context.Context) (int, error) {
	return s.repo.CountLowStockBooks(ctx)
}

func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, in)
}

func (s *service) UpdateCategory(ctx context.Context, id int, in CategoryInput) (*Category, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, id, in)
}

func (s *service) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.DeleteCategory(ctx, id)
}

func validateCategory(in CategoryInput) error {
	if strings.TrimSpace(in.Slug) == "" {
		return fmt.Errorf("slug is required: %w", utils.ErrValidation)
	}
	if strings.TrimSpace(in.NameAr) == "" && strings.TrimSpace(in.NameEn) == "" {
		return fmt.Errorf("name is required: %w", utils.ErrValidation)
	}
	return nil
}
