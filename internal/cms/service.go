package cms

import (
	"context"
	"fmt"
	"strings"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	GetPage(ctx context.Context, slug string) (*SitePage, error)
	UpsertPage(ctx context.Context, slug string, in SitePageInput) (*SitePage, error)

	ListPublishedPosts(ctx context.Context) ([]BlogPost, error)
	ListAllPosts(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, id int) (*BlogPost, error)
	CreatePost(ctx context.Context, in BlogPostInput) (*BlogPost, error)
	UpdatePost(ctx context.Context, id int, in BlogPostInput) (*BlogPost, error)
	DeletePost(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, c := range slug {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

func (s *service) GetPage(ctx context.Context, slug string) (*SitePage, error) {
	if !validSlug(slug) {
		return nil, ErrPageNotFound
	}
	return s.repo.GetPage(ctx, slug)
}

func (s *service) UpsertPage(ctx context.Context, slug string, in SitePageInput) (*SitePage, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("slug must be lowercase letters, digits and dashes: %w", utils.ErrValidation)
	}
	if strings.TrimSpace(in.TitleAr) == "" && strings.TrimSpace(in.TitleEn) == "" {
		return nil, fmt.Errorf("page title is required in at least one language: %w", utils.ErrValidation)
	}

	p, err := s.repo.UpsertPage(ctx, slug, in)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("site page saved",
		zap.String("layer", "service"),
		zap.String("slug", slug),
	)
	return p, nil
}

func validatePost(in BlogPostInput) error {
	if strings.TrimSpace(in.TitleAr) == "" && strings.TrimSpace(in.TitleEn) == "" {
		return fmt.Errorf("post title is required in at least one language: %w", utils.ErrValidation)
	}
	if strings.TrimSpace(in.ContentAr) == "" && strings.TrimSpace(in.ContentEn) == "" {
		return fmt.Errorf("post content is required in at least one language: %w", utils.ErrValidation)
	}
	return nil
}

func (s *service) ListPublishedPosts(ctx context.Context) ([]BlogPost, error) {
	return s.repo.ListPosts(ctx, true)
}

func (s *service) ListAllPosts(ctx context.Context) ([]BlogPost, error) {
	return s.repo.ListPosts(ctx, false)
}

func (s *service) GetPost(ctx context.Context, id int) (*BlogPost, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *service) CreatePost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	if err := validatePost(in); err != nil {
		return nil, err
	}
	return s.repo.CreatePost(ctx, in)
}

func (s *service) UpdatePost(ctx context.Context, id int, in BlogPostInput) (*BlogPost, error) {
	if err := validatePost(in); err != nil {
		return nil, err
	}
	return s.repo.UpdatePost(ctx, id, in)
}

func (s *service) DeletePost(ctx context.Context, id int) error {
	return s.repo.DeletePost(ctx, id)
}
