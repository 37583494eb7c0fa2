package cms

import (
	"context"
	"testing"

	"maktaba-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPage(ctx context.Context, slug string) (*SitePage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SitePage), args.Error(1)
}

func (m *MockRepository) UpsertPage(ctx context.Context, slug string, in SitePageInput) (*SitePage, error) {
	args := m.Called(ctx, slug, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SitePage), args.Error(1)
}

func (m *MockRepository) ListPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BlogPost), args.Error(1)
}

func (m *MockRepository) GetPost(ctx context.Context, id int) (*BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlogPost), args.Error(1)
}

func (m *MockRepository) CreatePost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlogPost), args.Error(1)
}

func (m *MockRepository) UpdatePost(ctx context.Context, id int, in BlogPostInput) (*BlogPost, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlogPost), args.Error(1)
}

func (m *MockRepository) DeletePost(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestUpsertPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid upsert", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := SitePageInput{TitleAr: "من نحن", ContentAr: "..."}
		repo.On("UpsertPage", ctx, "about", in).Return(&SitePage{ID: 1, Slug: "about", TitleAr: "من نحن"}, nil)

		p, err := svc.UpsertPage(ctx, "about", in)
		assert.NoError(t, err)
		assert.Equal(t, "about", p.Slug)
	})

	t.Run("Rejects bad slugs", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		for _, slug := range []string{"", "About", "a b", "a/b", "слаг"} {
			_, err := svc.UpsertPage(ctx, slug, SitePageInput{TitleEn: "About"})
			assert.ErrorIs(t, err, utils.ErrValidation, "slug %q", slug)
		}
		repo.AssertNotCalled(t, "UpsertPage")
	})

	t.Run("Requires a title in some language", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.UpsertPage(ctx, "about", SitePageInput{})
		assert.ErrorIs(t, err, utils.ErrValidation)
	})
}

func TestGetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Bad slug reads as missing", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.GetPage(ctx, "../etc/passwd")
		assert.ErrorIs(t, err, ErrPageNotFound)
		repo.AssertNotCalled(t, "GetPage")
	})
}

func TestBlogPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Public list sees published only", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListPosts", ctx, true).Return([]BlogPost{{ID: 1, Published: true}}, nil)

		posts, err := svc.ListPublishedPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("Admin list sees drafts", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListPosts", ctx, false).Return([]BlogPost{{ID: 1}, {ID: 2, Published: true}}, nil)

		posts, err := svc.ListAllPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("Create requires title and content", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreatePost(ctx, BlogPostInput{TitleAr: "عنوان"})
		assert.ErrorIs(t, err, utils.ErrValidation)
		repo.AssertNotCalled(t, "CreatePost")
	})
}
