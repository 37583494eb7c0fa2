package cms

import (
	"context"
	"database/sql"
	"errors"
)

const (
	pageColumns = "id, slug, title_ar, title_en, content_ar, content_en, image_url, extra_data, updated_at"
	postColumns = "id, title_ar, title_en, content_ar, content_en, image_url, published, created_at"
)

type Repository interface {
	GetPage(ctx context.Context, slug string) (*SitePage, error)
	UpsertPage(ctx context.Context, slug string, in SitePageInput) (*SitePage, error)

	ListPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error)
	GetPost(ctx context.Context, id int) (*BlogPost, error)
	CreatePost(ctx context.Context, in BlogPostInput) (*BlogPost, error)
	UpdatePost(ctx context.Context, id int, in BlogPostInput) (*BlogPost, error)
	DeletePost(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanPage(s interface{ Scan(...any) error }) (*SitePage, error) {
	var p SitePage
	err := s.Scan(&p.ID, &p.Slug, &p.TitleAr, &p.TitleEn, &p.ContentAr, &p.ContentEn,
		&p.ImageURL, &p.ExtraData, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPost(s interface{ Scan(...any) error }) (*BlogPost, error) {
	var p BlogPost
	err := s.Scan(&p.ID, &p.TitleAr, &p.TitleEn, &p.ContentAr, &p.ContentEn,
		&p.ImageURL, &p.Published, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetPage(ctx context.Context, slug string) (*SitePage, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pageColumns+" FROM site_pages WHERE slug = $1", slug)
	return scanPage(row)
}

func (r *repository) UpsertPage(ctx context.Context, slug string, in SitePageInput) (*SitePage, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO site_pages (slug, title_ar, title_en, content_ar, content_en, image_url, extra_data, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (slug) DO UPDATE SET
			title_ar = EXCLUDED.title_ar,
			title_en = EXCLUDED.title_en,
			content_ar = EXCLUDED.content_ar,
			content_en = EXCLUDED.content_en,
			image_url = EXCLUDED.image_url,
			extra_data = EXCLUDED.extra_data,
			updated_at = NOW()
		RETURNING `+pageColumns,
		slug, in.TitleAr, in.TitleEn, in.ContentAr, in.ContentEn, in.ImageURL, in.ExtraData)
	return scanPage(row)
}

func (r *repository) ListPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error) {
	query := "SELECT " + postColumns + " FROM blog_posts"
	if publishedOnly {
		query += " WHERE published = true"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *repository) GetPost(ctx context.Context, id int) (*BlogPost, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM blog_posts WHERE id = $1", id)
	return scanPost(row)
}

func (r *repository) CreatePost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (title_ar, title_en, content_ar, content_en, image_url, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		in.TitleAr, in.TitleEn, in.ContentAr, in.ContentEn, in.ImageURL, in.Published)
	return scanPost(row)
}

func (r *repository) UpdatePost(ctx context.Context, id int, in BlogPostInput) (*BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE blog_posts
		SET title_ar = $2, title_en = $3, content_ar = $4, content_en = $5,
			image_url = $6, published = $7
		WHERE id = $1
		RETURNING `+postColumns,
		id, in.TitleAr, in.TitleEn, in.ContentAr, in.ContentEn, in.ImageURL, in.Published)
	return scanPost(row)
}

func (r *repository) DeletePost(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPostNotFound
	}
	return nil
}
