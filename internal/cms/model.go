package cms

import "time"

// SitePage is editable storefront content keyed by slug (about, contact, ...).
type SitePage struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	TitleAr   string    `json:"titleAr"`
	TitleEn   string    `json:"titleEn"`
	ContentAr string    `json:"contentAr"`
	ContentEn string    `json:"contentEn"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	ExtraData *string   `json:"extraData,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SitePageInput struct {
	TitleAr   string  `json:"titleAr"`
	TitleEn   string  `json:"titleEn"`
	ContentAr string  `json:"contentAr"`
	ContentEn string  `json:"contentEn"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	ExtraData *string `json:"extraData,omitempty"`
}

type BlogPost struct {
	ID        int       `json:"id"`
	TitleAr   string    `json:"titleAr"`
	TitleEn   string    `json:"titleEn"`
	ContentAr string    `json:"contentAr"`
	ContentEn string    `json:"contentEn"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogPostInput struct {
	TitleAr   string  `json:"titleAr"`
	TitleEn   string  `json:"titleEn"`
	ContentAr string  `json:"contentAr"`
	ContentEn string  `json:"contentEn"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Published bool    `json:"published"`
}
