package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Language tags accepted on a book record.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
	LangBoth    = "both"
)

type Book struct {
	ID            int             `json:"id"`
	TitleAr       string          `json:"titleAr"`
	TitleEn       string          `json:"titleEn"`
	Author        string          `json:"author"`
	DescriptionAr string          `json:"descriptionAr"`
	DescriptionEn string          `json:"descriptionEn"`
	Price         decimal.Decimal `json:"price"`
	PointsPrice   int             `json:"pointsPrice"`
	Category      string          `json:"category"`
	CategoryID    *int            `json:"categoryId,omitempty"`
	Image         string          `json:"image"`
	Language      string          `json:"language"`
	Published     bool            `json:"published"`
	ISBN          *string         `json:"isbn,omitempty"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Redeemable reports whether the book can be bought with loyalty points.
func (b *Book) Redeemable() bool {
	return b.PointsPrice > 0
}

type BookInput struct {
	TitleAr       string          `json:"titleAr"`
	TitleEn       string          `json:"titleEn"`
	Author        string          `json:"author"`
	DescriptionAr string          `json:"descriptionAr"`
	DescriptionEn string          `json:"descriptionEn"`
	Price         decimal.Decimal `json:"price"`
	PointsPrice   int             `json:"pointsPrice"`
	Category      string          `json:"category"`
	CategoryID    *int            `json:"categoryId,omitempty"`
	Image         string          `json:"image"`
	Language      string          `json:"language"`
	Published     bool            `json:"published"`
	ISBN          *string         `json:"isbn,omitempty"`
	Stock         int             `json:"stock"`
}

// BookFilter narrows listings; zero values mean no filtering.
type BookFilter struct {
	Category string
	Search   string
}

type Category struct {
	ID     int    `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Slug   string `json:"slug"`
}

type CategoryInput struct {
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Slug   string `json:"slug"`
}
