package main

import (
	"database/sql"
	"fmt"

	"maktaba-be/internal/shipping"
	"maktaba-be/internal/user"
)

type seedBook struct {
	titleAr       string
	titleEn       string
	author        string
	descriptionAr string
	descriptionEn string
	price         string
	pointsPrice   int
	category      string
	language      string
	isbn          string
	stock         int
}

var seedBooks = []seedBook{
	{
		titleAr:       "مقدمة ابن خلدون",
		titleEn:       "The Muqaddimah",
		author:        "Ibn Khaldun",
		descriptionAr: "مقدمة ابن خلدون في علم العمران والاجتماع البشري",
		descriptionEn: "Ibn Khaldun's introduction to history and the science of civilization",
		price:         "2500",
		pointsPrice:   500,
		category:      "History",
		language:      "both",
		isbn:          "978-0691174954",
		stock:         15,
	},
	{
		titleAr:       "ألف ليلة وليلة",
		titleEn:       "One Thousand and One Nights",
		author:        "مجهول",
		descriptionAr: "حكايات شعبية من التراث العربي",
		price:         "3000",
		category:      "Literature",
		language:      "ar",
		stock:         8,
	},
	{
		titleAr:       "البؤساء",
		titleEn:       "Les Misérables",
		author:        "Victor Hugo",
		descriptionAr: "رواية فيكتور هوغو الخالدة",
		descriptionEn: "Victor Hugo's timeless novel",
		price:         "1800",
		pointsPrice:   300,
		category:      "Fiction",
		language:      "both",
		stock:         12,
	},
}

var seedCategories = []struct {
	nameAr, nameEn, slug string
}{
	{"تاريخ", "History", "history"},
	{"أدب", "Literature", "literature"},
	{"روايات", "Fiction", "fiction"},
}

// seed populates a fresh database with the demo accounts, the catalog and
// the full wilaya table. It is idempotent: a database that already has the
// admin account is left untouched.
func seed(db *sql.DB) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, "admin@daralibenzid.com").Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing seed: %w", err)
	}
	if exists {
		fmt.Println("database already seeded, skipping")
		return nil
	}

	adminHash, err := user.HashPassword("admin123")
	if err != nil {
		return err
	}
	userHash, err := user.HashPassword("user123")
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO users (email, password, role, name, points)
		VALUES ($1, $2, 'admin', 'Admin', 0), ($3, $4, 'user', 'Demo User', 1000)
	`, "admin@daralibenzid.com", adminHash, "user@example.com", userHash)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	for _, c := range seedCategories {
		if _, err := tx.Exec(`
			INSERT INTO categories (name_ar, name_en, slug) VALUES ($1, $2, $3)
		`, c.nameAr, c.nameEn, c.slug); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.slug, err)
		}
	}

	for _, b := range seedBooks {
		var isbn any
		if b.isbn != "" {
			isbn = b.isbn
		}
		if _, err := tx.Exec(`
			INSERT INTO books (title_ar, title_en, author, description_ar, description_en,
				price, points_price, category, language, published, isbn, stock)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10, $11)
		`, b.titleAr, b.titleEn, b.author, b.descriptionAr, b.descriptionEn,
			b.price, b.pointsPrice, b.category, b.language, isbn, b.stock); err != nil {
			return fmt.Errorf("failed to seed book %s: %w", b.titleEn, err)
		}
	}

	for _, w := range shipping.AlgerianWilayas {
		if _, err := tx.Exec(`
			INSERT INTO wilayas (code, name_ar, name_en, shipping_price, is_active)
			VALUES ($1, $2, $3, $4, true)
		`, w.Code, w.NameAr, w.NameEn, w.DefaultPrice); err != nil {
			return fmt.Errorf("failed to seed wilaya %d: %w", w.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Println("seed data inserted")
	return nil
}
