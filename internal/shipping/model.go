package shipping

import "github.com/shopspring/decimal"

type Wilaya struct {
	ID            int             `json:"id"`
	Code          int             `json:"code"`
	NameAr        string          `json:"nameAr"`
	NameEn        string          `json:"nameEn"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	IsActive      bool            `json:"isActive"`
	// Baladiyas come from the static reference table, not the database.
	Baladiyas []Baladiya `json:"baladiyas,omitempty"`
}

type WilayaInput struct {
	Code          int             `json:"code"`
	NameAr        string          `json:"nameAr"`
	NameEn        string          `json:"nameEn"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	IsActive      bool            `json:"isActive"`
}

type Baladiya struct {
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
}
