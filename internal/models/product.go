package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents a catalog entry. Fields are tagged for both DB scanning
// and JSON serialization; array columns use pq types.
type Product struct {
	ID           int            `db:"id" json:"id"`
	Slug         string         `db:"slug" json:"slug"`
	Name         string         `db:"name" json:"name"`
	Description  string         `db:"description" json:"description"`
	Price        int            `db:"price" json:"price"`
	ComparePrice *int           `db:"compare_price" json:"comparePrice,omitempty"`
	Images       pq.StringArray `db:"images" json:"images"`
	Brand        string         `db:"brand" json:"brand"`
	Sizes        pq.StringArray `db:"sizes" json:"sizes"`
	Colors       pq.StringArray `db:"colors" json:"colors"`
	StockCount   int            `db:"stock_count" json:"stockCount"`
	Rating       float64        `db:"rating" json:"rating"`
	ReviewCount  int            `db:"review_count" json:"reviewCount"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	Featured     bool           `db:"featured" json:"featured"`
	IsNew        bool           `db:"is_new" json:"isNew"`
	CategoryID   int            `db:"category_id" json:"-"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"-"`

	// Derived fields populated by the repository.
	Currency string    `db:"-" json:"currency"`
	InStock  bool      `db:"-" json:"inStock"`
	Category *Category `db:"-" json:"category,omitempty"`
}

// CurrencyKES is the only currency the storefront trades in.
const CurrencyKES = "KES"
