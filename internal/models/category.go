package models

import "time"

// Category groups products in the storefront navigation.
type Category struct {
	ID        int       `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Name      string    `db:"name" json:"name"`
	Icon      string    `db:"icon" json:"icon"`
	CreatedAt time.Time `db:"created_at" json:"-"`

	// ProductCount is populated by list queries only.
	ProductCount int `db:"product_count" json:"productCount"`
}
