package models

import "time"

// Customer is created lazily on first checkout and reused on repeat orders
// matched by email. Name and phone are never updated on conflict.
type Customer struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
