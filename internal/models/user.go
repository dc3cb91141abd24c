package models

import "time"

// RoleAdmin is the only role permitted to use the admin surface.
const RoleAdmin = "ADMIN"

// User represents an admin account for the dashboard. Seeded, not
// self-registered.
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
