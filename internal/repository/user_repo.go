package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/primehood/supplies-api/internal/models"
)

// UserRepository handles data access for admin accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
        SELECT id, email, password_hash, name, role, created_at, updated_at
        FROM users
        WHERE email = $1
    `, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
        SELECT id, email, password_hash, name, role, created_at, updated_at
        FROM users
        WHERE id = $1
    `, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts a user or leaves an existing one untouched. Used by the
// seeder.
func (r *UserRepository) Upsert(user *models.User) error {
	const q = `
        INSERT INTO users (email, password_hash, name, role)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(q, user.Email, user.PasswordHash, user.Name, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}
