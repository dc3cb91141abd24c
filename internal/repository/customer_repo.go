package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/primehood/supplies-api/internal/models"
)

// CustomerRepository handles data access for customers. Email is the sole
// identity key: repeat checkouts under the same email reuse the record.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindOrCreate returns the customer with the given email, creating one with
// the supplied name and phone when absent. An existing customer's name and
// phone are not updated. The query runner may be a transaction.
func (r *CustomerRepository) FindOrCreate(ctx context.Context, q sqlx.ExtContext, name, email, phone string) (*models.Customer, error) {
	var c models.Customer
	err := sqlx.GetContext(ctx, q, &c,
		`SELECT id, email, name, phone, created_at FROM customers WHERE email = $1 LIMIT 1`, email)
	if err == nil {
		return &c, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	err = sqlx.GetContext(ctx, q, &c, `
        INSERT INTO customers (email, name, phone)
        VALUES ($1, $2, $3)
        RETURNING id, email, name, phone, created_at`, email, name, phone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(1) FROM customers`)
	return n, err
}
