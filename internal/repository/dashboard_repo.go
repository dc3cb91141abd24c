package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// DashboardRepository runs the aggregate queries behind the admin dashboard.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// StatusCount is an order count for one lifecycle state.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// TopProduct aggregates sales per item name across all order items.
type TopProduct struct {
	Name    string `db:"name" json:"name"`
	Sales   int    `db:"sales" json:"sales"`
	Revenue int    `db:"revenue" json:"revenue"`
}

// OrderTotal is one order's total with its creation time, used for the
// trailing revenue series.
type OrderTotal struct {
	Total     int       `db:"total"`
	CreatedAt time.Time `db:"created_at"`
}

// TotalRevenue sums order totals over paid orders.
func (r *DashboardRepository) TotalRevenue() (int, error) {
	var revenue int
	err := r.db.Get(&revenue, `
        SELECT COALESCE(SUM(total), 0) FROM orders WHERE payment_status = 'PAID'`)
	return revenue, err
}

// OrdersByStatus returns order counts grouped by lifecycle state.
func (r *DashboardRepository) OrdersByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Select(&counts, `
        SELECT status, COUNT(1) AS count FROM orders GROUP BY status ORDER BY status`)
	return counts, err
}

// TopProducts returns the best sellers by quantity sold. Items are grouped by
// the snapshotted name, so deleted products still count.
func (r *DashboardRepository) TopProducts(limit int) ([]TopProduct, error) {
	var top []TopProduct
	err := r.db.Select(&top, `
        SELECT name,
               COALESCE(SUM(quantity), 0) AS sales,
               COALESCE(SUM(price * quantity), 0) AS revenue
        FROM order_items
        GROUP BY name
        ORDER BY sales DESC, name
        LIMIT $1`, limit)
	return top, err
}

// OrderTotalsSince returns totals for orders created at or after cutoff.
func (r *DashboardRepository) OrderTotalsSince(cutoff time.Time) ([]OrderTotal, error) {
	var totals []OrderTotal
	err := r.db.Select(&totals, `
        SELECT total, created_at FROM orders WHERE created_at >= $1 ORDER BY created_at`, cutoff)
	return totals, err
}
