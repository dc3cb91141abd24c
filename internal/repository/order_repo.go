package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/utils"
)

// OrderRepository handles data access for orders. Checkout runs as a single
// transaction: customer resolution, order-number assignment, order and item
// inserts, and stock decrements either all land or none do.
type OrderRepository struct {
	db        *sqlx.DB
	customers *CustomerRepository
	products  *ProductRepository
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB, customers *CustomerRepository, products *ProductRepository) *OrderRepository {
	return &OrderRepository{db: db, customers: customers, products: products}
}

// CheckoutItem is one purchased line. ProductID is optional: custom items
// have no catalog linkage.
type CheckoutItem struct {
	ProductID *int
	Name      string
	Quantity  int
	Price     int
}

// CheckoutInput carries everything needed to materialize an order.
type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []CheckoutItem
	Subtotal      int
	VAT           int
	Shipping      int
	Total         int
	PaymentMethod string
	Address       string
	Town          string
	County        string
}

// FormatOrderNumber renders the human-readable order identifier:
// PH-<YYYYMMDD>-<seq>, seq zero-padded to three digits.
func FormatOrderNumber(t time.Time, seq int) string {
	return fmt.Sprintf("PH-%s-%03d", t.Format("20060102"), seq)
}

// nextOrderSeq bumps the per-date counter row and returns the new sequence.
// Row-level locking on the counter serializes concurrent checkouts, so two
// orders on the same date can never mint the same number.
func nextOrderSeq(ctx context.Context, q sqlx.ExtContext, day time.Time) (int, error) {
	var seq int
	err := q.QueryRowxContext(ctx, `
        INSERT INTO order_counters (day, seq)
        VALUES ($1, 1)
        ON CONFLICT (day) DO UPDATE SET seq = order_counters.seq + 1
        RETURNING seq`, day.Format("2006-01-02")).Scan(&seq)
	return seq, err
}

// CreateCheckout materializes a full order aggregate atomically and returns
// it with customer and items populated. Insufficient stock on any line item
// rolls back the whole checkout with ErrOutOfStock.
func (r *OrderRepository) CreateCheckout(ctx context.Context, in *CheckoutInput) (*models.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	customer, err := r.customers.FindOrCreate(ctx, tx, in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	now := time.Now()
	seq, err := nextOrderSeq(ctx, tx, now)
	if err != nil {
		return nil, fmt.Errorf("order number: %w", err)
	}

	order := &models.Order{
		OrderNumber:   FormatOrderNumber(now, seq),
		CustomerID:    customer.ID,
		Subtotal:      in.Subtotal,
		VAT:           in.VAT,
		Shipping:      in.Shipping,
		Total:         in.Total,
		Status:        models.OrderReceived,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentUnpaid,
		Address:       in.Address,
		Town:          in.Town,
		County:        in.County,
	}

	err = tx.QueryRowxContext(ctx, `
        INSERT INTO orders (order_number, customer_id, subtotal, vat, shipping, total,
                            status, payment_method, payment_status, address, town, county)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerID, order.Subtotal, order.VAT, order.Shipping,
		order.Total, order.Status, order.PaymentMethod, order.PaymentStatus,
		order.Address, order.Town, order.County,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range in.Items {
		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		err = tx.QueryRowxContext(ctx, `
            INSERT INTO order_items (order_id, product_id, name, quantity, price)
            VALUES ($1,$2,$3,$4,$5)
            RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Quantity, item.Price,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("insert order item %q: %w", it.Name, err)
		}
		order.Items = append(order.Items, item)

		if it.ProductID != nil {
			if err := r.products.DecrementStock(ctx, tx, *it.ProductID, it.Quantity); err != nil {
				if err == utils.ErrOutOfStock {
					return nil, fmt.Errorf("%w: %s", utils.ErrOutOfStock, it.Name)
				}
				return nil, fmt.Errorf("decrement stock for %q: %w", it.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.Customer = customer
	return order, nil
}

// orderRow scans an order joined with its customer.
type orderRow struct {
	models.Order
	CustID    int       `db:"cust_id"`
	CustEmail string    `db:"cust_email"`
	CustName  string    `db:"cust_name"`
	CustPhone string    `db:"cust_phone"`
	CustSince time.Time `db:"cust_since"`
}

func (row *orderRow) toOrder() models.Order {
	o := row.Order
	o.Customer = &models.Customer{
		ID:        row.CustID,
		Email:     row.CustEmail,
		Name:      row.CustName,
		Phone:     row.CustPhone,
		CreatedAt: row.CustSince,
	}
	return o
}

const orderSelect = `
    SELECT o.id, o.order_number, o.customer_id, o.subtotal, o.vat, o.shipping,
           o.total, o.status, o.payment_method, o.payment_status, o.address,
           o.town, o.county, o.created_at, o.updated_at,
           c.id AS cust_id, c.email AS cust_email, c.name AS cust_name,
           c.phone AS cust_phone, c.created_at AS cust_since
    FROM orders o
    JOIN customers c ON c.id = o.customer_id`

// List returns a page of orders, newest first, optionally filtered by status,
// with customers and items populated, plus the total count.
func (r *OrderRepository) List(status models.OrderStatus, page, limit int) ([]models.Order, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := ""
	args := []interface{}{}
	if status != "" {
		where = "WHERE o.status = $1"
		args = append(args, status)
	}

	countQuery := `SELECT COUNT(1) FROM orders o ` + where
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf("%s %s ORDER BY o.created_at DESC, o.id DESC LIMIT $%d OFFSET $%d",
		orderSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var rows []orderRow
	if err := r.db.Select(&rows, listQuery, args...); err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, 0, len(rows))
	ids := make([]int, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].toOrder())
		ids = append(ids, rows[i].Order.ID)
	}

	if err := r.attachItems(orders, ids); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByID returns a single order with customer and items.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	var row orderRow
	if err := r.db.Get(&row, orderSelect+` WHERE o.id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	order := row.toOrder()

	orders := []models.Order{order}
	if err := r.attachItems(orders, []int{order.ID}); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems loads the items for the given order ids and distributes them.
func (r *OrderRepository) attachItems(orders []models.Order, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	var items []models.OrderItem
	err := r.db.Select(&items, `
        SELECT id, order_id, product_id, name, quantity, price
        FROM order_items
        WHERE order_id = ANY($1)
        ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}

	byOrder := make(map[int][]models.OrderItem, len(ids))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}

// UpdateStatus sets the order status and/or payment status. Nil pointers
// leave the respective field untouched.
func (r *OrderRepository) UpdateStatus(id int, status *models.OrderStatus, paymentStatus *models.PaymentStatus) (*models.Order, error) {
	res, err := r.db.Exec(`
        UPDATE orders SET
            status = COALESCE($2, status),
            payment_status = COALESCE($3, payment_status),
            updated_at = NOW()
        WHERE id = $1`, id, status, paymentStatus)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, utils.ErrOrderNotFound
	}
	return r.GetByID(id)
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(1) FROM orders`)
	return n, err
}
