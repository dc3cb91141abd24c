package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderReceived   OrderStatus = "RECEIVED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// ValidOrderStatus reports whether s is a known order lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderReceived, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Order is the checkout aggregate. Monetary fields are KES amounts.
type Order struct {
	ID            int           `db:"id" json:"id"`
	OrderNumber   string        `db:"order_number" json:"orderNumber"`
	CustomerID    int           `db:"customer_id" json:"-"`
	Subtotal      int           `db:"subtotal" json:"subtotal"`
	VAT           int           `db:"vat" json:"vat"`
	Shipping      int           `db:"shipping" json:"shipping"`
	Total         int           `db:"total" json:"total"`
	Status        OrderStatus   `db:"status" json:"status"`
	PaymentMethod string        `db:"payment_method" json:"paymentMethod"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`
	Address       string        `db:"address" json:"address"`
	Town          string        `db:"town" json:"town"`
	County        string        `db:"county" json:"county"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"-"`

	Customer *Customer   `db:"-" json:"customer,omitempty"`
	Items    []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem snapshots (name, price) at checkout time so historical orders
// stay accurate after later product edits or deletion. ProductID survives as
// NULL when the product is removed.
type OrderItem struct {
	ID        int    `db:"id" json:"id"`
	OrderID   int    `db:"order_id" json:"-"`
	ProductID *int   `db:"product_id" json:"productId,omitempty"`
	Name      string `db:"name" json:"name"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Price     int    `db:"price" json:"price"`
}
