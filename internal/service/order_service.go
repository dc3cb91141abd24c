package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/primehood/supplies-api/internal/cache"
	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/repository"
	"github.com/primehood/supplies-api/internal/utils"
)

// OrderStore is the persistence surface checkout and order administration
// run against.
type OrderStore interface {
	CreateCheckout(ctx context.Context, in *repository.CheckoutInput) (*models.Order, error)
	List(status models.OrderStatus, page, limit int) ([]models.Order, int, error)
	GetByID(id int) (*models.Order, error)
	UpdateStatus(id int, status *models.OrderStatus, paymentStatus *models.PaymentStatus) (*models.Order, error)
}

// OrderService contains business logic for checkout and order management.
type OrderService struct {
	orders OrderStore
	stats  *cache.StatsCache
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders OrderStore, stats *cache.StatsCache) *OrderService {
	return &OrderService{orders: orders, stats: stats}
}

// CheckoutCustomer identifies the buyer.
type CheckoutCustomer struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// CheckoutItemRequest is one purchased line.
type CheckoutItemRequest struct {
	ProductID *int   `json:"productId"`
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     int    `json:"price" binding:"required,gt=0"`
}

// CheckoutRequest is the public checkout payload. Total consistency with
// subtotal/vat/shipping is the client's responsibility and is not
// re-validated here.
type CheckoutRequest struct {
	Customer      CheckoutCustomer      `json:"customer" binding:"required"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,dive"`
	Subtotal      int                   `json:"subtotal" binding:"gte=0"`
	VAT           int                   `json:"vat" binding:"gte=0"`
	Shipping      int                   `json:"shipping" binding:"gte=0"`
	Total         int                   `json:"total" binding:"gte=0"`
	PaymentMethod string                `json:"paymentMethod" binding:"required"`
	Address       string                `json:"address" binding:"required"`
	Town          string                `json:"town"`
	County        string                `json:"county"`
}

// Checkout materializes an order from a validated payload. Rejects before
// any mutation; the store makes the write path all-or-nothing.
func (s *OrderService) Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, utils.ErrEmptyOrder
	}

	in := &repository.CheckoutInput{
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,
		Subtotal:      req.Subtotal,
		VAT:           req.VAT,
		Shipping:      req.Shipping,
		Total:         req.Total,
		PaymentMethod: strings.ToUpper(req.PaymentMethod),
		Address:       req.Address,
		Town:          req.Town,
		County:        req.County,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, repository.CheckoutItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order, err := s.orders.CreateCheckout(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Int("items", len(order.Items)).
		Int("total", order.Total).
		Msg("order created")

	s.invalidateStats(ctx)
	return order, nil
}

// ListOrders returns a page of orders for the admin panel. An unknown status
// filter is rejected.
func (s *OrderService) ListOrders(status string, page, limit int) ([]models.Order, int, error) {
	var st models.OrderStatus
	if status != "" {
		st = models.OrderStatus(strings.ToUpper(status))
		if !models.ValidOrderStatus(st) {
			return nil, 0, utils.ErrInvalidStatus
		}
	}
	return s.orders.List(st, page, limit)
}

// GetOrder returns one order by id.
func (s *OrderService) GetOrder(id int) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// UpdateOrderRequest carries the admin-editable order fields. Values are
// upper-cased before validation.
type UpdateOrderRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// UpdateOrder mutates status and/or payment status of an order.
func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *UpdateOrderRequest) (*models.Order, error) {
	var status *models.OrderStatus
	var paymentStatus *models.PaymentStatus

	if req.Status != "" {
		st := models.OrderStatus(strings.ToUpper(req.Status))
		if !models.ValidOrderStatus(st) {
			return nil, utils.ErrInvalidStatus
		}
		status = &st
	}
	if req.PaymentStatus != "" {
		ps := models.PaymentStatus(strings.ToUpper(req.PaymentStatus))
		if !models.ValidPaymentStatus(ps) {
			return nil, utils.ErrInvalidStatus
		}
		paymentStatus = &ps
	}

	order, err := s.orders.UpdateStatus(id, status, paymentStatus)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return order, nil
}

func (s *OrderService) invalidateStats(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}
