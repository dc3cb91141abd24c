package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/repository"
	"github.com/primehood/supplies-api/internal/utils"
)

// fakeOrderStore records the last checkout input and replays canned results.
type fakeOrderStore struct {
	lastCheckout *repository.CheckoutInput
	checkoutErr  error
	order        *models.Order

	lastStatus    *models.OrderStatus
	lastPayStatus *models.PaymentStatus
}

func (f *fakeOrderStore) CreateCheckout(_ context.Context, in *repository.CheckoutInput) (*models.Order, error) {
	f.lastCheckout = in
	if f.checkoutErr != nil {
		return nil, f.checkoutErr
	}
	if f.order != nil {
		return f.order, nil
	}
	order := &models.Order{
		OrderNumber:   "PH-20260830-001",
		Status:        models.OrderReceived,
		PaymentStatus: models.PaymentUnpaid,
		Total:         in.Total,
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return order, nil
}

func (f *fakeOrderStore) List(models.OrderStatus, int, int) ([]models.Order, int, error) {
	return nil, 0, nil
}

func (f *fakeOrderStore) GetByID(int) (*models.Order, error) {
	return f.order, nil
}

func (f *fakeOrderStore) UpdateStatus(_ int, status *models.OrderStatus, paymentStatus *models.PaymentStatus) (*models.Order, error) {
	f.lastStatus = status
	f.lastPayStatus = paymentStatus
	return &models.Order{}, nil
}

func validCheckoutRequest() *CheckoutRequest {
	pid := 3
	return &CheckoutRequest{
		Customer: CheckoutCustomer{Name: "John Kamau", Email: "john@email.com", Phone: "0712 345 678"},
		Items: []CheckoutItemRequest{
			{ProductID: &pid, Name: "Adidas Al Rihla Pro Ball", Quantity: 1, Price: 15000},
			{Name: "Engraving Service", Quantity: 2, Price: 500},
		},
		Subtotal:      16000,
		VAT:           2560,
		Shipping:      200,
		Total:         18760,
		PaymentMethod: "mpesa",
		Address:       "123 Moi Ave",
		Town:          "Westlands",
		County:        "Nairobi",
	}
}

func TestCheckoutMapsAllLineItems(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)

	order, err := svc.Checkout(context.Background(), validCheckoutRequest())
	require.NoError(t, err)

	require.NotNil(t, store.lastCheckout)
	require.Len(t, store.lastCheckout.Items, 2)
	assert.Len(t, order.Items, 2)

	// Snapshots mirror the submitted values exactly.
	assert.Equal(t, "Adidas Al Rihla Pro Ball", store.lastCheckout.Items[0].Name)
	assert.Equal(t, 15000, store.lastCheckout.Items[0].Price)
	require.NotNil(t, store.lastCheckout.Items[0].ProductID)
	assert.Equal(t, 3, *store.lastCheckout.Items[0].ProductID)

	// Custom line without a catalog product keeps a nil linkage.
	assert.Nil(t, store.lastCheckout.Items[1].ProductID)
}

func TestCheckoutUppercasesPaymentMethod(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)

	_, err := svc.Checkout(context.Background(), validCheckoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "MPESA", store.lastCheckout.PaymentMethod)
}

func TestCheckoutRejectsEmptyItems(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)

	req := validCheckoutRequest()
	req.Items = nil

	_, err := svc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmptyOrder)
	assert.Nil(t, store.lastCheckout, "store must not be touched on rejection")
}

func TestCheckoutPropagatesOutOfStock(t *testing.T) {
	store := &fakeOrderStore{checkoutErr: utils.ErrOutOfStock}
	svc := NewOrderService(store, nil)

	_, err := svc.Checkout(context.Background(), validCheckoutRequest())
	assert.ErrorIs(t, err, utils.ErrOutOfStock)
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{}, nil)

	_, _, err := svc.ListOrders("teleported", 1, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
}

func TestListOrdersUppercasesStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{}, nil)

	_, _, err := svc.ListOrders("shipped", 1, 20)
	assert.NoError(t, err)
}

func TestUpdateOrderValidatesStatuses(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)

	_, err := svc.UpdateOrder(context.Background(), 1, &UpdateOrderRequest{Status: "floating"})
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = svc.UpdateOrder(context.Background(), 1, &UpdateOrderRequest{PaymentStatus: "maybe"})
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = svc.UpdateOrder(context.Background(), 1, &UpdateOrderRequest{Status: "shipped", PaymentStatus: "paid"})
	require.NoError(t, err)
	require.NotNil(t, store.lastStatus)
	require.NotNil(t, store.lastPayStatus)
	assert.Equal(t, models.OrderShipped, *store.lastStatus)
	assert.Equal(t, models.PaymentPaid, *store.lastPayStatus)
}

func TestUpdateOrderPartialUpdate(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)

	_, err := svc.UpdateOrder(context.Background(), 1, &UpdateOrderRequest{Status: "delivered"})
	require.NoError(t, err)
	require.NotNil(t, store.lastStatus)
	assert.Equal(t, models.OrderDelivered, *store.lastStatus)
	assert.Nil(t, store.lastPayStatus, "untouched field stays nil")
}
