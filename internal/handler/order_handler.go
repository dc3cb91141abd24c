package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// OrderHandler handles checkout and order administration endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles the public checkout.
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyOrder):
			utils.Error(c, 400, "EMPTY_ORDER", "Order must contain at least one item")
		case errors.Is(err, utils.ErrOutOfStock):
			utils.Error(c, 409, "OUT_OF_STOCK", err.Error())
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}
	utils.Success(c, 201, "Order created successfully", order)
}

// List returns a page of orders (admin).
func (h *OrderHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	orders, total, err := h.orderService.ListOrders(c.Query("status"), page, limit)
	if err != nil {
		if err == utils.ErrInvalidStatus {
			utils.Error(c, 400, "INVALID_STATUS", "Unknown order status filter")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch orders")
		return
	}

	utils.SuccessWithPagination(c, 200, "Orders retrieved successfully", gin.H{
		"orders": orders,
	}, page, limit, total)
}

// Get returns one order by id (admin).
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if err == utils.ErrOrderNotFound {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch order")
		return
	}
	utils.Success(c, 200, "Order retrieved successfully", order)
}

// Update mutates order status / payment status (admin).
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}

	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case utils.ErrOrderNotFound:
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		case utils.ErrInvalidStatus:
			utils.Error(c, 400, "INVALID_STATUS", "Unknown status value")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order")
		}
		return
	}
	utils.Success(c, 200, "Order updated successfully", order)
}
