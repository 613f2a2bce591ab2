package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/config"
	"github.com/solocoffee/pos-api/models"
	"github.com/solocoffee/pos-api/services"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	StoreID    uint                     `json:"store_id" binding:"required"`
	CustomerID *uint                    `json:"customer_id"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest is one requested order line
type CreateOrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// PayOrderRequest represents the request body for paying an order
type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// RefundOrderRequest represents the request body for refunding an order
type RefundOrderRequest struct {
	Reason string `json:"reason"`
}

func orderService() *services.OrderService {
	return services.NewOrderService(config.GetDB(), services.GetPaymentService())
}

// CreateOrder handles POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := orderService().CreateOrder(req.StoreID, req.CustomerID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/orders/:id
func GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := orderService().GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders with optional store_id, status and
// since filters
func ListOrders(c *gin.Context) {
	var storeID *uint
	if raw := c.Query("store_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondValidationError(c, "store_id must be a positive integer")
			return
		}
		id := uint(parsed)
		storeID = &id
	}

	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OrderStatus(raw)
		status = &s
	}

	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidationError(c, "since must be an RFC3339 timestamp")
			return
		}
		since = &parsed
	}

	orders, err := orderService().ListOrders(storeID, status, since)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

// PayOrder handles POST /api/v1/orders/:id/pay
func PayOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	order, err := orderService().PayOrder(id, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel
func CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := orderService().CancelOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete
func CompleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := orderService().CompleteOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// RefundOrder handles POST /api/v1/orders/:id/refund
func RefundOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondValidationError(c, err.Error())
		return
	}

	order, err := orderService().RefundOrder(id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// parseIDParam reads the :id path parameter, responding with a validation
// error when it is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		respondError(c, apperrors.New(apperrors.CodeParameter, "id must be a positive integer"))
		return 0, false
	}
	return uint(parsed), true
}
