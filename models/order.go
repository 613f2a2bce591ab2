package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPendingPayment is the initial state of every order.
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	// StatusInProduction means payment succeeded and the order is being made.
	StatusInProduction OrderStatus = "IN_PRODUCTION"
	// StatusCompleted means the order was handed to the customer.
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled is terminal; stock was returned.
	StatusCancelled OrderStatus = "CANCELLED"
	// StatusRefunded is terminal; stock was returned and points reversed.
	StatusRefunded OrderStatus = "REFUNDED"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Order represents a customer order. It owns its items exclusively and is
// the unit of transactional mutation for every lifecycle operation.
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`
	StoreID       uint           `gorm:"index;not null" json:"store_id"`
	CustomerID    *uint          `gorm:"index" json:"customer_id"` // nil = walk-in
	Status        OrderStatus    `gorm:"not null;default:'PENDING_PAYMENT'" json:"status"`
	TotalAmount   float64        `gorm:"not null" json:"total_amount"`
	ActualAmount  float64        `gorm:"not null" json:"actual_amount"`
	PaymentMethod string         `json:"payment_method"`
	Remarks       string         `json:"remarks"`
	Items         []OrderItem    `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Price and name are snapshotted at
// order time so later catalog changes never alter past orders.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"index;not null" json:"order_id"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Subtotal    float64   `gorm:"not null" json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
