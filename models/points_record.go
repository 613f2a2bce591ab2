package models

import "time"

// Points record reasons.
const (
	PointsReasonOrderAccrual   = "ORDER_ACCRUAL"
	PointsReasonRefundReversal = "REFUND_REVERSAL"
)

// PointsRecord is one signed delta in a customer's point balance. Records
// are append-only: a reversal appends an equal-and-opposite record instead
// of editing history.
type PointsRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	OrderID    *uint     `gorm:"index" json:"order_id"`
	Points     int       `gorm:"not null" json:"points"` // positive = earned, negative = reversed/spent
	Reason     string    `gorm:"not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the PointsRecord model
func (PointsRecord) TableName() string {
	return "points_records"
}
