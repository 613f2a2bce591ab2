package models

import "time"

// Store represents a physical coffee shop location
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Status    int       `gorm:"not null;default:1" json:"status"` // 1 = open, 2 = closed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
