package models

import "time"

// Category groups products on the menu (espresso drinks, teas, pastries...)
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	Status    int       `gorm:"not null;default:1" json:"status"` // 1 = visible, 2 = hidden
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
