package models

import "time"

// RawMaterial is an ingredient consumed when products are made
// (coffee beans, milk, syrup...)
type RawMaterial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MaterialNo string    `gorm:"uniqueIndex;not null" json:"material_no"`
	Name       string    `gorm:"not null" json:"name"`
	Unit       string    `gorm:"not null" json:"unit"`
	Category   string    `json:"category"`
	Status     int       `gorm:"not null;default:1" json:"status"` // 1 = usable, 2 = disabled
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the RawMaterial model
func (RawMaterial) TableName() string {
	return "raw_materials"
}
