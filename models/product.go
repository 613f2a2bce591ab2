package models

import "time"

// Product represents a sellable menu item
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductNo   string    `gorm:"uniqueIndex;not null" json:"product_no"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Status      int       `gorm:"not null;default:1" json:"status"` // 1 = active, 2 = inactive
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsActive reports whether the product can currently be ordered.
func (p *Product) IsActive() bool {
	return p.Status == 1
}

// ProductBOM is one bill-of-materials row: making one unit of the product
// consumes Quantity units of the raw material. A product with no BOM rows
// is a pure finished good and moves only finished-good stock.
type ProductBOM struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"index;not null" json:"product_id"`
	MaterialID uint      `gorm:"not null" json:"material_id"`
	Quantity   float64   `gorm:"not null" json:"quantity"` // units of material per unit of product
	Unit       string    `json:"unit"`
	IsMain     bool      `gorm:"default:false" json:"is_main"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the ProductBOM model
func (ProductBOM) TableName() string {
	return "product_boms"
}
