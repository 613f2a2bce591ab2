package models

import "time"

// Inventory tracks finished-good stock for one product at one store.
// Rows are mutated only through the inventory ledger, never directly;
// Quantity never goes negative.
type Inventory struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StoreID          uint      `gorm:"uniqueIndex:idx_store_product;not null" json:"store_id"`
	ProductID        uint      `gorm:"uniqueIndex:idx_store_product;not null" json:"product_id"`
	Quantity         float64   `gorm:"not null;default:0" json:"quantity"`
	Unit             string    `json:"unit"`
	WarningThreshold float64   `gorm:"not null;default:0" json:"warning_threshold"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventories"
}

// IsLowStock reports whether the row is at or below its warning threshold.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.WarningThreshold
}

// RawMaterialInventory tracks raw-material stock for one material at one
// store, under the same never-negative ledger rule as Inventory.
type RawMaterialInventory struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StoreID          uint      `gorm:"uniqueIndex:idx_store_material;not null" json:"store_id"`
	MaterialID       uint      `gorm:"uniqueIndex:idx_store_material;not null" json:"material_id"`
	Quantity         float64   `gorm:"not null;default:0" json:"quantity"`
	WarningThreshold float64   `gorm:"not null;default:0" json:"warning_threshold"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for the RawMaterialInventory model
func (RawMaterialInventory) TableName() string {
	return "raw_material_inventories"
}

// IsLowStock reports whether the row is at or below its warning threshold.
func (r *RawMaterialInventory) IsLowStock() bool {
	return r.Quantity <= r.WarningThreshold
}
