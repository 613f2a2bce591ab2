package services

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

// The inventory ledger. Every stock movement goes through these functions;
// each deduction is a single conditional UPDATE guarded by the current
// quantity, so rows can never go negative regardless of caller behavior or
// concurrency. A deduction against an existing row with too little stock
// fails with INSUFFICIENT_INVENTORY; a deduction against a missing row fails
// with RESOURCE_NOT_FOUND, same as restock.

// DeductStock atomically decrements finished-good stock for a product at a
// store, failing if the remaining quantity is smaller than qty.
func DeductStock(tx *gorm.DB, storeID, productID uint, qty float64) error {
	if qty <= 0 {
		return apperrors.New(apperrors.CodeParameter, "deduction quantity must be positive")
	}

	res := tx.Model(&models.Inventory{}).
		Where("store_id = ? AND product_id = ? AND quantity >= ?", storeID, productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to deduct stock", res.Error)
	}
	if res.RowsAffected == 0 {
		// No row matched: either the record is absent or the guard rejected
		// a shortage. A follow-up existence check tells the two apart.
		var count int64
		if err := tx.Model(&models.Inventory{}).
			Where("store_id = ? AND product_id = ?", storeID, productID).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to deduct stock", err)
		}
		if count == 0 {
			return apperrors.Newf(apperrors.CodeResourceNotFound,
				"no inventory record for product %d at store %d", productID, storeID)
		}
		log.Warn().Uint("store_id", storeID).Uint("product_id", productID).
			Float64("quantity", qty).Msg("insufficient finished-good stock")
		return apperrors.Newf(apperrors.CodeInsufficientInventory,
			"insufficient stock for product %d at store %d", productID, storeID)
	}
	return nil
}

// RestockStock is the inverse of DeductStock. The row must already exist:
// restocking only ever undoes a prior deduction or tops up seeded stock.
func RestockStock(tx *gorm.DB, storeID, productID uint, qty float64) error {
	if qty <= 0 {
		return apperrors.New(apperrors.CodeParameter, "restock quantity must be positive")
	}

	res := tx.Model(&models.Inventory{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to restock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Newf(apperrors.CodeResourceNotFound,
			"no inventory record for product %d at store %d", productID, storeID)
	}
	return nil
}

// DeductMaterial atomically decrements raw-material stock, with the same
// never-negative guarantee as DeductStock.
func DeductMaterial(tx *gorm.DB, storeID, materialID uint, qty float64) error {
	if qty <= 0 {
		return apperrors.New(apperrors.CodeParameter, "deduction quantity must be positive")
	}

	res := tx.Model(&models.RawMaterialInventory{}).
		Where("store_id = ? AND material_id = ? AND quantity >= ?", storeID, materialID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to deduct material", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.RawMaterialInventory{}).
			Where("store_id = ? AND material_id = ?", storeID, materialID).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to deduct material", err)
		}
		if count == 0 {
			return apperrors.Newf(apperrors.CodeResourceNotFound,
				"no inventory record for material %d at store %d", materialID, storeID)
		}
		log.Warn().Uint("store_id", storeID).Uint("material_id", materialID).
			Float64("quantity", qty).Msg("insufficient raw-material stock")
		return apperrors.Newf(apperrors.CodeInsufficientInventory,
			"insufficient stock for material %d at store %d", materialID, storeID)
	}
	return nil
}

// RestockMaterial is the inverse of DeductMaterial.
func RestockMaterial(tx *gorm.DB, storeID, materialID uint, qty float64) error {
	if qty <= 0 {
		return apperrors.New(apperrors.CodeParameter, "restock quantity must be positive")
	}

	res := tx.Model(&models.RawMaterialInventory{}).
		Where("store_id = ? AND material_id = ?", storeID, materialID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to restock material", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Newf(apperrors.CodeResourceNotFound,
			"no inventory record for material %d at store %d", materialID, storeID)
	}
	return nil
}

// CheckStock reports whether the store holds at least qty of the product.
// Advisory only: creation still relies on the guarded deduction.
func CheckStock(db *gorm.DB, storeID, productID uint, qty float64) (bool, error) {
	var inv models.Inventory
	err := db.Where("store_id = ? AND product_id = ?", storeID, productID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(apperrors.CodeDatabase, "failed to check stock", err)
	}
	return inv.Quantity >= qty, nil
}

// LowStock returns the finished-good rows at or below their warning
// threshold for a store.
func LowStock(db *gorm.DB, storeID uint) ([]models.Inventory, error) {
	var rows []models.Inventory
	err := db.Where("store_id = ? AND quantity <= warning_threshold", storeID).Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to query low stock", err)
	}
	return rows, nil
}

// LowStockMaterials returns the raw-material rows at or below their warning
// threshold for a store.
func LowStockMaterials(db *gorm.DB, storeID uint) ([]models.RawMaterialInventory, error) {
	var rows []models.RawMaterialInventory
	err := db.Where("store_id = ? AND quantity <= warning_threshold", storeID).Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to query low stock materials", err)
	}
	return rows, nil
}
