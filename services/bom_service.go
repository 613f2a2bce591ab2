package services

import (
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

// ExplodeBOM expands a (product, quantity) pair into the total raw-material
// requirements for making that many units, summed across the product's BOM
// rows. An empty map means the product is a pure finished good and consumes
// no raw materials. Read-only; no side effects.
func ExplodeBOM(db *gorm.DB, productID uint, quantity int) (map[uint]float64, error) {
	var rows []models.ProductBOM
	if err := db.Where("product_id = ?", productID).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to load product BOM", err)
	}

	required := make(map[uint]float64, len(rows))
	for _, row := range rows {
		required[row.MaterialID] += row.Quantity * float64(quantity)
	}
	return required, nil
}
