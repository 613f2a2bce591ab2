package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/config"
	"github.com/solocoffee/pos-api/models"
	"github.com/solocoffee/pos-api/services"
)

// RestockRequest represents the request body for a manual restock. Exactly
// one of product_id and material_id must be set.
type RestockRequest struct {
	StoreID    uint    `json:"store_id" binding:"required"`
	ProductID  *uint   `json:"product_id"`
	MaterialID *uint   `json:"material_id"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// ListInventory handles GET /api/v1/inventory?store_id=
func ListInventory(c *gin.Context) {
	storeID, ok := parseStoreIDQuery(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var rows []models.Inventory
	if err := db.Where("store_id = ?", storeID).Order("product_id").Find(&rows).Error; err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to list inventory", err))
		return
	}
	respondData(c, http.StatusOK, rows)
}

// LowStock handles GET /api/v1/inventory/low-stock?store_id=
func LowStock(c *gin.Context) {
	storeID, ok := parseStoreIDQuery(c)
	if !ok {
		return
	}

	rows, err := services.LowStock(config.GetDB(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rows)
}

// LowStockMaterials handles GET /api/v1/inventory/materials/low-stock?store_id=
func LowStockMaterials(c *gin.Context) {
	storeID, ok := parseStoreIDQuery(c)
	if !ok {
		return
	}

	rows, err := services.LowStockMaterials(config.GetDB(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rows)
}

// Restock handles PUT /api/v1/inventory/restock, a manual stock top-up
// through the ledger
func Restock(c *gin.Context) {
	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if (req.ProductID == nil) == (req.MaterialID == nil) {
		respondValidationError(c, "exactly one of product_id and material_id must be set")
		return
	}

	db := config.GetDB()
	var err error
	if req.ProductID != nil {
		err = services.RestockStock(db, req.StoreID, *req.ProductID, req.Quantity)
	} else {
		err = services.RestockMaterial(db, req.StoreID, *req.MaterialID, req.Quantity)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"restocked": req.Quantity})
}

func parseStoreIDQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("store_id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		respondValidationError(c, "store_id must be a positive integer")
		return 0, false
	}
	return uint(parsed), true
}
