package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/config"
	"github.com/solocoffee/pos-api/models"
)

// ListProducts handles GET /api/v1/products, optionally filtered by category
func ListProducts(c *gin.Context) {
	db := config.GetDB()

	query := db.Order("product_no")
	if raw := c.Query("category_id"); raw != "" {
		query = query.Where("category_id = ?", raw)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to list products", err))
		return
	}
	respondData(c, http.StatusOK, products)
}

// GetProductBOM handles GET /api/v1/products/:id/bom
func GetProductBOM(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.Newf(apperrors.CodeProductNotFound, "product %d not found", id))
			return
		}
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to load product", err))
		return
	}

	var rows []models.ProductBOM
	if err := db.Where("product_id = ?", id).Find(&rows).Error; err != nil {
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to load product BOM", err))
		return
	}
	respondData(c, http.StatusOK, rows)
}
