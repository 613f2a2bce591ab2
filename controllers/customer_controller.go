package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/config"
	"github.com/solocoffee/pos-api/models"
	"github.com/solocoffee/pos-api/services"
)

// GetCustomer handles GET /api/v1/customers/:id
func GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.Newf(apperrors.CodeCustomerNotFound, "customer %d not found", id))
			return
		}
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to load customer", err))
		return
	}
	respondData(c, http.StatusOK, customer)
}

// GetCustomerPoints handles GET /api/v1/customers/:id/points. Returns the
// customer's balance plus the append-only record history.
func GetCustomerPoints(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.Newf(apperrors.CodeCustomerNotFound, "customer %d not found", id))
			return
		}
		respondError(c, apperrors.Wrap(apperrors.CodeDatabase, "failed to load customer", err))
		return
	}

	records, err := services.PointsHistory(db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"points":  customer.Points,
		"records": records,
	})
}
