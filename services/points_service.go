package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

// The loyalty ledger. The customer's balance is kept equal to the sum of
// their points records at all times: every balance change appends exactly
// one record with the same delta, and history is never edited.

// AccruePoints credits points to a customer for an order, appending the
// matching positive record.
func AccruePoints(tx *gorm.DB, customerID uint, orderID *uint, points int, reason string) error {
	if points <= 0 {
		return apperrors.New(apperrors.CodeParameter, "accrued points must be positive")
	}

	res := tx.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("points", gorm.Expr("points + ?", points))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to update customer points", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Newf(apperrors.CodeCustomerNotFound, "customer %d not found", customerID)
	}

	record := models.PointsRecord{
		CustomerID: customerID,
		OrderID:    orderID,
		Points:     points,
		Reason:     reason,
	}
	if err := tx.Create(&record).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to create points record", err)
	}
	return nil
}

// ReversePoints undoes the accrual tied to an order by appending an
// equal-and-opposite record per accrual. The debit is clamped so the
// balance never goes below zero; the appended record carries the clamped
// delta so the ledger still reconciles. A no-op when the order accrued
// nothing or was already reversed.
func ReversePoints(tx *gorm.DB, orderID uint) error {
	var reversed int64
	err := tx.Model(&models.PointsRecord{}).
		Where("order_id = ? AND points < 0", orderID).
		Count(&reversed).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to query points records", err)
	}
	if reversed > 0 {
		return nil
	}

	var accruals []models.PointsRecord
	err = tx.Where("order_id = ? AND points > 0", orderID).Find(&accruals).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to query points records", err)
	}

	for _, accrual := range accruals {
		var customer models.Customer
		if err := tx.First(&customer, accrual.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Newf(apperrors.CodeCustomerNotFound, "customer %d not found", accrual.CustomerID)
			}
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to load customer", err)
		}

		debit := accrual.Points
		if debit > customer.Points {
			debit = customer.Points
		}

		if debit > 0 {
			err = tx.Model(&models.Customer{}).
				Where("id = ?", customer.ID).
				Update("points", gorm.Expr("points - ?", debit)).Error
			if err != nil {
				return apperrors.Wrap(apperrors.CodeDatabase, "failed to update customer points", err)
			}
		}

		record := models.PointsRecord{
			CustomerID: accrual.CustomerID,
			OrderID:    &orderID,
			Points:     -debit,
			Reason:     models.PointsReasonRefundReversal,
		}
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to create points record", err)
		}
	}
	return nil
}

// PointsHistory returns a customer's points records, newest first.
func PointsHistory(db *gorm.DB, customerID uint) ([]models.PointsRecord, error) {
	var records []models.PointsRecord
	err := db.Where("customer_id = ?", customerID).Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to query points records", err)
	}
	return records, nil
}
