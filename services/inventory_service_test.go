package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

func TestDeductStock(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, DeductStock(db, f.store.ID, f.latte.ID, 30))
	assert.Equal(t, 70.0, stockQuantity(t, db, f.store.ID, f.latte.ID))

	// Exact fit drains the row to zero
	require.NoError(t, DeductStock(db, f.store.ID, f.latte.ID, 70))
	assert.Equal(t, 0.0, stockQuantity(t, db, f.store.ID, f.latte.ID))

	// Any further deduction fails and the row stays at zero
	err := DeductStock(db, f.store.ID, f.latte.ID, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientInventory, apperrors.CodeOf(err))
	assert.Equal(t, 0.0, stockQuantity(t, db, f.store.ID, f.latte.ID))
}

func TestDeductStockShortageLeavesQuantityUnchanged(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	err := DeductStock(db, f.store.ID, f.latte.ID, 101)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientInventory, apperrors.CodeOf(err))
	assert.Equal(t, 100.0, stockQuantity(t, db, f.store.ID, f.latte.ID))
}

func TestDeductStockMissingRow(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	// A missing record is not a shortage
	err := DeductStock(db, f.store.ID, 9999, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeResourceNotFound, apperrors.CodeOf(err))
}

func TestDeductMaterialMissingRow(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	err := DeductMaterial(db, f.store.ID, 9999, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeResourceNotFound, apperrors.CodeOf(err))
}

func TestDeductStockRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	for _, qty := range []float64{0, -5} {
		err := DeductStock(db, f.store.ID, f.latte.ID, qty)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeParameter, apperrors.CodeOf(err))
	}
	assert.Equal(t, 100.0, stockQuantity(t, db, f.store.ID, f.latte.ID))
}

func TestRestockStockIsInverseOfDeduct(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, DeductStock(db, f.store.ID, f.latte.ID, 25))
	require.NoError(t, RestockStock(db, f.store.ID, f.latte.ID, 25))
	assert.Equal(t, 100.0, stockQuantity(t, db, f.store.ID, f.latte.ID))
}

func TestRestockStockMissingRow(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	err := RestockStock(db, f.store.ID, 9999, 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeResourceNotFound, apperrors.CodeOf(err))
}

func TestDeductAndRestockMaterial(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, DeductMaterial(db, f.store.ID, f.beans.ID, 36.5))
	assert.Equal(t, 1963.5, materialQuantity(t, db, f.store.ID, f.beans.ID))

	require.NoError(t, RestockMaterial(db, f.store.ID, f.beans.ID, 36.5))
	assert.Equal(t, 2000.0, materialQuantity(t, db, f.store.ID, f.beans.ID))

	err := DeductMaterial(db, f.store.ID, f.beans.ID, 2000.1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientInventory, apperrors.CodeOf(err))
	assert.Equal(t, 2000.0, materialQuantity(t, db, f.store.ID, f.beans.ID))
}

func TestCheckStock(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	ok, err := CheckStock(db, f.store.ID, f.latte.ID, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckStock(db, f.store.ID, f.latte.ID, 101)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckStock(db, f.store.ID, 9999, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLowStock(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	rows, err := LowStock(db, f.store.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Drain the latte down to its warning threshold
	require.NoError(t, DeductStock(db, f.store.ID, f.latte.ID, 90))

	rows, err = LowStock(db, f.store.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, f.latte.ID, rows[0].ProductID)
	assert.True(t, rows[0].IsLowStock())
}

func TestLowStockMaterials(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, DeductMaterial(db, f.store.ID, f.beans.ID, 1800))

	rows, err := LowStockMaterials(db, f.store.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, f.beans.ID, rows[0].MaterialID)
}

func TestLowStockScopedToStore(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	other := models.Store{Name: "Other Store", Status: 1}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&models.Inventory{
		StoreID: other.ID, ProductID: f.latte.ID, Quantity: 0, WarningThreshold: 10,
	}).Error)

	rows, err := LowStock(db, f.store.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
