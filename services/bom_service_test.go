package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solocoffee/pos-api/models"
)

func TestExplodeBOM(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	required, err := ExplodeBOM(db, f.latte.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{f.beans.ID: 36}, required)
}

func TestExplodeBOMSumsRowsPerMaterial(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	milk := models.RawMaterial{MaterialNo: "RM002", Name: "Whole Milk", Unit: "ml", Status: 1}
	require.NoError(t, db.Create(&milk).Error)

	// Two rows consuming the same material accumulate
	extra := []models.ProductBOM{
		{ProductID: f.latte.ID, MaterialID: milk.ID, Quantity: 200, Unit: "ml"},
		{ProductID: f.latte.ID, MaterialID: milk.ID, Quantity: 30, Unit: "ml"},
	}
	require.NoError(t, db.Create(&extra).Error)

	required, err := ExplodeBOM(db, f.latte.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{
		f.beans.ID: 54,
		milk.ID:    690,
	}, required)
}

func TestExplodeBOMPureFinishedGood(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	required, err := ExplodeBOM(db, f.croissant.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, required)
}
