package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// A single connection keeps the in-memory database alive and serializes
	// concurrent transactions the way a row lock would.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Store{},
		&models.Category{},
		&models.Product{},
		&models.ProductBOM{},
		&models.RawMaterial{},
		&models.Inventory{},
		&models.RawMaterialInventory{},
		&models.MemberLevel{},
		&models.Customer{},
		&models.PointsRecord{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// fixture mirrors the worked example the order flow is specified with:
// a latte priced 28.00 consuming 18g of beans per cup, 100 cups of
// finished-good stock and 2000g of beans, plus a pure finished good
// (croissant, no BOM) and a loyalty customer.
type fixture struct {
	store     models.Store
	latte     models.Product
	croissant models.Product
	beans     models.RawMaterial
	customer  models.Customer
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		store:    models.Store{Name: "Test Store", Status: 1},
		beans:    models.RawMaterial{MaterialNo: "RM001", Name: "Espresso Beans", Unit: "g", Status: 1},
		customer: models.Customer{Name: "Test Customer", Phone: "555-0101"},
	}
	if err := db.Create(&f.store).Error; err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	if err := db.Create(&f.beans).Error; err != nil {
		t.Fatalf("Failed to seed material: %v", err)
	}
	if err := db.Create(&f.customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}

	f.latte = models.Product{ProductNo: "P001", Name: "Latte", Price: 28.00, Status: 1}
	f.croissant = models.Product{ProductNo: "P002", Name: "Butter Croissant", Price: 15.00, Status: 1}
	if err := db.Create(&f.latte).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	if err := db.Create(&f.croissant).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	bom := models.ProductBOM{ProductID: f.latte.ID, MaterialID: f.beans.ID, Quantity: 18, Unit: "g", IsMain: true}
	if err := db.Create(&bom).Error; err != nil {
		t.Fatalf("Failed to seed BOM: %v", err)
	}

	inventories := []models.Inventory{
		{StoreID: f.store.ID, ProductID: f.latte.ID, Quantity: 100, Unit: "cup", WarningThreshold: 10},
		{StoreID: f.store.ID, ProductID: f.croissant.ID, Quantity: 40, Unit: "piece", WarningThreshold: 5},
	}
	if err := db.Create(&inventories).Error; err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}

	materialInv := models.RawMaterialInventory{StoreID: f.store.ID, MaterialID: f.beans.ID, Quantity: 2000, WarningThreshold: 200}
	if err := db.Create(&materialInv).Error; err != nil {
		t.Fatalf("Failed to seed material inventory: %v", err)
	}

	return f
}

func stockQuantity(t *testing.T, db *gorm.DB, storeID, productID uint) float64 {
	t.Helper()

	var inv models.Inventory
	if err := db.Where("store_id = ? AND product_id = ?", storeID, productID).First(&inv).Error; err != nil {
		t.Fatalf("Failed to load inventory: %v", err)
	}
	return inv.Quantity
}

func materialQuantity(t *testing.T, db *gorm.DB, storeID, materialID uint) float64 {
	t.Helper()

	var inv models.RawMaterialInventory
	if err := db.Where("store_id = ? AND material_id = ?", storeID, materialID).First(&inv).Error; err != nil {
		t.Fatalf("Failed to load material inventory: %v", err)
	}
	return inv.Quantity
}

// assertPointsReconciled checks the ledger invariant: the customer's balance
// equals the sum of their points records.
func assertPointsReconciled(t *testing.T, db *gorm.DB, customerID uint) {
	t.Helper()

	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		t.Fatalf("Failed to load customer: %v", err)
	}

	var sum struct{ Total int }
	err := db.Model(&models.PointsRecord{}).
		Select("COALESCE(SUM(points), 0) AS total").
		Where("customer_id = ?", customerID).
		Scan(&sum).Error
	if err != nil {
		t.Fatalf("Failed to sum points records: %v", err)
	}

	if customer.Points != sum.Total {
		t.Fatalf("points ledger out of balance: customer has %d, records sum to %d", customer.Points, sum.Total)
	}
}
