package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/models"
)

// Seed populates the initial store, catalog, BOM and inventory rows on an
// empty database. It runs once at startup and is a no-op when stores
// already exist.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Store{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing stores: %w", err)
	}
	if count > 0 {
		return nil
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		store := models.Store{Name: "Solo Coffee Central", Address: "1 Roaster Lane", Phone: "555-0100", Status: 1}
		if err := tx.Create(&store).Error; err != nil {
			return err
		}

		drinks := models.Category{Name: "Espresso Drinks", SortOrder: 1, Status: 1}
		bakery := models.Category{Name: "Bakery", SortOrder: 2, Status: 1}
		if err := tx.Create(&drinks).Error; err != nil {
			return err
		}
		if err := tx.Create(&bakery).Error; err != nil {
			return err
		}

		beans := models.RawMaterial{MaterialNo: "RM001", Name: "Espresso Beans", Unit: "g", Category: "coffee", Status: 1}
		milk := models.RawMaterial{MaterialNo: "RM002", Name: "Whole Milk", Unit: "ml", Category: "dairy", Status: 1}
		for _, m := range []*models.RawMaterial{&beans, &milk} {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}

		latte := models.Product{ProductNo: "P001", Name: "Latte", Price: 28.00, CategoryID: drinks.ID, Status: 1}
		americano := models.Product{ProductNo: "P002", Name: "Americano", Price: 22.00, CategoryID: drinks.ID, Status: 1}
		// A pre-made pastry: no BOM rows, only finished-good stock moves.
		croissant := models.Product{ProductNo: "P003", Name: "Butter Croissant", Price: 15.00, CategoryID: bakery.ID, Status: 1}
		for _, p := range []*models.Product{&latte, &americano, &croissant} {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		boms := []models.ProductBOM{
			{ProductID: latte.ID, MaterialID: beans.ID, Quantity: 18, Unit: "g", IsMain: true},
			{ProductID: latte.ID, MaterialID: milk.ID, Quantity: 200, Unit: "ml"},
			{ProductID: americano.ID, MaterialID: beans.ID, Quantity: 18, Unit: "g", IsMain: true},
		}
		if err := tx.Create(&boms).Error; err != nil {
			return err
		}

		inventories := []models.Inventory{
			{StoreID: store.ID, ProductID: latte.ID, Quantity: 100, Unit: "cup", WarningThreshold: 10},
			{StoreID: store.ID, ProductID: americano.ID, Quantity: 100, Unit: "cup", WarningThreshold: 10},
			{StoreID: store.ID, ProductID: croissant.ID, Quantity: 40, Unit: "piece", WarningThreshold: 5},
		}
		if err := tx.Create(&inventories).Error; err != nil {
			return err
		}

		materialInventories := []models.RawMaterialInventory{
			{StoreID: store.ID, MaterialID: beans.ID, Quantity: 5000, WarningThreshold: 500},
			{StoreID: store.ID, MaterialID: milk.ID, Quantity: 20000, WarningThreshold: 2000},
		}
		if err := tx.Create(&materialInventories).Error; err != nil {
			return err
		}

		levels := []models.MemberLevel{
			{Name: "Bronze", MinPoints: 0, Discount: 1},
			{Name: "Silver", MinPoints: 500, Discount: 0.95},
			{Name: "Gold", MinPoints: 2000, Discount: 0.9},
		}
		if err := tx.Create(&levels).Error; err != nil {
			return err
		}

		customer := models.Customer{Name: "Demo Customer", Phone: "555-0199", MemberLevelID: levels[0].ID}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		log.Info().Msg("Seeded initial store, catalog and inventory data")
		return nil
	})
}
