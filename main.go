package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/solocoffee/pos-api/config"
	"github.com/solocoffee/pos-api/controllers"
	"github.com/solocoffee/pos-api/models"
	"github.com/solocoffee/pos-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetupLogger(cfg)

	log.Info().Msg("Starting Solo Coffee POS API server...")

	// Connect to database
	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate database models
	db := config.GetDB()
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
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed")

	// Seed initial data on an empty database
	if err := config.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Payment collaborator
	services.InitPaymentService()

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.POST("/orders", controllers.CreateOrder)
		v1.GET("/orders", controllers.ListOrders)
		v1.GET("/orders/:id", controllers.GetOrder)
		v1.POST("/orders/:id/pay", controllers.PayOrder)
		v1.POST("/orders/:id/cancel", controllers.CancelOrder)
		v1.POST("/orders/:id/complete", controllers.CompleteOrder)
		v1.POST("/orders/:id/refund", controllers.RefundOrder)

		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/:id/bom", controllers.GetProductBOM)

		v1.GET("/inventory", controllers.ListInventory)
		v1.GET("/inventory/low-stock", controllers.LowStock)
		v1.GET("/inventory/materials/low-stock", controllers.LowStockMaterials)
		v1.PUT("/inventory/restock", controllers.Restock)

		v1.GET("/customers/:id", controllers.GetCustomer)
		v1.GET("/customers/:id/points", controllers.GetCustomerPoints)
	}

	// Start server
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("Server is running")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Solo Coffee POS API is running",
	})
}
