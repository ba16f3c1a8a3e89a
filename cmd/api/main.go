package main

import (
	"log"

	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/infrastructure/database"
	"github.com/arjunmenon/restobill/internal/infrastructure/repository"
	"github.com/arjunmenon/restobill/internal/presentation/http/handler"
	"github.com/arjunmenon/restobill/internal/presentation/http/routes"
	"github.com/arjunmenon/restobill/pkg/printer"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default menu on first boot
	if err := database.SeedMenu(db); err != nil {
		log.Printf("Warning: Failed to seed menu: %v", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Resolve the tax policy once per deployment
	calculator, err := service.NewCalculatorFromConfig(&cfg.Billing)
	if err != nil {
		log.Fatalf("Invalid billing configuration: %v", err)
	}
	log.Printf("Billing policy: %s", calculator.Policy().Name())

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(menuRepo, calculator)
	orderService := service.NewOrderService(orderRepo, calculator, cfg.Billing.ReferencePrefix)
	receiptService := service.NewReceiptService(orderRepo, thermalPrinter, cfg.Printer.Type, cfg.Store)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:    handler.NewMenuHandler(menuService),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(orderService, cartService),
		Receipt: handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
