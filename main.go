package main

import (
	"log"

	"github.com/shopspring/decimal"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	// Connect opens the store and migrates the catalog schema.
	db, err := database.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database connected and catalog schema migrated")

	// --- RabbitMQ (optional) ---
	// The catalog publishes its change feed when a broker is reachable;
	// without one, writes still succeed and eventing is disabled.
	var events services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("RabbitMQ unavailable, product events disabled: %v", err)
	} else {
		defer mqClient.Close()
		events = mqClient
	}

	// --- Service wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, events)

	// --- Seeding ---
	if cfg.SeedOnStart {
		if err := seedProducts(productService); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}

	products, err := productService.ListProducts()
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}
	log.Printf("Catalog ready with %d products", len(products))
}

// seedProducts populates an empty catalog with some initial data.
func seedProducts(service *services.ProductService) error {
	existing, err := service.ListProducts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d products, skipping seed", len(existing))
		return nil
	}

	products := []models.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.NewFromFloat(12.50), Available: true, Category: models.CategoryCloths},
		{Name: "Hammer", Description: "16oz claw hammer", Price: decimal.NewFromFloat(19.99), Available: true, Category: models.CategoryTools},
		{Name: "Pots", Description: "Stainless steel pot set", Price: decimal.NewFromFloat(49.90), Available: false, Category: models.CategoryHousewares},
	}
	for i := range products {
		if err := service.CreateProduct(&products[i]); err != nil {
			return err
		}
		log.Printf("Seeded product: %s", &products[i])
	}
	return nil
}
