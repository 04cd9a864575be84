package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/db"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
)

// sampleProducts is the built-in starter catalog, inserted only when the
// products table is empty.
var sampleProducts = []model.Product{
	{Name: "Wireless Mouse", Description: "Ergonomic 2.4GHz wireless mouse", Price: decimal.NewFromFloat(19.99), Category: "electronics", Stock: 120, Rating: 4.3, Image: "https://images.storefront.local/wireless-mouse.jpg"},
	{Name: "Mechanical Keyboard", Description: "Tenkeyless keyboard with brown switches", Price: decimal.NewFromFloat(79.00), Category: "electronics", Stock: 45, Rating: 4.7, Image: "https://images.storefront.local/mech-keyboard.jpg"},
	{Name: "Yoga Mat", Description: "Non-slip 6mm exercise mat", Price: decimal.NewFromFloat(24.50), Category: "sports", Stock: 200, Rating: 4.1, Image: "https://images.storefront.local/yoga-mat.jpg"},
	{Name: "Stainless Water Bottle", Description: "Insulated 750ml bottle", Price: decimal.NewFromFloat(15.00), Category: "sports", Stock: 310, Rating: 4.5, Image: "https://images.storefront.local/water-bottle.jpg"},
	{Name: "Desk Lamp", Description: "LED lamp with adjustable color temperature", Price: decimal.NewFromFloat(32.90), Category: "home", Stock: 80, Rating: 4.0, Image: "https://images.storefront.local/desk-lamp.jpg"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))

	if err := seedAdmin(ctx, authService, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	created, err := seedProducts(ctx, productRepo)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Products created: %d", created)
}

// seedAdmin ensures the configured admin account exists. An existing
// account is left untouched.
func seedAdmin(ctx context.Context, authService service.AuthService, cfg *config.Config) error {
	_, err := authService.Register(ctx, "Administrator", cfg.AdminEmail, cfg.AdminPassword, model.RoleAdmin)
	if errors.Is(err, apperrors.ErrEmailTaken) {
		log.Printf("Admin account %s already exists, skipping", cfg.AdminEmail)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("Admin account %s created", cfg.AdminEmail)
	return nil
}

// seedProducts inserts the sample catalog when the table is empty.
func seedProducts(ctx context.Context, repo repository.ProductRepository) (int, error) {
	_, total, err := repo.List(ctx, repository.ProductFilter{Page: 1, Limit: 1})
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Printf("Catalog already has %d products, skipping sample data", total)
		return 0, nil
	}

	created := 0
	for i := range sampleProducts {
		product := sampleProducts[i]
		if err := repo.Create(ctx, &product); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
