package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the catalog and creates a super admin account.
// Usage: go run cmd/seed/main.go [-catalog] [-admin]
// This is a standalone CLI tool, not part of the main application.
func main() {
	seedCatalog := flag.Bool("catalog", true, "seed categories and products")
	seedAdmin := flag.Bool("admin", true, "create the super admin account")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BAGICHA - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.Admin{},
		&models.StorefrontSetting{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	// login_events is written through pgx, outside GORM's models
	if err := config.Gorm.Exec(`
		CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL,
			phone TEXT NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL,
			ip_address TEXT,
			user_agent TEXT,
			device_type TEXT
		)`).Error; err != nil {
		log.Fatalf("login_events migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	if *seedCatalog {
		seedCategories()
		seedProducts()
	}

	if *seedAdmin {
		createSuperAdmin()
	}

	fmt.Println()
	fmt.Println("✅ Seeding complete")
}

func seedCategories() {
	categories := []models.Category{
		{Name: "Indoor Plants", Icon: "🪴", Subcategories: models.SubcategoryList{"Foliage", "Flowering", "Air Purifying", "Low Light"}},
		{Name: "Outdoor Plants", Icon: "🌳", Subcategories: models.SubcategoryList{"Shrubs", "Climbers", "Fruit Trees"}},
		{Name: "Succulents", Icon: "🌵", Subcategories: models.SubcategoryList{"Cacti", "Echeveria", "Haworthia"}},
		{Name: "Herbs", Icon: "🌿", Subcategories: models.SubcategoryList{"Culinary", "Medicinal"}},
		{Name: "Seeds", Icon: "🌱", Subcategories: models.SubcategoryList{"Vegetable", "Flower", "Microgreens"}},
		{Name: "Plant Care", Icon: "🧴", Subcategories: models.SubcategoryList{"Fertilizers", "Pesticides", "Potting Mix"}},
		{Name: "Pots & Planters", Icon: "🏺", Subcategories: models.SubcategoryList{"Ceramic", "Terracotta", "Hanging"}},
		{Name: "Garden Tools", Icon: "🛠️", Subcategories: models.SubcategoryList{"Hand Tools", "Watering"}},
	}

	for _, category := range categories {
		var existing models.Category
		err := config.Gorm.Where("name = ?", category.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Category lookup failed: %v", err)
		}
		if err := config.Gorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", category.Name, err)
		}
	}
	log.Printf("✓ Seeded %d categories", len(categories))
}

func seedProducts() {
	foliage := "Foliage"
	airPurifying := "Air Purifying"
	cacti := "Cacti"
	culinary := "Culinary"
	fertilizers := "Fertilizers"
	bestseller := "Bestseller"
	newArrival := "New"
	green := "green"
	orange := "orange"
	mrp699 := 699.0
	mrp399 := 399.0

	products := []models.Product{
		{
			Name: "Monstera Deliciosa", Category: "Indoor Plants", Subcategory: &foliage,
			Price: 499, OriginalPrice: &mrp699, Rating: 4.7, Reviews: 182,
			Image: "https://res.cloudinary.com/bagicha/image/upload/v1/bagicha/products/monstera.jpg",
			Badge: &bestseller, BadgeColor: &green, Stock: 25, InStock: true,
			FastDelivery: true, Organic: false,
			Features:    models.FeatureList{"Pet friendly", "Low maintenance", "Statement foliage"},
			Description: "The classic split-leaf monstera. Thrives in bright indirect light.",
		},
		{
			Name: "Snake Plant", Category: "Indoor Plants", Subcategory: &airPurifying,
			Price: 299, OriginalPrice: &mrp399, Rating: 4.8, Reviews: 240,
			Image: "https://res.cloudinary.com/bagicha/image/upload/v1/bagicha/products/snake-plant.jpg",
			Stock: 40, InStock: true, FastDelivery: true,
			Features:    models.FeatureList{"Air purifying", "Survives neglect", "Low light friendly"},
			Description: "Sansevieria trifasciata, the hardest houseplant to kill.",
		},
		{
			Name: "Golden Barrel Cactus", Category: "Succulents", Subcategory: &cacti,
			Price: 349, Rating: 4.5, Reviews: 63,
			Image: "https://res.cloudinary.com/bagicha/image/upload/v1/bagicha/products/barrel-cactus.jpg",
			Badge: &newArrival, BadgeColor: &orange, Stock: 18, InStock: true,
			Features:    models.FeatureList{"Drought tolerant", "Full sun"},
			Description: "A sculptural golden cactus for sunny windowsills.",
		},
		{
			Name: "Tulsi (Holy Basil)", Category: "Herbs", Subcategory: &culinary,
			Price: 149, Rating: 4.9, Reviews: 310,
			Image: "https://res.cloudinary.com/bagicha/image/upload/v1/bagicha/products/tulsi.jpg",
			Stock: 60, InStock: true, FastDelivery: true, Organic: true,
			Features:    models.FeatureList{"Organically grown", "Medicinal", "Fragrant"},
			Description: "Organically grown tulsi in a 4-inch nursery pot.",
		},
		{
			Name: "Neem Oil Spray 500ml", Category: "Plant Care", Subcategory: &fertilizers,
			Price: 249, Rating: 4.4, Reviews: 97,
			Image: "https://res.cloudinary.com/bagicha/image/upload/v1/bagicha/products/neem-oil.jpg",
			Stock: 8, InStock: true, Organic: true,
			Features:    models.FeatureList{"Organic pest control", "Ready to use"},
			Description: "Cold-pressed neem oil spray for common houseplant pests.",
		},
	}

	for _, product := range products {
		var existing models.Product
		err := config.Gorm.Where("name = ?", product.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Product lookup failed: %v", err)
		}
		if err := config.Gorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", product.Name, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(products))
}

func createSuperAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		log.Println("⚠️  SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping super admin")
		return
	}
	if name == "" {
		name = "Bagicha Admin"
	}
	if len(password) < 8 {
		log.Fatal("❌ SEED_ADMIN_PASSWORD must be at least 8 characters")
	}

	var existing models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("⚠️  Admin '%s' already exists, skipping", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "super_admin",
	}

	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/auth/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
}
