// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Categories before products (foreign key dependency)
	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_title ON products(title)",
		"CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates default product categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Clothing", Slug: "clothing"},
		{Name: "Books", Slug: "books"},
		{Name: "Home & Garden", Slug: "home-garden"},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := m.db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
			log.Printf("Created category: %s", category.Name)
		}
	}

	return nil
}

// seedProducts creates a development product catalog
func (m *Migration) seedProducts() error {
	log.Println("📦 Seeding products...")

	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var electronics, clothing, books catalog.Category
	if err := m.db.Where("slug = ?", "electronics").First(&electronics).Error; err != nil {
		return err
	}
	if err := m.db.Where("slug = ?", "clothing").First(&clothing).Error; err != nil {
		return err
	}
	if err := m.db.Where("slug = ?", "books").First(&books).Error; err != nil {
		return err
	}

	products := []catalog.Product{
		{Title: "Wireless Headphones", Price: 7999, Image: "/images/headphones.jpg", CategoryID: electronics.ID, IsActive: true},
		{Title: "Bluetooth Speaker", Price: 4999, Image: "/images/speaker.jpg", CategoryID: electronics.ID, IsActive: true},
		{Title: "USB-C Charger", Price: 1999, Image: "/images/charger.jpg", CategoryID: electronics.ID, IsActive: true},
		{Title: "Cotton T-Shirt", Price: 1499, Image: "/images/tshirt.jpg", CategoryID: clothing.ID, IsActive: true},
		{Title: "Denim Jacket", Price: 5999, Image: "/images/jacket.jpg", CategoryID: clothing.ID, IsActive: true},
		{Title: "Go Programming Handbook", Price: 2999, Image: "/images/go-book.jpg", CategoryID: books.ID, IsActive: true},
	}

	for _, product := range products {
		if err := m.db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", product.Title, err)
		}
		log.Printf("Created product: %s", product.Title)
	}

	return nil
}
