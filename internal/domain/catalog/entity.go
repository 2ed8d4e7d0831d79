// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. The cart subsystem treats products
// as immutable for the lifetime of a session: they are loaded once and only
// read afterwards.
type Product struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null;size:255" json:"title"`
	Price      int64          `gorm:"not null" json:"price"` // Price in cents
	Image      string         `gorm:"size:500" json:"image"`
	CategoryID uint           `gorm:"not null;index" json:"category_id"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// CategoryName returns the display label for the product's category.
func (p Product) CategoryName() string {
	return p.Category.Name
}

// Category represents a product category
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Category) TableName() string {
	return "categories"
}

// Suggestion is a single live-search suggestion. HighlightedHTML carries the
// title with matched fragments wrapped in <mark> tags; non-matching text is
// HTML-escaped.
type Suggestion struct {
	ProductID       uint   `json:"product_id"`
	Title           string `json:"title"`
	HighlightedHTML string `json:"highlighted_html"`
}
