package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability values a product can carry.
const (
	AvailabilityInStock     = "In Stock"
	AvailabilityOutOfStock  = "Out of Stock"
	AvailabilityMadeToOrder = "Made to Order"
)

// Product represents one machine in the catalog. The category is stored
// twice on purpose: CategoryID is a soft reference to the categories table
// (no FK constraint, no cascade) and Category is the denormalized category
// name the public catalog filters on. Writers keep both in sync; the store
// does not.
type Product struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string     `json:"name" gorm:"not null;index"`
	Slug             string     `json:"slug" gorm:"not null;uniqueIndex"`
	Category         string     `json:"category" gorm:"not null;index"`
	CategoryID       *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Description      string     `json:"description"`
	Image            string     `json:"image"`
	ProductType      string     `json:"product_type"`
	Capacity         string     `json:"capacity"`
	ScreenDimension  string     `json:"screen_dimension"`
	NumberOfDecks    string     `json:"number_of_decks"`
	MotorPower       string     `json:"motor_power"`
	GyratoryCircular string     `json:"gyratory_circular"`
	SpecialFeatures  string     `json:"special_features"`
	Availability     string     `json:"availability" gorm:"type:varchar(20);default:'In Stock';check:availability IN ('In Stock', 'Out of Stock', 'Made to Order')"`
	Featured         bool       `json:"featured" gorm:"default:false;index"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ProductRequest is used when creating a product
type ProductRequest struct {
	Name             string     `json:"name" binding:"required" example:"Vibro Sifter 36 Inch"`
	Slug             string     `json:"slug"`
	Category         string     `json:"category" binding:"required" example:"Vibro Sifters"`
	CategoryID       *uuid.UUID `json:"category_id"`
	Description      string     `json:"description"`
	Image            string     `json:"image"`
	ProductType      string     `json:"product_type"`
	Capacity         string     `json:"capacity" example:"500 kg/hr"`
	ScreenDimension  string     `json:"screen_dimension" example:"36 inch"`
	NumberOfDecks    string     `json:"number_of_decks" example:"2"`
	MotorPower       string     `json:"motor_power" example:"0.5 HP"`
	GyratoryCircular string     `json:"gyratory_circular"`
	SpecialFeatures  string     `json:"special_features"`
	Availability     string     `json:"availability" binding:"omitempty,oneof='In Stock' 'Out of Stock' 'Made to Order'"`
	Featured         bool       `json:"featured"`
}

// UpdateProductRequest is used when updating a product (partial update)
type UpdateProductRequest struct {
	Name             *string    `json:"name"`
	Slug             *string    `json:"slug"`
	Category         *string    `json:"category"`
	CategoryID       *uuid.UUID `json:"category_id"`
	Description      *string    `json:"description"`
	Image            *string    `json:"image"`
	ProductType      *string    `json:"product_type"`
	Capacity         *string    `json:"capacity"`
	ScreenDimension  *string    `json:"screen_dimension"`
	NumberOfDecks    *string    `json:"number_of_decks"`
	MotorPower       *string    `json:"motor_power"`
	GyratoryCircular *string    `json:"gyratory_circular"`
	SpecialFeatures  *string    `json:"special_features"`
	Availability     *string    `json:"availability" binding:"omitempty,oneof='In Stock' 'Out of Stock' 'Made to Order'"`
	Featured         *bool      `json:"featured"`
}

// ApplyTo copies the non-nil fields onto an existing product. Shared by
// every repository implementation so partial-update semantics stay
// identical between them.
func (r UpdateProductRequest) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Slug != nil {
		p.Slug = *r.Slug
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.CategoryID != nil {
		p.CategoryID = r.CategoryID
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.ProductType != nil {
		p.ProductType = *r.ProductType
	}
	if r.Capacity != nil {
		p.Capacity = *r.Capacity
	}
	if r.ScreenDimension != nil {
		p.ScreenDimension = *r.ScreenDimension
	}
	if r.NumberOfDecks != nil {
		p.NumberOfDecks = *r.NumberOfDecks
	}
	if r.MotorPower != nil {
		p.MotorPower = *r.MotorPower
	}
	if r.GyratoryCircular != nil {
		p.GyratoryCircular = *r.GyratoryCircular
	}
	if r.SpecialFeatures != nil {
		p.SpecialFeatures = *r.SpecialFeatures
	}
	if r.Availability != nil {
		p.Availability = *r.Availability
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
}

// ProductFilter narrows product list queries. Only products support
// store-side filtering; the other entities return fixed-order lists.
type ProductFilter struct {
	Category   string
	CategoryID string
	Search     string
	Featured   *bool
	Limit      int
	Skip       int
}

// ═══════════════════════════════════════════════════════════
// Stats Response Models
// ═══════════════════════════════════════════════════════════

// CategoryProductStats is the per-category breakdown of the stats endpoint.
// Field names here are part of the dashboard wire contract.
type CategoryProductStats struct {
	CategoryID       string `json:"categoryId"`
	CategoryName     string `json:"categoryName"`
	TotalProducts    int    `json:"totalProducts"`
	ActiveProducts   int    `json:"activeProducts"`
	InactiveProducts int    `json:"inactiveProducts"`
}

type ProductStatsResponse struct {
	TotalProducts    int                    `json:"totalProducts"`
	ActiveProducts   int                    `json:"activeProducts"`
	InactiveProducts int                    `json:"inactiveProducts"`
	CategoryStats    []CategoryProductStats `json:"categoryStats"`
}
