package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryItem is one image on the public gallery page, sorted by Order.
type GalleryItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Image     string    `json:"image" gorm:"not null"`
	Category  string    `json:"category"`
	Order     int       `json:"order" gorm:"column:sort_order;default:0;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

// GalleryItemRequest is used when creating a gallery item
type GalleryItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// UpdateGalleryItemRequest is used when updating a gallery item
type UpdateGalleryItemRequest struct {
	Name     *string `json:"name"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
	Order    *int    `json:"order"`
}

func (r UpdateGalleryItemRequest) ApplyTo(g *GalleryItem) {
	if r.Name != nil {
		g.Name = *r.Name
	}
	if r.Image != nil {
		g.Image = *r.Image
	}
	if r.Category != nil {
		g.Category = *r.Category
	}
	if r.Order != nil {
		g.Order = *r.Order
	}
}
