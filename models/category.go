package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products in the catalog sidebar. Deleting a category
// does not touch products that reference it; dangling references are
// accepted behavior.
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null;index"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Screens"`
	Slug        string `json:"slug"`
	Description string `json:"description" example:"Vibrating screens"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}

func (r UpdateCategoryRequest) ApplyTo(c *Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Slug != nil {
		c.Slug = *r.Slug
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.Icon != nil {
		c.Icon = *r.Icon
	}
	if r.Image != nil {
		c.Image = *r.Image
	}
}
