package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a customer quote; Rating runs 1-5.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Content   string    `json:"content" gorm:"not null"`
	Image     string    `json:"image"`
	Rating    int       `json:"rating" gorm:"default:5;check:rating >= 1 AND rating <= 5"`
	Featured  bool      `json:"featured" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// TestimonialRequest is used when creating a testimonial
type TestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Content  string `json:"content" binding:"required"`
	Image    string `json:"image"`
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured bool   `json:"featured"`
}

// UpdateTestimonialRequest is used when updating a testimonial
type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured *bool   `json:"featured"`
}

func (r UpdateTestimonialRequest) ApplyTo(t *Testimonial) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Company != nil {
		t.Company = *r.Company
	}
	if r.Content != nil {
		t.Content = *r.Content
	}
	if r.Image != nil {
		t.Image = *r.Image
	}
	if r.Rating != nil {
		t.Rating = *r.Rating
	}
	if r.Featured != nil {
		t.Featured = *r.Featured
	}
}
