package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is one service offering (installation, maintenance, spares).
// ShortDescription is a derived summary the admin form caps at seven
// words; the store accepts whatever the API was given.
type Service struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string     `json:"title" gorm:"not null;index"`
	Subtitle         string     `json:"subtitle"`
	Slug             string     `json:"slug" gorm:"not null;uniqueIndex"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Icon             string     `json:"icon"`
	Image            string     `json:"image"`
	Features         StringList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	Featured         bool       `json:"featured" gorm:"default:false"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Service) TableName() string {
	return "services"
}

// ServiceRequest is used when creating a service
type ServiceRequest struct {
	Title            string   `json:"title" binding:"required" example:"Installation & Commissioning"`
	Subtitle         string   `json:"subtitle"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Icon             string   `json:"icon"`
	Image            string   `json:"image"`
	Features         []string `json:"features"`
	Featured         bool     `json:"featured"`
}

// UpdateServiceRequest is used when updating a service
type UpdateServiceRequest struct {
	Title            *string   `json:"title"`
	Subtitle         *string   `json:"subtitle"`
	Slug             *string   `json:"slug"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"short_description"`
	Icon             *string   `json:"icon"`
	Image            *string   `json:"image"`
	Features         *[]string `json:"features"`
	Featured         *bool     `json:"featured"`
}

func (r UpdateServiceRequest) ApplyTo(s *Service) {
	if r.Title != nil {
		s.Title = *r.Title
	}
	if r.Subtitle != nil {
		s.Subtitle = *r.Subtitle
	}
	if r.Slug != nil {
		s.Slug = *r.Slug
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.ShortDescription != nil {
		s.ShortDescription = *r.ShortDescription
	}
	if r.Icon != nil {
		s.Icon = *r.Icon
	}
	if r.Image != nil {
		s.Image = *r.Image
	}
	if r.Features != nil {
		s.Features = StringList(*r.Features)
	}
	if r.Featured != nil {
		s.Featured = *r.Featured
	}
}
