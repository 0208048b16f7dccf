package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page types that carry an editable content document.
const (
	ContentTypeHome    = "home"
	ContentTypeAbout   = "about"
	ContentTypeContact = "contact"
	ContentTypeFooter  = "footer"
)

// ContentTypes lists every valid page type, in display order.
var ContentTypes = []string{ContentTypeHome, ContentTypeAbout, ContentTypeContact, ContentTypeFooter}

// IsValidContentType reports whether t names a known page document.
func IsValidContentType(t string) bool {
	for _, ct := range ContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Content is a singleton-per-type page document. Data is a loosely-typed
// bag because each page has its own shape and the admin form replaces it
// wholesale. Auto-created with defaults on first read.
type Content struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Type      string    `json:"type" gorm:"type:varchar(20);not null;uniqueIndex;check:type IN ('home', 'about', 'contact', 'footer')"`
	Data      JSONMap   `json:"data" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Content) TableName() string {
	return "contents"
}

// UpdateContentRequest replaces the page document wholesale.
type UpdateContentRequest struct {
	Data JSONMap `json:"data" binding:"required"`
}

// DefaultContent returns the document created on first read of a page
// type that has never been edited.
func DefaultContent(pageType string) *Content {
	data := JSONMap{}
	switch pageType {
	case ContentTypeHome:
		data = JSONMap{
			"headline":    "Precision Screening & Sieving Machines",
			"subheadline": "Trusted by pharmaceutical and industrial plants across the country",
			"highlights":  []any{},
		}
	case ContentTypeAbout:
		data = JSONMap{
			"story":   "",
			"mission": "",
			"vision":  "",
		}
	case ContentTypeContact:
		data = JSONMap{
			"intro":         "Tell us about your screening requirement and we will get back within one business day.",
			"office_hours":  "Mon-Sat, 9:00-18:00",
			"response_note": "",
		}
	case ContentTypeFooter:
		data = JSONMap{
			"about_blurb": "",
			"quick_links": []any{},
		}
	}
	return &Content{Type: pageType, Data: data}
}
