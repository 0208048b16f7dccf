package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enquiry types, one per lead-capture entry point.
const (
	EnquiryTypeGeneral        = "general"
	EnquiryTypeProduct        = "product"
	EnquiryTypeGeneralProduct = "general_product"
	EnquiryTypeBulk           = "bulk"
	EnquiryTypeService        = "service"
)

// Enquiry statuses. Transitions are deliberately unconstrained (any → any);
// the dashboard is free to move a resolved enquiry back to pending.
const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusResolved  = "resolved"
)

// Enquiry is a lead captured from the contact form or product enquiry
// modal. Creation triggers best-effort emails; the row itself is the
// source of truth.
type Enquiry struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Type              string     `json:"type" gorm:"type:varchar(20);not null;default:'general';check:type IN ('general', 'product', 'general_product', 'bulk', 'service')"`
	Name              string     `json:"name" gorm:"not null"`
	Email             string     `json:"email" gorm:"not null;index"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company"`
	ProductName       string     `json:"product_name"`
	ProductCategory   string     `json:"product_category"`
	SelectedProductID *uuid.UUID `json:"selected_product_id" gorm:"type:uuid"`
	Message           string     `json:"message"`
	Status            string     `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending', 'contacted', 'resolved');index"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Enquiry) TableName() string {
	return "enquiries"
}

// EnquiryRequest is the public lead-capture payload
type EnquiryRequest struct {
	Type              string     `json:"type" binding:"omitempty,oneof=general product general_product bulk service"`
	Name              string     `json:"name" binding:"required" example:"Ramesh Patel"`
	Email             string     `json:"email" binding:"required,email" example:"ramesh@example.com"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company"`
	ProductName       string     `json:"product_name"`
	ProductCategory   string     `json:"product_category"`
	SelectedProductID *uuid.UUID `json:"selected_product_id"`
	Message           string     `json:"message"`
}

// UpdateEnquiryRequest is used by the dashboard, mostly for status changes
type UpdateEnquiryRequest struct {
	Status  *string `json:"status" binding:"omitempty,oneof=pending contacted resolved"`
	Message *string `json:"message"`
}

func (r UpdateEnquiryRequest) ApplyTo(e *Enquiry) {
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.Message != nil {
		e.Message = *r.Message
	}
}
