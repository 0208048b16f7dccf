package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a customer logo shown on the clients strip, sorted by Order.
type Client struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Logo      string    `json:"logo" gorm:"not null"`
	Website   string    `json:"website"`
	Order     int       `json:"order" gorm:"column:sort_order;default:0;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Client) TableName() string {
	return "clients"
}

// ClientRequest is used when creating a client
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Logo    string `json:"logo" binding:"required"`
	Website string `json:"website"`
	Order   int    `json:"order"`
}

// UpdateClientRequest is used when updating a client
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Logo    *string `json:"logo"`
	Website *string `json:"website"`
	Order   *int    `json:"order"`
}

func (r UpdateClientRequest) ApplyTo(c *Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Logo != nil {
		c.Logo = *r.Logo
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.Order != nil {
		c.Order = *r.Order
	}
}
