// internal/model/property.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "Available"
	PropertyReserved  PropertyStatus = "Reserved"
	PropertySold      PropertyStatus = "Sold"
	PropertyRented    PropertyStatus = "Rented"
)

type Property struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AgentID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"agent_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	City      string         `gorm:"type:text;index" json:"city"`
	Type      string         `gorm:"type:text" json:"type"`
	Bedrooms  int            `gorm:"not null;default:0" json:"bedrooms"`
	Price     float64        `gorm:"not null;default:0" json:"price"`
	Status    PropertyStatus `gorm:"type:text;not null;default:'Available'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
