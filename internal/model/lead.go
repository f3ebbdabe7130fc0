// internal/model/lead.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadClosed    LeadStatus = "Closed"
	LeadLost      LeadStatus = "Lost"
)

type Lead struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AgentID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"agent_id"`
	FirstName string     `gorm:"type:text;not null" json:"first_name"`
	LastName  string     `gorm:"type:text" json:"last_name"`
	Email     string     `gorm:"type:citext;index" json:"email"`
	Phone     string     `gorm:"type:text" json:"phone"`
	Source    string     `gorm:"type:text" json:"source"`
	Status    LeadStatus `gorm:"type:text;not null;default:'New'" json:"status"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
