// internal/model/viewing.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ViewingStatus string

const (
	ViewingScheduled   ViewingStatus = "Scheduled"
	ViewingCompleted   ViewingStatus = "Completed"
	ViewingCancelled   ViewingStatus = "Cancelled"
	ViewingNoShow      ViewingStatus = "No Show"
	ViewingRescheduled ViewingStatus = "Rescheduled"
)

func (s ViewingStatus) Valid() bool {
	switch s {
	case ViewingScheduled, ViewingCompleted, ViewingCancelled, ViewingNoShow, ViewingRescheduled:
		return true
	}
	return false
}

// Viewing is a visit record for a lead at a property. A viewing with a nil
// ParentViewingID is a root: the primary record for that (lead, property)
// pair, unique system-wide via a partial unique index created by
// repository.Migrate. Follow-ups reference their root and are exempt from
// the uniqueness rule; they never have children of their own.
type Viewing struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PropertyID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"property_id"`
	LeadID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"lead_id"`
	AgentID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"agent_id"`
	ViewingDate time.Time     `gorm:"type:date;not null" json:"viewing_date"`
	ViewingTime string        `gorm:"type:text;not null" json:"viewing_time"`
	Status      ViewingStatus `gorm:"type:text;not null;default:'Scheduled'" json:"status"`
	IsSerious   bool          `gorm:"not null;default:false" json:"is_serious"`
	Notes       string        `gorm:"type:text" json:"notes"`

	ParentViewingID *uuid.UUID `gorm:"type:uuid;index" json:"parent_viewing_id"`

	// SubViewings is populated only when this viewing is a root.
	SubViewings []Viewing `gorm:"foreignKey:ParentViewingID" json:"sub_viewings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Viewing) IsRoot() bool {
	return v.ParentViewingID == nil
}
