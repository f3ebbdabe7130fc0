// internal/model/team_assignment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamAssignment is one row of the append-only assignment ledger. Removal
// and transfer deactivate rows, they never delete or retarget them, so the
// full history of an agent's team membership survives for audit.
//
// The single-active-assignment invariant is enforced by a partial unique
// index on (agent_id) WHERE is_active, created by repository.Migrate.
type TeamAssignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeamLeaderID uuid.UUID `gorm:"type:uuid;not null;index" json:"team_leader_id"`
	AgentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"agent_id"`
	AssignedBy   uuid.UUID `gorm:"type:uuid;not null" json:"assigned_by"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	AssignedAt   time.Time `gorm:"not null" json:"assigned_at"`

	TeamLeader *User `gorm:"foreignKey:TeamLeaderID" json:"team_leader,omitempty"`
	Agent      *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}
