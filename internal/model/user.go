// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleHR                Role = "hr"
	RoleOperationsManager Role = "operations_manager"
	RoleOperations        Role = "operations"
	RoleAgentManager      Role = "agent_manager"
	RoleTeamLeader        Role = "team_leader"
	RoleAgent             Role = "agent"
)

// Roles is the closed set of roles; the scoping rules are keyed off it and
// are not end-user configurable.
var Roles = []Role{
	RoleAdmin,
	RoleHR,
	RoleOperationsManager,
	RoleOperations,
	RoleAgentManager,
	RoleTeamLeader,
	RoleAgent,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Management reports whether the role sees every resource regardless of
// ownership (everything above the team_leader/agent tier).
func (r Role) Management() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleOperationsManager, RoleOperations, RoleAgentManager:
		return true
	}
	return false
}

// CanDeleteViewings reports whether the role may delete viewings. Deletion
// is reserved regardless of ownership.
func (r Role) CanDeleteViewings() bool {
	switch r {
	case RoleAdmin, RoleOperationsManager, RoleOperations:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"type:text;not null" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null;index" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`

	// IsAssigned/AssignedTo mirror the unique active team_assignments row
	// for this user. They are written only inside the assignment ledger's
	// transactions; the ledger rows remain the source of truth.
	IsAssigned bool       `gorm:"not null;default:false" json:"is_assigned"`
	AssignedTo *uuid.UUID `gorm:"type:uuid" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
