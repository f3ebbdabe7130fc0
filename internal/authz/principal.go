// internal/authz/principal.go
package authz

import (
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
)

// Principal is the verified actor issuing a request. Credential
// verification happens upstream; by the time a Principal reaches this
// package its id and role are trusted.
type Principal struct {
	ID   uuid.UUID
	Role model.Role
}

// Resource names the resource families the authorization rules cover.
type Resource string

const (
	ResourceLead     Resource = "lead"
	ResourceProperty Resource = "property"
	ResourceViewing  Resource = "viewing"
	ResourceUser     Resource = "user"
)

type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)
