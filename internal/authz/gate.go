// internal/authz/gate.go
package authz

import (
	"context"
	"fmt"

	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
)

type roleSet map[model.Role]bool

var (
	anyRole = roleSet{
		model.RoleAdmin:             true,
		model.RoleHR:                true,
		model.RoleOperationsManager: true,
		model.RoleOperations:        true,
		model.RoleAgentManager:      true,
		model.RoleTeamLeader:        true,
		model.RoleAgent:             true,
	}
	managementRoles = roleSet{
		model.RoleAdmin:             true,
		model.RoleHR:                true,
		model.RoleOperationsManager: true,
		model.RoleOperations:        true,
		model.RoleAgentManager:      true,
	}
	operationsRoles = roleSet{
		model.RoleAdmin:             true,
		model.RoleOperationsManager: true,
		model.RoleOperations:        true,
	}
	userAdminRoles = roleSet{
		model.RoleAdmin: true,
		model.RoleHR:    true,
	}
)

// matrix is the fixed role×action permission table. Ownership scoping is a
// separate, additional restriction: a role listed here still only reaches
// resources inside its resolved scope.
var matrix = map[Resource]map[Action]roleSet{
	ResourceLead: {
		ActionList:   anyRole,
		ActionRead:   anyRole,
		ActionCreate: anyRole,
		ActionUpdate: anyRole,
		ActionDelete: operationsRoles,
	},
	ResourceProperty: {
		ActionList:   anyRole,
		ActionRead:   anyRole,
		ActionCreate: anyRole,
		ActionUpdate: anyRole,
		ActionDelete: operationsRoles,
	},
	ResourceViewing: {
		ActionList:   anyRole,
		ActionRead:   anyRole,
		ActionCreate: anyRole,
		ActionUpdate: anyRole,
		ActionDelete: operationsRoles,
	},
	ResourceUser: {
		ActionList:   managementRoles,
		ActionRead:   managementRoles,
		ActionCreate: userAdminRoles,
		ActionUpdate: userAdminRoles,
		ActionDelete: roleSet{model.RoleAdmin: true},
	},
}

// OwnershipLoader loads the minimal ownership fact for a concrete target:
// the id of the agent owning the resource row. Satisfied by the ownership
// store in the repository package.
type OwnershipLoader interface {
	OwnerOf(ctx context.Context, resource Resource, id uuid.UUID) (uuid.UUID, error)
}

// Gate is the authorization entry point for controllers. It combines the
// permission matrix with the resolver's scope, and for mutations on a
// concrete target reloads the target's ownership so a stale client-side
// list can never grant a write a fresh check would deny.
type Gate struct {
	resolver *Resolver
	owners   OwnershipLoader
}

func NewGate(resolver *Resolver, owners OwnershipLoader) *Gate {
	return &Gate{resolver: resolver, owners: owners}
}

// Check returns nil when the principal may perform action on the resource,
// or a forbidden-kind error describing the denial. targetID is required for
// actions on a concrete row; pass uuid.Nil for list/create checks.
func (g *Gate) Check(ctx context.Context, p Principal, resource Resource, action Action, targetID uuid.UUID) error {
	actions, ok := matrix[resource]
	if !ok {
		return fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, resource)
	}
	if !actions[action][p.Role] {
		return fmt.Errorf("%s may not %s %s: %w", p.Role, action, resource, domain.ErrActionNotPermitted)
	}

	if targetID == uuid.Nil {
		return nil
	}

	ownerID, err := g.owners.OwnerOf(ctx, resource, targetID)
	if err != nil {
		return err
	}
	scope, err := g.resolver.Resolve(ctx, p, resource)
	if err != nil {
		return err
	}
	if !scope.Contains(ownerID) {
		return fmt.Errorf("%s %s: %w", resource, targetID, domain.ErrOutsideScope)
	}
	return nil
}

// CheckPrivilegeEdit enforces the resource-agnostic self-protection rule: no
// principal may change their own role or active status, whatever their role.
func (g *Gate) CheckPrivilegeEdit(p Principal, targetUserID uuid.UUID) error {
	if p.ID == targetUserID {
		return domain.ErrSelfPrivilegeEdit
	}
	return nil
}

// Resolve exposes the underlying scope resolution for list queries.
func (g *Gate) Resolve(ctx context.Context, p Principal, resource Resource) (Scope, error) {
	return g.resolver.Resolve(ctx, p, resource)
}
