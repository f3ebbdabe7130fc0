// internal/authz/scope.go
package authz

import (
	"context"
	"fmt"

	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScopeKind int

const (
	// ScopeAll places no ownership restriction on the query.
	ScopeAll ScopeKind = iota
	// ScopeOwnedBySelf restricts to resources owned by the principal.
	ScopeOwnedBySelf
	// ScopeOwnedByAnyOf restricts to resources owned by any id in OwnerIDs.
	ScopeOwnedByAnyOf
)

// Scope is the computed set of resource-owner ids a principal may see. It is
// applied as an extra AND filter, so it can only ever narrow a query.
type Scope struct {
	Kind        ScopeKind
	PrincipalID uuid.UUID
	OwnerIDs    []uuid.UUID
}

// Apply narrows q to rows whose ownerColumn falls inside the scope. Filters
// the caller already placed on q are preserved; scope is ANDed on top.
func (s Scope) Apply(q *gorm.DB, ownerColumn string) *gorm.DB {
	switch s.Kind {
	case ScopeAll:
		return q
	case ScopeOwnedBySelf:
		return q.Where(ownerColumn+" = ?", s.PrincipalID)
	default:
		if len(s.OwnerIDs) == 0 {
			// An empty membership set matches nothing, not everything.
			return q.Where("1 = 0")
		}
		return q.Where(ownerColumn+" IN ?", s.OwnerIDs)
	}
}

// Contains reports whether a resource owned by ownerID falls inside the scope.
func (s Scope) Contains(ownerID uuid.UUID) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeOwnedBySelf:
		return ownerID == s.PrincipalID
	default:
		for _, id := range s.OwnerIDs {
			if id == ownerID {
				return true
			}
		}
		return false
	}
}

// TeamDirectory supplies live team membership for team leaders. Satisfied by
// the assignment repository.
type TeamDirectory interface {
	TeamMemberIDs(ctx context.Context, teamLeaderID uuid.UUID) ([]uuid.UUID, error)
}

// Resolver maps (principal, resource) to a Scope. The role table is fixed
// and identical across leads, properties and viewings; team leader scope is
// recomputed from the ledger on every call so a removed member disappears
// immediately, past records included.
type Resolver struct {
	teams TeamDirectory
}

func NewResolver(teams TeamDirectory) *Resolver {
	return &Resolver{teams: teams}
}

func (r *Resolver) Resolve(ctx context.Context, p Principal, resource Resource) (Scope, error) {
	switch {
	case p.Role.Management():
		return Scope{Kind: ScopeAll, PrincipalID: p.ID}, nil

	case p.Role == model.RoleTeamLeader:
		members, err := r.teams.TeamMemberIDs(ctx, p.ID)
		if err != nil {
			return Scope{}, fmt.Errorf("resolving team membership: %w", err)
		}
		// The leader always sees their own records even with no members.
		owners := append([]uuid.UUID{p.ID}, members...)
		return Scope{Kind: ScopeOwnedByAnyOf, PrincipalID: p.ID, OwnerIDs: owners}, nil

	case p.Role == model.RoleAgent:
		return Scope{Kind: ScopeOwnedBySelf, PrincipalID: p.ID}, nil

	default:
		return Scope{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, p.Role)
	}
}
