package authz_test

import (
	"context"
	"testing"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubOwners reports a fixed owner for every resource id.
type stubOwners struct {
	ownerID uuid.UUID
	err     error
}

func (s *stubOwners) OwnerOf(_ context.Context, _ authz.Resource, _ uuid.UUID) (uuid.UUID, error) {
	return s.ownerID, s.err
}

func newTestGate(teams authz.TeamDirectory, owners authz.OwnershipLoader) *authz.Gate {
	return authz.NewGate(authz.NewResolver(teams), owners)
}

func TestGateCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("permission matrix", func(t *testing.T) {
		gate := newTestGate(&stubTeams{}, &stubOwners{})

		cases := []struct {
			name     string
			role     model.Role
			resource authz.Resource
			action   authz.Action
			allowed  bool
		}{
			{"agent lists viewings", model.RoleAgent, authz.ResourceViewing, authz.ActionList, true},
			{"agent creates lead", model.RoleAgent, authz.ResourceLead, authz.ActionCreate, true},
			{"agent deletes viewing", model.RoleAgent, authz.ResourceViewing, authz.ActionDelete, false},
			{"team leader deletes lead", model.RoleTeamLeader, authz.ResourceLead, authz.ActionDelete, false},
			{"hr deletes viewing", model.RoleHR, authz.ResourceViewing, authz.ActionDelete, false},
			{"agent manager deletes property", model.RoleAgentManager, authz.ResourceProperty, authz.ActionDelete, false},
			{"operations deletes viewing", model.RoleOperations, authz.ResourceViewing, authz.ActionDelete, true},
			{"operations manager deletes property", model.RoleOperationsManager, authz.ResourceProperty, authz.ActionDelete, true},
			{"admin deletes lead", model.RoleAdmin, authz.ResourceLead, authz.ActionDelete, true},
			{"agent lists users", model.RoleAgent, authz.ResourceUser, authz.ActionList, false},
			{"team leader reads user", model.RoleTeamLeader, authz.ResourceUser, authz.ActionRead, false},
			{"operations creates user", model.RoleOperations, authz.ResourceUser, authz.ActionCreate, false},
			{"hr creates user", model.RoleHR, authz.ResourceUser, authz.ActionCreate, true},
			{"admin updates user", model.RoleAdmin, authz.ResourceUser, authz.ActionUpdate, true},
			{"hr deletes user", model.RoleHR, authz.ResourceUser, authz.ActionDelete, false},
			{"admin deletes user", model.RoleAdmin, authz.ResourceUser, authz.ActionDelete, true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := authz.Principal{ID: uuid.New(), Role: tc.role}
				err := gate.Check(ctx, p, tc.resource, tc.action, uuid.Nil)
				if tc.allowed {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, domain.ErrForbidden)
					assert.ErrorIs(t, err, domain.ErrActionNotPermitted)
				}
			})
		}
	})

	t.Run("concrete target is re-validated against fresh ownership", func(t *testing.T) {
		agentID := uuid.New()
		otherAgent := uuid.New()
		targetID := uuid.New()

		// The row belongs to another agent; whatever the caller believed,
		// the reloaded ownership decides.
		gate := newTestGate(&stubTeams{}, &stubOwners{ownerID: otherAgent})

		err := gate.Check(ctx, authz.Principal{ID: agentID, Role: model.RoleAgent}, authz.ResourceLead, authz.ActionUpdate, targetID)
		assert.ErrorIs(t, err, domain.ErrOutsideScope)
	})

	t.Run("target owned by a current team member passes", func(t *testing.T) {
		leaderID := uuid.New()
		memberID := uuid.New()

		gate := newTestGate(&stubTeams{members: []uuid.UUID{memberID}}, &stubOwners{ownerID: memberID})

		err := gate.Check(ctx, authz.Principal{ID: leaderID, Role: model.RoleTeamLeader}, authz.ResourceViewing, authz.ActionUpdate, uuid.New())
		assert.NoError(t, err)
	})

	t.Run("target owned by a removed member is denied", func(t *testing.T) {
		leaderID := uuid.New()
		formerMember := uuid.New()

		gate := newTestGate(&stubTeams{members: nil}, &stubOwners{ownerID: formerMember})

		err := gate.Check(ctx, authz.Principal{ID: leaderID, Role: model.RoleTeamLeader}, authz.ResourceViewing, authz.ActionUpdate, uuid.New())
		assert.ErrorIs(t, err, domain.ErrOutsideScope)
	})

	t.Run("missing target propagates not found", func(t *testing.T) {
		gate := newTestGate(&stubTeams{}, &stubOwners{err: domain.ErrLeadNotFound})

		err := gate.Check(ctx, authz.Principal{ID: uuid.New(), Role: model.RoleAdmin}, authz.ResourceLead, authz.ActionUpdate, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGateCheckPrivilegeEdit(t *testing.T) {
	gate := newTestGate(&stubTeams{}, &stubOwners{})

	t.Run("editing another account is allowed", func(t *testing.T) {
		p := authz.Principal{ID: uuid.New(), Role: model.RoleAdmin}
		assert.NoError(t, gate.CheckPrivilegeEdit(p, uuid.New()))
	})

	t.Run("editing own privileges is refused for every role", func(t *testing.T) {
		for _, role := range model.Roles {
			p := authz.Principal{ID: uuid.New(), Role: role}
			err := gate.CheckPrivilegeEdit(p, p.ID)
			assert.ErrorIs(t, err, domain.ErrSelfPrivilegeEdit, "role %s", role)
			assert.ErrorIs(t, err, domain.ErrForbidden, "role %s", role)
		}
	})
}
