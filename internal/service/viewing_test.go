package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/mocks"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/estateflow/crm/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fakeTeams satisfies authz.TeamDirectory with a fixed member list.
type fakeTeams struct {
	members []uuid.UUID
}

func (f *fakeTeams) TeamMemberIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return f.members, nil
}

// fakeOwners satisfies authz.OwnershipLoader with a fixed owner.
type fakeOwners struct {
	ownerID uuid.UUID
}

func (f *fakeOwners) OwnerOf(_ context.Context, _ authz.Resource, _ uuid.UUID) (uuid.UUID, error) {
	return f.ownerID, nil
}

func newViewingService(viewings repository.ViewingRepositoryIface, teams *fakeTeams) *service.ViewingService {
	gate := authz.NewGate(authz.NewResolver(teams), &fakeOwners{})
	return service.NewViewingService(viewings, gate, teams)
}

func TestViewingCreateRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	propertyID := uuid.New()
	leadID := uuid.New()
	viewingDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("agent creates a viewing for themselves", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		viewingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *model.Viewing) error {
				assert.Equal(t, agentID, v.AgentID, "agent defaults to the caller")
				assert.Equal(t, model.ViewingScheduled, v.Status, "status defaults to scheduled")
				assert.Nil(t, v.ParentViewingID)
				v.ID = uuid.New()
				return nil
			})

		svc := newViewingService(viewingRepo, &fakeTeams{})
		got, err := svc.CreateRoot(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			ViewingDate: viewingDate,
			ViewingTime: "14:30",
		})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("agent may not create a viewing for another agent", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateRoot(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			AgentID:     uuid.New(),
			ViewingDate: viewingDate,
			ViewingTime: "14:30",
		})

		assert.ErrorIs(t, err, domain.ErrOutsideScope)
	})

	t.Run("team leader creates a viewing for a member", func(t *testing.T) {
		leaderID := uuid.New()
		memberID := uuid.New()
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		viewingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *model.Viewing) error {
				assert.Equal(t, memberID, v.AgentID)
				v.ID = uuid.New()
				return nil
			})

		svc := newViewingService(viewingRepo, &fakeTeams{members: []uuid.UUID{memberID}})
		_, err := svc.CreateRoot(context.Background(), authz.Principal{ID: leaderID, Role: model.RoleTeamLeader}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			AgentID:     memberID,
			ViewingDate: viewingDate,
			ViewingTime: "09:00",
		})

		assert.NoError(t, err)
	})

	t.Run("second root for the same lead and property is a duplicate", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		viewingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrDuplicateRootViewing)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateRoot(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			ViewingDate: viewingDate,
			ViewingTime: "14:30",
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateRootViewing)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateRoot(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			ViewingDate: viewingDate,
			ViewingTime: "14:30",
			Status:      "Maybe",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidViewingStatus)
	})

	t.Run("missing viewing time fails validation", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateRoot(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, service.CreateViewingInput{
			PropertyID:  propertyID,
			LeadID:      leadID,
			ViewingDate: viewingDate,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestViewingCreateFollowUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	viewingDate := time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)

	rootID := uuid.New()
	root := func() *model.Viewing {
		return &model.Viewing{
			ID:         rootID,
			PropertyID: uuid.New(),
			LeadID:     uuid.New(),
			AgentID:    agentID,
			Status:     model.ViewingCompleted,
		}
	}

	t.Run("follow-up inherits the parent's property, lead and agent", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		parent := root()

		gomock.InOrder(
			viewingRepo.EXPECT().FindByID(gomock.Any(), rootID).Return(parent, nil),
			viewingRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, v *model.Viewing) error {
					assert.Equal(t, parent.PropertyID, v.PropertyID)
					assert.Equal(t, parent.LeadID, v.LeadID)
					assert.Equal(t, parent.AgentID, v.AgentID)
					if assert.NotNil(t, v.ParentViewingID) {
						assert.Equal(t, parent.ID, *v.ParentViewingID)
					}
					v.ID = uuid.New()
					return nil
				}),
		)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		got, err := svc.CreateFollowUp(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, rootID, service.FollowUpInput{
			ViewingDate: viewingDate,
			ViewingTime: "11:00",
		})

		assert.NoError(t, err)
		assert.False(t, got.IsRoot())
	})

	t.Run("explicit overrides replace the inherited fields", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		parent := root()
		otherProperty := uuid.New()
		otherLead := uuid.New()
		memberID := uuid.New()

		gomock.InOrder(
			viewingRepo.EXPECT().FindByID(gomock.Any(), rootID).Return(parent, nil),
			viewingRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, v *model.Viewing) error {
					assert.Equal(t, otherProperty, v.PropertyID)
					assert.Equal(t, otherLead, v.LeadID)
					assert.Equal(t, memberID, v.AgentID)
					if assert.NotNil(t, v.ParentViewingID) {
						assert.Equal(t, parent.ID, *v.ParentViewingID)
					}
					v.ID = uuid.New()
					return nil
				}),
		)

		leader := authz.Principal{ID: parent.AgentID, Role: model.RoleTeamLeader}
		svc := newViewingService(viewingRepo, &fakeTeams{members: []uuid.UUID{memberID}})
		_, err := svc.CreateFollowUp(context.Background(), leader, rootID, service.FollowUpInput{
			PropertyID:  otherProperty,
			LeadID:      otherLead,
			AgentID:     memberID,
			ViewingDate: viewingDate,
			ViewingTime: "16:00",
		})

		assert.NoError(t, err)
	})

	t.Run("a follow-up cannot parent another follow-up", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		parentOfParent := uuid.New()
		followUp := root()
		followUp.ParentViewingID = &parentOfParent

		viewingRepo.EXPECT().FindByID(gomock.Any(), rootID).Return(followUp, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateFollowUp(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, rootID, service.FollowUpInput{
			ViewingDate: viewingDate,
			ViewingTime: "11:00",
		})

		assert.ErrorIs(t, err, domain.ErrParentIsFollowUp)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("agent may not add a follow-up under another agent's root", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		parent := root()
		parent.AgentID = uuid.New()

		viewingRepo.EXPECT().FindByID(gomock.Any(), rootID).Return(parent, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.CreateFollowUp(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, rootID, service.FollowUpInput{
			ViewingDate: viewingDate,
			ViewingTime: "11:00",
		})

		assert.ErrorIs(t, err, domain.ErrOutsideScope)
	})
}

func TestViewingGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	viewingID := uuid.New()

	t.Run("root carries its follow-ups", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: agentID}
		subs := []model.Viewing{{ID: uuid.New(), ParentViewingID: &viewingID}}

		gomock.InOrder(
			viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil),
			viewingRepo.EXPECT().ListFollowUps(gomock.Any(), viewingID).Return(subs, nil),
		)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		got, err := svc.GetByID(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, viewingID)

		assert.NoError(t, err)
		assert.Len(t, got.SubViewings, 1)
	})

	t.Run("follow-up never carries children", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		parentID := uuid.New()
		viewing := &model.Viewing{ID: viewingID, AgentID: agentID, ParentViewingID: &parentID}

		viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		got, err := svc.GetByID(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, viewingID)

		assert.NoError(t, err)
		assert.Empty(t, got.SubViewings)
	})

	t.Run("viewing outside the caller's scope is forbidden", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: uuid.New()}

		viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.GetByID(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, viewingID)

		assert.ErrorIs(t, err, domain.ErrOutsideScope)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestViewingListRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)

	viewingRepo.EXPECT().
		ListRoots(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope authz.Scope, _ repository.ViewingFilter) ([]*model.Viewing, error) {
			assert.Equal(t, authz.ScopeOwnedBySelf, scope.Kind)
			assert.Equal(t, agentID, scope.PrincipalID)
			return []*model.Viewing{}, nil
		})

	svc := newViewingService(viewingRepo, &fakeTeams{})
	_, err := svc.ListRoots(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, repository.ViewingFilter{})

	assert.NoError(t, err)
}

func TestViewingUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	viewingID := uuid.New()

	t.Run("agent updates their own viewing", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: agentID, Status: model.ViewingScheduled}

		status := model.ViewingCompleted
		serious := true
		gomock.InOrder(
			viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil),
			viewingRepo.EXPECT().Update(gomock.Any(), viewing).Return(nil),
		)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		got, err := svc.Update(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, viewingID, service.UpdateViewingInput{
			Status:    &status,
			IsSerious: &serious,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ViewingCompleted, got.Status)
		assert.True(t, got.IsSerious)
	})

	t.Run("team leader updates a current member's viewing", func(t *testing.T) {
		leaderID := uuid.New()
		memberID := uuid.New()
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: memberID}

		notes := "lead asked for a second visit"
		gomock.InOrder(
			viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil),
			viewingRepo.EXPECT().Update(gomock.Any(), viewing).Return(nil),
		)

		svc := newViewingService(viewingRepo, &fakeTeams{members: []uuid.UUID{memberID}})
		_, err := svc.Update(context.Background(), authz.Principal{ID: leaderID, Role: model.RoleTeamLeader}, viewingID, service.UpdateViewingInput{
			Notes: &notes,
		})

		assert.NoError(t, err)
	})

	t.Run("team leader loses access once the member is removed", func(t *testing.T) {
		leaderID := uuid.New()
		formerMember := uuid.New()
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: formerMember}

		notes := "x"
		viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{members: nil})
		_, err := svc.Update(context.Background(), authz.Principal{ID: leaderID, Role: model.RoleTeamLeader}, viewingID, service.UpdateViewingInput{
			Notes: &notes,
		})

		assert.ErrorIs(t, err, domain.ErrOutsideScope)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
		viewing := &model.Viewing{ID: viewingID, AgentID: agentID}

		status := model.ViewingStatus("Ghosted")
		viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil)

		svc := newViewingService(viewingRepo, &fakeTeams{})
		_, err := svc.Update(context.Background(), authz.Principal{ID: agentID, Role: model.RoleAgent}, viewingID, service.UpdateViewingInput{
			Status: &status,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidViewingStatus)
	})
}

func TestViewingDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewingID := uuid.New()
	ownerID := uuid.New()

	t.Run("deletion roles may delete any viewing", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleAdmin, model.RoleOperationsManager, model.RoleOperations} {
			viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
			viewing := &model.Viewing{ID: viewingID, AgentID: ownerID}

			gomock.InOrder(
				viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil),
				viewingRepo.EXPECT().Delete(gomock.Any(), viewingID).Return(nil),
			)

			svc := newViewingService(viewingRepo, &fakeTeams{})
			err := svc.Delete(context.Background(), authz.Principal{ID: uuid.New(), Role: role}, viewingID)
			assert.NoError(t, err, "role %s", role)
		}
	})

	t.Run("ownership does not grant deletion", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleAgent, model.RoleTeamLeader, model.RoleHR, model.RoleAgentManager} {
			viewingRepo := mocks.NewMockViewingRepositoryIface(ctrl)
			viewing := &model.Viewing{ID: viewingID, AgentID: ownerID}

			viewingRepo.EXPECT().FindByID(gomock.Any(), viewingID).Return(viewing, nil)

			svc := newViewingService(viewingRepo, &fakeTeams{})
			// The principal owns the viewing; deletion is still refused.
			err := svc.Delete(context.Background(), authz.Principal{ID: ownerID, Role: role}, viewingID)
			assert.ErrorIs(t, err, domain.ErrActionNotPermitted, "role %s", role)
			assert.ErrorIs(t, err, domain.ErrForbidden, "role %s", role)
		}
	})
}
