// internal/service/viewing.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ViewingService manages the two-level viewing hierarchy: one root per
// (lead, property) pair plus its follow-ups. Roots are guarded against
// duplicates at the storage layer; follow-ups are exempt and structurally
// capped at depth two because a follow-up is never accepted as a parent.
type ViewingService struct {
	viewings repository.ViewingRepositoryIface
	gate     *authz.Gate
	teams    authz.TeamDirectory
	validate *validator.Validate
}

func NewViewingService(
	viewings repository.ViewingRepositoryIface,
	gate *authz.Gate,
	teams authz.TeamDirectory,
) *ViewingService {
	return &ViewingService{
		viewings: viewings,
		gate:     gate,
		teams:    teams,
		validate: validator.New(),
	}
}

type CreateViewingInput struct {
	PropertyID  uuid.UUID           `json:"property_id" validate:"required"`
	LeadID      uuid.UUID           `json:"lead_id" validate:"required"`
	AgentID     uuid.UUID           `json:"agent_id"`
	ViewingDate time.Time           `json:"viewing_date" validate:"required"`
	ViewingTime string              `json:"viewing_time" validate:"required"`
	Status      model.ViewingStatus `json:"status"`
	IsSerious   bool                `json:"is_serious"`
	Notes       string              `json:"notes"`
}

// CreateRoot records the primary viewing for a (lead, property) pair. The
// duplicate check is the partial unique index, not a read-then-write, so
// concurrent identical creates resolve to exactly one winner.
func (s *ViewingService) CreateRoot(ctx context.Context, p authz.Principal, input CreateViewingInput) (*model.Viewing, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceViewing, authz.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	agentID := input.AgentID
	if agentID == uuid.Nil {
		agentID = p.ID
	}
	if err := s.checkAgentInScope(ctx, p, agentID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.ViewingScheduled
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidViewingStatus
	}

	viewing := &model.Viewing{
		PropertyID:  input.PropertyID,
		LeadID:      input.LeadID,
		AgentID:     agentID,
		ViewingDate: input.ViewingDate,
		ViewingTime: input.ViewingTime,
		Status:      status,
		IsSerious:   input.IsSerious,
		Notes:       input.Notes,
	}
	if err := s.viewings.Create(ctx, viewing); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "root viewing created",
		"viewing_id", viewing.ID,
		"lead_id", viewing.LeadID,
		"property_id", viewing.PropertyID,
		"agent_id", viewing.AgentID)
	return viewing, nil
}

type FollowUpInput struct {
	PropertyID  uuid.UUID           `json:"property_id"`
	LeadID      uuid.UUID           `json:"lead_id"`
	AgentID     uuid.UUID           `json:"agent_id"`
	ViewingDate time.Time           `json:"viewing_date" validate:"required"`
	ViewingTime string              `json:"viewing_time" validate:"required"`
	Status      model.ViewingStatus `json:"status"`
	IsSerious   bool                `json:"is_serious"`
	Notes       string              `json:"notes"`
}

// CreateFollowUp records a subsequent visit under an existing root. The
// parent must be a root: a follow-up parent is rejected as not-found, which
// keeps the hierarchy depth at two by construction. Property, lead and
// agent are inherited from the parent unless overridden.
func (s *ViewingService) CreateFollowUp(ctx context.Context, p authz.Principal, parentID uuid.UUID, input FollowUpInput) (*model.Viewing, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceViewing, authz.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	parent, err := s.viewings.FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if !parent.IsRoot() {
		return nil, domain.ErrParentIsFollowUp
	}

	// Adding a follow-up is semantically an update of the root's record.
	if err := s.AuthorizeMutation(ctx, p, parent, authz.ActionUpdate); err != nil {
		return nil, err
	}

	propertyID := parent.PropertyID
	if input.PropertyID != uuid.Nil {
		propertyID = input.PropertyID
	}
	leadID := parent.LeadID
	if input.LeadID != uuid.Nil {
		leadID = input.LeadID
	}
	agentID := parent.AgentID
	if input.AgentID != uuid.Nil {
		agentID = input.AgentID
		if err := s.checkAgentInScope(ctx, p, agentID); err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = model.ViewingScheduled
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidViewingStatus
	}

	viewing := &model.Viewing{
		PropertyID:      propertyID,
		LeadID:          leadID,
		AgentID:         agentID,
		ViewingDate:     input.ViewingDate,
		ViewingTime:     input.ViewingTime,
		Status:          status,
		IsSerious:       input.IsSerious,
		Notes:           input.Notes,
		ParentViewingID: &parent.ID,
	}
	if err := s.viewings.Create(ctx, viewing); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "follow-up viewing created",
		"viewing_id", viewing.ID,
		"parent_viewing_id", parent.ID,
		"agent_id", viewing.AgentID)
	return viewing, nil
}

// GetByID returns a viewing inside the principal's scope. Follow-ups are
// attached only when the record is a root; a follow-up never carries
// children in a response.
func (s *ViewingService) GetByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Viewing, error) {
	viewing, err := s.viewings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scope, err := s.gate.Resolve(ctx, p, authz.ResourceViewing)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(viewing.AgentID) {
		return nil, domain.ErrOutsideScope
	}

	if viewing.IsRoot() {
		subs, err := s.viewings.ListFollowUps(ctx, viewing.ID)
		if err != nil {
			return nil, err
		}
		viewing.SubViewings = subs
	}
	return viewing, nil
}

// ListRoots returns the principal's visible root viewings, serious ones
// first then newest, each carrying its follow-ups.
func (s *ViewingService) ListRoots(ctx context.Context, p authz.Principal, filter repository.ViewingFilter) ([]*model.Viewing, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceViewing, authz.ActionList, uuid.Nil); err != nil {
		return nil, err
	}
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceViewing)
	if err != nil {
		return nil, err
	}
	return s.viewings.ListRoots(ctx, scope, filter)
}

type UpdateViewingInput struct {
	ViewingDate *time.Time           `json:"viewing_date"`
	ViewingTime *string              `json:"viewing_time"`
	Status      *model.ViewingStatus `json:"status"`
	IsSerious   *bool                `json:"is_serious"`
	Notes       *string              `json:"notes"`
}

func (s *ViewingService) Update(ctx context.Context, p authz.Principal, id uuid.UUID, input UpdateViewingInput) (*model.Viewing, error) {
	viewing, err := s.viewings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, p, viewing, authz.ActionUpdate); err != nil {
		return nil, err
	}

	if input.ViewingDate != nil {
		viewing.ViewingDate = *input.ViewingDate
	}
	if input.ViewingTime != nil {
		viewing.ViewingTime = *input.ViewingTime
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidViewingStatus
		}
		viewing.Status = *input.Status
	}
	if input.IsSerious != nil {
		viewing.IsSerious = *input.IsSerious
	}
	if input.Notes != nil {
		viewing.Notes = *input.Notes
	}

	if err := s.viewings.Update(ctx, viewing); err != nil {
		return nil, err
	}
	return viewing, nil
}

func (s *ViewingService) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	viewing, err := s.viewings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, p, viewing, authz.ActionDelete); err != nil {
		return err
	}
	if err := s.viewings.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "viewing deleted", "viewing_id", id, "deleted_by", p.ID)
	return nil
}

// AuthorizeMutation checks a concrete viewing against the principal, always
// from fresh team state: an agent may touch only their own viewings, a team
// leader their own plus current members', management roles any. Deletion is
// reserved for admin/operations roles regardless of ownership.
func (s *ViewingService) AuthorizeMutation(ctx context.Context, p authz.Principal, viewing *model.Viewing, action authz.Action) error {
	if action == authz.ActionDelete {
		if !p.Role.CanDeleteViewings() {
			return fmt.Errorf("viewing deletion: %w", domain.ErrActionNotPermitted)
		}
		return nil
	}

	switch p.Role {
	case model.RoleAgent:
		if viewing.AgentID != p.ID {
			return domain.ErrOutsideScope
		}
	case model.RoleTeamLeader:
		if viewing.AgentID == p.ID {
			return nil
		}
		members, err := s.teams.TeamMemberIDs(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("resolving team membership: %w", err)
		}
		for _, id := range members {
			if id == viewing.AgentID {
				return nil
			}
		}
		return domain.ErrOutsideScope
	}
	return nil
}

func (s *ViewingService) checkAgentInScope(ctx context.Context, p authz.Principal, agentID uuid.UUID) error {
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceViewing)
	if err != nil {
		return err
	}
	if !scope.Contains(agentID) {
		return fmt.Errorf("agent %s: %w", agentID, domain.ErrOutsideScope)
	}
	return nil
}
