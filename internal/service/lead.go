// internal/service/lead.go
package service

import (
	"context"
	"fmt"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LeadService struct {
	leads    repository.LeadRepositoryIface
	gate     *authz.Gate
	validate *validator.Validate
}

func NewLeadService(leads repository.LeadRepositoryIface, gate *authz.Gate) *LeadService {
	return &LeadService{leads: leads, gate: gate, validate: validator.New()}
}

type CreateLeadInput struct {
	AgentID   uuid.UUID        `json:"agent_id"`
	FirstName string           `json:"first_name" validate:"required"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email" validate:"omitempty,email"`
	Phone     string           `json:"phone"`
	Source    string           `json:"source"`
	Status    model.LeadStatus `json:"status"`
	Notes     string           `json:"notes"`
}

func (s *LeadService) Create(ctx context.Context, p authz.Principal, input CreateLeadInput) (*model.Lead, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceLead, authz.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	agentID := input.AgentID
	if agentID == uuid.Nil {
		agentID = p.ID
	}
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceLead)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(agentID) {
		return nil, fmt.Errorf("agent %s: %w", agentID, domain.ErrOutsideScope)
	}

	status := input.Status
	if status == "" {
		status = model.LeadNew
	}

	lead := &model.Lead{
		AgentID:   agentID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    input.Source,
		Status:    status,
		Notes:     input.Notes,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) GetByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Lead, error) {
	// Target-level check reloads ownership, so a stale client-side list
	// never grants a read the fresh scope would deny.
	if err := s.gate.Check(ctx, p, authz.ResourceLead, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.leads.FindByID(ctx, id)
}

func (s *LeadService) List(ctx context.Context, p authz.Principal, filter repository.LeadFilter) ([]*model.Lead, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceLead, authz.ActionList, uuid.Nil); err != nil {
		return nil, err
	}
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceLead)
	if err != nil {
		return nil, err
	}
	return s.leads.List(ctx, scope, filter)
}

type UpdateLeadInput struct {
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Email     *string           `json:"email"`
	Phone     *string           `json:"phone"`
	Status    *model.LeadStatus `json:"status"`
	Notes     *string           `json:"notes"`
}

func (s *LeadService) Update(ctx context.Context, p authz.Principal, id uuid.UUID, input UpdateLeadInput) (*model.Lead, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceLead, authz.ActionUpdate, id); err != nil {
		return nil, err
	}
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		lead.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		lead.LastName = *input.LastName
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
