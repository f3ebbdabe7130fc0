// internal/service/property.go
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

type PropertyService struct {
	properties repository.PropertyRepositoryIface
	gate       *authz.Gate
	validate   *validator.Validate
}

func NewPropertyService(properties repository.PropertyRepositoryIface, gate *authz.Gate) *PropertyService {
	return &PropertyService{properties: properties, gate: gate, validate: validator.New()}
}

type CreatePropertyInput struct {
	AgentID  uuid.UUID            `json:"agent_id"`
	Title    string               `json:"title" validate:"required"`
	Address  string               `json:"address" validate:"required"`
	City     string               `json:"city"`
	Type     string               `json:"type"`
	Bedrooms int                  `json:"bedrooms" validate:"gte=0"`
	Price    float64              `json:"price" validate:"gte=0"`
	Status   model.PropertyStatus `json:"status"`
}

func (s *PropertyService) Create(ctx context.Context, p authz.Principal, input CreatePropertyInput) (*model.Property, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceProperty, authz.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	agentID := input.AgentID
	if agentID == uuid.Nil {
		agentID = p.ID
	}
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceProperty)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(agentID) {
		return nil, fmt.Errorf("agent %s: %w", agentID, domain.ErrOutsideScope)
	}

	status := input.Status
	if status == "" {
		status = model.PropertyAvailable
	}

	property := &model.Property{
		AgentID:  agentID,
		Title:    input.Title,
		Address:  input.Address,
		City:     input.City,
		Type:     input.Type,
		Bedrooms: input.Bedrooms,
		Price:    input.Price,
		Status:   status,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Property, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceProperty, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.properties.FindByID(ctx, id)
}

func (s *PropertyService) List(ctx context.Context, p authz.Principal, filter repository.PropertyFilter) ([]*model.Property, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceProperty, authz.ActionList, uuid.Nil); err != nil {
		return nil, err
	}
	scope, err := s.gate.Resolve(ctx, p, authz.ResourceProperty)
	if err != nil {
		return nil, err
	}
	return s.properties.List(ctx, scope, filter)
}

type UpdatePropertyInput struct {
	Title    *string               `json:"title"`
	Address  *string               `json:"address"`
	City     *string               `json:"city"`
	Type     *string               `json:"type"`
	Bedrooms *int                  `json:"bedrooms"`
	Price    *float64              `json:"price"`
	Status   *model.PropertyStatus `json:"status"`
}

func (s *PropertyService) Update(ctx context.Context, p authz.Principal, id uuid.UUID, input UpdatePropertyInput) (*model.Property, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceProperty, authz.ActionUpdate, id); err != nil {
		return nil, err
	}
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.Type != nil {
		property.Type = *input.Type
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Status != nil {
		property.Status = *input.Status
	}

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}
