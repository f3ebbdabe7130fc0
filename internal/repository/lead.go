// internal/repository/lead.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadFilter struct {
	AgentID *uuid.UUID
	Status  *model.LeadStatus
}

type LeadRepositoryIface interface {
	Create(ctx context.Context, lead *model.Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, scope authz.Scope, filter LeadFilter) ([]*model.Lead, error)
	Update(ctx context.Context, lead *model.Lead) error
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *model.Lead) error {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, scope authz.Scope, filter LeadFilter) ([]*model.Lead, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.AgentID != nil {
		q = q.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	q = scope.Apply(q, "agent_id")

	var leads []*model.Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *model.Lead) error {
	if err := r.db.WithContext(ctx).Save(lead).Error; err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	return nil
}
