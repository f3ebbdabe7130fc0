// internal/repository/property.go
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

type PropertyFilter struct {
	AgentID *uuid.UUID
	City    *string
	Status  *model.PropertyStatus
}

type PropertyRepositoryIface interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context, scope authz.Scope, filter PropertyFilter) ([]*model.Property, error)
	Update(ctx context.Context, property *model.Property) error
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return fmt.Errorf("inserting property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("finding property: %w", err)
	}
	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context, scope authz.Scope, filter PropertyFilter) ([]*model.Property, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.AgentID != nil {
		q = q.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.City != nil {
		q = q.Where("city = ?", *filter.City)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	q = scope.Apply(q, "agent_id")

	var properties []*model.Property
	if err := q.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *model.Property) error {
	if err := r.db.WithContext(ctx).Save(property).Error; err != nil {
		return fmt.Errorf("updating property: %w", err)
	}
	return nil
}
