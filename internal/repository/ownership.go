// internal/repository/ownership.go
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

// OwnershipStore answers the gate's "who owns this row" question with a
// single-column read, one query per check. It is deliberately schema-thin:
// every owned resource keeps its owning agent in an agent_id column.
type OwnershipStore struct {
	db *gorm.DB
}

func NewOwnershipStore(db *gorm.DB) *OwnershipStore {
	return &OwnershipStore{db: db}
}

func (s *OwnershipStore) OwnerOf(ctx context.Context, resource authz.Resource, id uuid.UUID) (uuid.UUID, error) {
	switch resource {
	case authz.ResourceLead:
		return s.ownerFromTable(ctx, &model.Lead{}, id, domain.ErrLeadNotFound)
	case authz.ResourceProperty:
		return s.ownerFromTable(ctx, &model.Property{}, id, domain.ErrPropertyNotFound)
	case authz.ResourceViewing:
		return s.ownerFromTable(ctx, &model.Viewing{}, id, domain.ErrViewingNotFound)
	case authz.ResourceUser:
		// A user row is owned by itself; existence is the only fact needed.
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return uuid.Nil, fmt.Errorf("checking user: %w", err)
		}
		if count == 0 {
			return uuid.Nil, domain.ErrUserNotFound
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, resource)
	}
}

func (s *OwnershipStore) ownerFromTable(ctx context.Context, table any, id uuid.UUID, notFound error) (uuid.UUID, error) {
	var row struct {
		AgentID uuid.UUID
	}
	err := s.db.WithContext(ctx).Model(table).
		Select("agent_id").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, notFound
		}
		return uuid.Nil, fmt.Errorf("loading ownership: %w", err)
	}
	return row.AgentID, nil
}
