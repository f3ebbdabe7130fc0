// internal/repository/viewing.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// followUpOrder keeps a root's update trail newest-first.
const followUpOrder = "viewing_date DESC, viewing_time DESC"

// viewingBefore is the listing comparator: serious viewings surface first,
// then most recent by date and time. ViewingTime is stored as "HH:MM", so
// its string order is chronological.
func viewingBefore(a, b *model.Viewing) bool {
	if a.IsSerious != b.IsSerious {
		return a.IsSerious
	}
	if !a.ViewingDate.Equal(b.ViewingDate) {
		return a.ViewingDate.After(b.ViewingDate)
	}
	return a.ViewingTime > b.ViewingTime
}

type ViewingFilter struct {
	PropertyID *uuid.UUID
	LeadID     *uuid.UUID
	AgentID    *uuid.UUID
	Status     *model.ViewingStatus
	IsSerious  *bool
}

type ViewingRepositoryIface interface {
	Create(ctx context.Context, viewing *model.Viewing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Viewing, error)
	ListRoots(ctx context.Context, scope authz.Scope, filter ViewingFilter) ([]*model.Viewing, error)
	ListFollowUps(ctx context.Context, parentID uuid.UUID) ([]model.Viewing, error)
	Update(ctx context.Context, viewing *model.Viewing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ViewingRepository struct {
	db *gorm.DB
}

func NewViewingRepository(db *gorm.DB) *ViewingRepository {
	return &ViewingRepository{db: db}
}

// Create inserts a viewing. For roots the partial unique index
// uq_viewings_root_lead_property is the duplicate guard: the existence
// check and the insert are one storage-level operation, so of N concurrent
// creates for the same (lead, property) exactly one wins and the rest map
// to ErrDuplicateRootViewing. Follow-ups are outside the index predicate
// and never collide.
func (r *ViewingRepository) Create(ctx context.Context, viewing *model.Viewing) error {
	if err := r.db.WithContext(ctx).Create(viewing).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRootViewing
		}
		return fmt.Errorf("inserting viewing: %w", err)
	}
	return nil
}

func (r *ViewingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Viewing, error) {
	var viewing model.Viewing
	if err := r.db.WithContext(ctx).First(&viewing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrViewingNotFound
		}
		return nil, fmt.Errorf("finding viewing: %w", err)
	}
	return &viewing, nil
}

func (r *ViewingRepository) ListRoots(ctx context.Context, scope authz.Scope, filter ViewingFilter) ([]*model.Viewing, error) {
	q := r.db.WithContext(ctx).
		Where("parent_viewing_id IS NULL").
		Preload("SubViewings", func(db *gorm.DB) *gorm.DB {
			return db.Order(followUpOrder)
		})

	if filter.PropertyID != nil {
		q = q.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.LeadID != nil {
		q = q.Where("lead_id = ?", *filter.LeadID)
	}
	if filter.AgentID != nil {
		q = q.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.IsSerious != nil {
		q = q.Where("is_serious = ?", *filter.IsSerious)
	}

	// Scope goes on last and only ever ANDs, so caller filters cannot
	// widen what the principal is allowed to see.
	q = scope.Apply(q, "agent_id")

	var viewings []*model.Viewing
	if err := q.Find(&viewings).Error; err != nil {
		return nil, fmt.Errorf("listing viewings: %w", err)
	}
	sort.SliceStable(viewings, func(i, j int) bool {
		return viewingBefore(viewings[i], viewings[j])
	})
	return viewings, nil
}

func (r *ViewingRepository) ListFollowUps(ctx context.Context, parentID uuid.UUID) ([]model.Viewing, error) {
	var viewings []model.Viewing
	err := r.db.WithContext(ctx).
		Where("parent_viewing_id = ?", parentID).
		Order(followUpOrder).
		Find(&viewings).Error
	if err != nil {
		return nil, fmt.Errorf("listing follow-ups: %w", err)
	}
	return viewings, nil
}

func (r *ViewingRepository) Update(ctx context.Context, viewing *model.Viewing) error {
	if err := r.db.WithContext(ctx).Save(viewing).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRootViewing
		}
		return fmt.Errorf("updating viewing: %w", err)
	}
	return nil
}

// Delete removes a viewing and, for roots, its follow-ups in the same
// transaction so no orphaned follow-up survives.
func (r *ViewingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_viewing_id = ?", id).Delete(&model.Viewing{}).Error; err != nil {
			return fmt.Errorf("deleting follow-ups: %w", err)
		}
		result := tx.Delete(&model.Viewing{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting viewing: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrViewingNotFound
		}
		return nil
	})
}
