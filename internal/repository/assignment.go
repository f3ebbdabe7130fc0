// internal/repository/assignment.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepositoryIface interface {
	Assign(ctx context.Context, teamLeaderID, agentID, assignedBy uuid.UUID) (*model.TeamAssignment, error)
	Remove(ctx context.Context, teamLeaderID, agentID uuid.UUID) (*model.TeamAssignment, error)
	Transfer(ctx context.Context, currentTeamLeaderID, agentID, newTeamLeaderID, transferredBy uuid.UUID) (*model.TeamAssignment, error)
	FindActiveByAgent(ctx context.Context, agentID uuid.UUID) (*model.TeamAssignment, error)
	TeamMemberIDs(ctx context.Context, teamLeaderID uuid.UUID) ([]uuid.UUID, error)
	CountActiveByTeamLeader(ctx context.Context, teamLeaderID uuid.UUID) (int64, error)
	HistoryByAgent(ctx context.Context, agentID uuid.UUID) ([]model.TeamAssignment, error)
}

// AssignmentRepository owns the team-assignment ledger. The ledger is
// append-only: assign and transfer insert rows, remove and transfer
// deactivate them, nothing is ever deleted or retargeted. The
// is_assigned/assigned_to cache on users is written only inside these
// transactions so it cannot drift from the ledger.
//
// The single-active-assignment invariant is held twice: by the serializable
// transactions here and, as the last line, by the partial unique index
// uq_team_assignments_active_agent. Concurrent writers for the same agent
// serialize; exactly one commits.
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

var serializableTx = sql.TxOptions{Isolation: sql.LevelSerializable}

func (r *AssignmentRepository) Assign(ctx context.Context, teamLeaderID, agentID, assignedBy uuid.UUID) (*model.TeamAssignment, error) {
	var created *model.TeamAssignment
	err := withSerializationRetry(func() error {
		created = nil
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := verifyPairRoles(tx, teamLeaderID, agentID); err != nil {
				return err
			}

			var active int64
			if err := tx.Model(&model.TeamAssignment{}).
				Where("agent_id = ? AND is_active", agentID).
				Count(&active).Error; err != nil {
				return fmt.Errorf("checking active assignment: %w", err)
			}
			if active > 0 {
				return domain.ErrAgentAlreadyAssigned
			}

			row := &model.TeamAssignment{
				TeamLeaderID: teamLeaderID,
				AgentID:      agentID,
				AssignedBy:   assignedBy,
				IsActive:     true,
				AssignedAt:   time.Now().UTC(),
			}
			if err := tx.Create(row).Error; err != nil {
				if isUniqueViolation(err) {
					return domain.ErrAgentAlreadyAssigned
				}
				return fmt.Errorf("inserting assignment: %w", err)
			}

			if err := setAssignmentCache(tx, agentID, &teamLeaderID); err != nil {
				return err
			}
			created = row
			return nil
		}, &serializableTx)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AssignmentRepository) Remove(ctx context.Context, teamLeaderID, agentID uuid.UUID) (*model.TeamAssignment, error) {
	var removed *model.TeamAssignment
	err := withSerializationRetry(func() error {
		removed = nil
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var row model.TeamAssignment
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("team_leader_id = ? AND agent_id = ? AND is_active", teamLeaderID, agentID).
				First(&row).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Repeat calls land here too, so retrying a remove is
					// idempotent: always the same not-found outcome.
					return domain.ErrAssignmentNotFound
				}
				return fmt.Errorf("locking active assignment: %w", err)
			}

			if err := tx.Model(&row).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("deactivating assignment: %w", err)
			}
			if err := setAssignmentCache(tx, agentID, nil); err != nil {
				return err
			}
			row.IsActive = false
			removed = &row
			return nil
		}, &serializableTx)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Transfer swaps the agent's active assignment to a new leader in one
// transaction. No concurrent reader ever observes the agent unassigned
// mid-transfer, and of two racing transfers for the same agent exactly one
// commits; the loser fails against the now-stale source leader.
func (r *AssignmentRepository) Transfer(ctx context.Context, currentTeamLeaderID, agentID, newTeamLeaderID, transferredBy uuid.UUID) (*model.TeamAssignment, error) {
	var created *model.TeamAssignment
	err := withSerializationRetry(func() error {
		created = nil
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var current model.TeamAssignment
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("agent_id = ? AND is_active", agentID).
				First(&current).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrAssignmentNotFound
				}
				return fmt.Errorf("locking active assignment: %w", err)
			}
			if current.TeamLeaderID != currentTeamLeaderID {
				return domain.ErrAssignmentSourceMismatch
			}

			newLeader, err := lockUser(tx, newTeamLeaderID)
			if err != nil {
				return err
			}
			if newLeader.Role != model.RoleTeamLeader {
				return domain.ErrNotATeamLeader
			}

			if err := tx.Model(&current).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("deactivating assignment: %w", err)
			}
			row := &model.TeamAssignment{
				TeamLeaderID: newTeamLeaderID,
				AgentID:      agentID,
				AssignedBy:   transferredBy,
				IsActive:     true,
				AssignedAt:   time.Now().UTC(),
			}
			if err := tx.Create(row).Error; err != nil {
				if isUniqueViolation(err) {
					return domain.ErrAgentAlreadyAssigned
				}
				return fmt.Errorf("inserting assignment: %w", err)
			}
			if err := setAssignmentCache(tx, agentID, &newTeamLeaderID); err != nil {
				return err
			}
			created = row
			return nil
		}, &serializableTx)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AssignmentRepository) FindActiveByAgent(ctx context.Context, agentID uuid.UUID) (*model.TeamAssignment, error) {
	var row model.TeamAssignment
	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND is_active", agentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("finding active assignment: %w", err)
	}
	return &row, nil
}

// TeamMemberIDs recomputes live membership on every call; nothing is cached
// here so scope resolution reflects removals immediately.
func (r *AssignmentRepository) TeamMemberIDs(ctx context.Context, teamLeaderID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.TeamAssignment{}).
		Where("team_leader_id = ? AND is_active", teamLeaderID).
		Pluck("agent_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	return ids, nil
}

func (r *AssignmentRepository) CountActiveByTeamLeader(ctx context.Context, teamLeaderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TeamAssignment{}).
		Where("team_leader_id = ? AND is_active", teamLeaderID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting team members: %w", err)
	}
	return count, nil
}

func (r *AssignmentRepository) HistoryByAgent(ctx context.Context, agentID uuid.UUID) ([]model.TeamAssignment, error) {
	var rows []model.TeamAssignment
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("assigned_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading assignment history: %w", err)
	}
	return rows, nil
}

// verifyPairRoles locks both users (in id order, to keep lock acquisition
// deterministic) and checks they hold the roles the ledger requires.
func verifyPairRoles(tx *gorm.DB, teamLeaderID, agentID uuid.UUID) error {
	first, second := teamLeaderID, agentID
	if second.String() < first.String() {
		first, second = second, first
	}
	users := map[uuid.UUID]*model.User{}
	for _, id := range []uuid.UUID{first, second} {
		u, err := lockUser(tx, id)
		if err != nil {
			return err
		}
		users[id] = u
	}
	if users[teamLeaderID].Role != model.RoleTeamLeader {
		return domain.ErrNotATeamLeader
	}
	if users[agentID].Role != model.RoleAgent {
		return domain.ErrNotAnAgent
	}
	return nil
}

func lockUser(tx *gorm.DB, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("locking user: %w", err)
	}
	return &user, nil
}

func setAssignmentCache(tx *gorm.DB, agentID uuid.UUID, leaderID *uuid.UUID) error {
	updates := map[string]any{
		"is_assigned": false,
		"assigned_to": nil,
	}
	if leaderID != nil {
		updates["is_assigned"] = true
		updates["assigned_to"] = *leaderID
	}
	if err := tx.Model(&model.User{}).Where("id = ?", agentID).Updates(updates).Error; err != nil {
		return fmt.Errorf("updating assignment cache: %w", err)
	}
	return nil
}
