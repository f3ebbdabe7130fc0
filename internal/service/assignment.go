// internal/service/assignment.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssignmentService is the ledger's public face: it validates input, hands
// the transactional work to the repository and surfaces ledger errors
// unchanged. All invariant enforcement happens inside the repository's
// transactions; nothing here reads ledger state and writes it back.
type AssignmentService struct {
	assignments repository.AssignmentRepositoryIface
	users       repository.UserRepositoryIface
	validate    *validator.Validate
}

func NewAssignmentService(
	assignments repository.AssignmentRepositoryIface,
	users repository.UserRepositoryIface,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		users:       users,
		validate:    validator.New(),
	}
}

type AssignInput struct {
	TeamLeaderID uuid.UUID `json:"team_leader_id" validate:"required"`
	AgentID      uuid.UUID `json:"agent_id" validate:"required"`
}

func (s *AssignmentService) Assign(ctx context.Context, input AssignInput, assignedBy uuid.UUID) (*model.TeamAssignment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	row, err := s.assignments.Assign(ctx, input.TeamLeaderID, input.AgentID, assignedBy)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "agent assigned",
		"agent_id", input.AgentID,
		"team_leader_id", input.TeamLeaderID,
		"assigned_by", assignedBy)
	return row, nil
}

type RemoveInput struct {
	TeamLeaderID uuid.UUID `json:"team_leader_id" validate:"required"`
	AgentID      uuid.UUID `json:"agent_id" validate:"required"`
}

func (s *AssignmentService) Remove(ctx context.Context, input RemoveInput) (*model.TeamAssignment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	row, err := s.assignments.Remove(ctx, input.TeamLeaderID, input.AgentID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "agent removed from team",
		"agent_id", input.AgentID,
		"team_leader_id", input.TeamLeaderID)
	return row, nil
}

type TransferInput struct {
	CurrentTeamLeaderID uuid.UUID `json:"current_team_leader_id" validate:"required"`
	AgentID             uuid.UUID `json:"agent_id" validate:"required"`
	NewTeamLeaderID     uuid.UUID `json:"new_team_leader_id" validate:"required"`
}

func (s *AssignmentService) Transfer(ctx context.Context, input TransferInput, transferredBy uuid.UUID) (*model.TeamAssignment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if input.NewTeamLeaderID == input.CurrentTeamLeaderID {
		return nil, fmt.Errorf("%w: agent is already assigned to that team leader", domain.ErrInvalidInput)
	}

	row, err := s.assignments.Transfer(ctx, input.CurrentTeamLeaderID, input.AgentID, input.NewTeamLeaderID, transferredBy)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "agent transferred",
		"agent_id", input.AgentID,
		"from_team_leader_id", input.CurrentTeamLeaderID,
		"to_team_leader_id", input.NewTeamLeaderID,
		"transferred_by", transferredBy)
	return row, nil
}

// CurrentTeamLeader answers from the denormalized cache on the user row.
// The cache is written only inside ledger transactions, so this is an O(1)
// read that cannot diverge from the ledger.
func (s *AssignmentService) CurrentTeamLeader(ctx context.Context, agentID uuid.UUID) (*model.User, error) {
	agent, err := s.users.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if !agent.IsAssigned || agent.AssignedTo == nil {
		return nil, nil
	}
	return s.users.FindByID(ctx, *agent.AssignedTo)
}

func (s *AssignmentService) TeamMembers(ctx context.Context, teamLeaderID uuid.UUID) ([]uuid.UUID, error) {
	leader, err := s.users.FindByID(ctx, teamLeaderID)
	if err != nil {
		return nil, err
	}
	if leader.Role != model.RoleTeamLeader {
		return nil, domain.ErrNotATeamLeader
	}
	return s.assignments.TeamMemberIDs(ctx, teamLeaderID)
}

func (s *AssignmentService) History(ctx context.Context, agentID uuid.UUID) ([]model.TeamAssignment, error) {
	if _, err := s.users.FindByID(ctx, agentID); err != nil {
		return nil, err
	}
	return s.assignments.HistoryByAgent(ctx, agentID)
}
