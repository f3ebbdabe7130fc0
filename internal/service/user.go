// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/estateflow/crm/internal/auth"
	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	users       repository.UserRepositoryIface
	assignments repository.AssignmentRepositoryIface
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenManager
	gate        *authz.Gate
	validate    *validator.Validate
}

func NewUserService(
	users repository.UserRepositoryIface,
	assignments repository.AssignmentRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	gate *authz.Gate,
) *UserService {
	return &UserService{
		users:       users,
		assignments: assignments,
		hasher:      hasher,
		tokens:      tokens,
		gate:        gate,
		validate:    validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	verified, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &LoginOutput{User: user, Token: token}, nil
}

type CreateUserInput struct {
	Email     string     `json:"email" validate:"required,email"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name"`
	Password  string     `json:"password" validate:"required,min=8"`
	Role      model.Role `json:"role" validate:"required"`
}

func (s *UserService) Create(ctx context.Context, p authz.Principal, input CreateUserInput) (*model.User, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceUser, authz.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role, "created_by", p.ID)
	return user, nil
}

func (s *UserService) List(ctx context.Context, p authz.Principal) ([]*model.User, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceUser, authz.ActionList, uuid.Nil); err != nil {
		return nil, err
	}
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.User, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceUser, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

type UpdateUserInput struct {
	FirstName *string     `json:"first_name"`
	LastName  *string     `json:"last_name"`
	Role      *model.Role `json:"role"`
	IsActive  *bool       `json:"is_active"`
}

// Update applies an admin edit to a user. Role or account-status changes
// are privilege edits: the gate refuses them on the caller's own account,
// and a role change is refused while the ledger still references the user
// (an assigned agent, or a leader with active members).
func (s *UserService) Update(ctx context.Context, p authz.Principal, targetID uuid.UUID, input UpdateUserInput) (*model.User, error) {
	if err := s.gate.Check(ctx, p, authz.ResourceUser, authz.ActionUpdate, targetID); err != nil {
		return nil, err
	}
	if input.Role != nil || input.IsActive != nil {
		if err := s.gate.CheckPrivilegeEdit(p, targetID); err != nil {
			return nil, err
		}
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && *input.Role != user.Role {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *input.Role)
		}
		if user.IsAssigned {
			return nil, domain.ErrUserHasActiveAssignment
		}
		if user.Role == model.RoleTeamLeader {
			count, err := s.assignments.CountActiveByTeamLeader(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, domain.ErrTeamLeaderHasActiveMembers
			}
		}
		user.Role = *input.Role
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user updated", "user_id", user.ID, "updated_by", p.ID)
	return user, nil
}
