package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/estateflow/crm/internal/auth"
	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/domain"
	"github.com/estateflow/crm/internal/mocks"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/estateflow/crm/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(users repository.UserRepositoryIface, assignments repository.AssignmentRepositoryIface) *service.UserService {
	gate := authz.NewGate(authz.NewResolver(&fakeTeams{}), &fakeOwners{})
	return service.NewUserService(
		users,
		assignments,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		gate,
	)
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "agent@example.com",
		PasswordHash: hash,
		Role:         model.RoleAgent,
		IsActive:     true,
	}

	t.Run("successful login returns a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(userRepo, assignRepo)
		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same as a wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "correct_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		disabled := *user
		disabled.IsActive = false
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(&disabled, nil)

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})
}

func TestUserCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hr := authz.Principal{ID: uuid.New(), Role: model.RoleHR}

	input := service.CreateUserInput{
		Email:     "new.agent@example.com",
		FirstName: "Nadia",
		Password:  "long-enough-password",
		Role:      model.RoleAgent,
	}

	t.Run("hr creates an agent", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, input.Email, u.Email)
				assert.Equal(t, model.RoleAgent, u.Role)
				assert.True(t, u.IsActive)
				assert.NotEmpty(t, u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})

		svc := newUserService(userRepo, assignRepo)
		got, err := svc.Create(context.Background(), hr, input)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("non-admin roles may not create users", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Create(context.Background(), authz.Principal{ID: uuid.New(), Role: model.RoleTeamLeader}, input)

		assert.ErrorIs(t, err, domain.ErrActionNotPermitted)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		bad := input
		bad.Role = "superuser"

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Create(context.Background(), hr, bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate email surfaces a conflict", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailAlreadyExists)

		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Create(context.Background(), hr, input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestUserUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := authz.Principal{ID: uuid.New(), Role: model.RoleAdmin}

	t.Run("no admin may change their own role or status", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		active := false
		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Update(context.Background(), admin, admin.ID, service.UpdateUserInput{
			IsActive: &active,
		})

		assert.ErrorIs(t, err, domain.ErrSelfPrivilegeEdit)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("editing own name is not a privilege edit", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		self := &model.User{ID: admin.ID, Role: model.RoleAdmin, IsActive: true}
		name := "Alex"
		gomock.InOrder(
			userRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(self, nil),
			userRepo.EXPECT().Update(gomock.Any(), self).Return(nil),
		)

		svc := newUserService(userRepo, assignRepo)
		got, err := svc.Update(context.Background(), admin, admin.ID, service.UpdateUserInput{
			FirstName: &name,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Alex", got.FirstName)
	})

	t.Run("assigned agent cannot change role", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		leaderID := uuid.New()
		agent := &model.User{ID: uuid.New(), Role: model.RoleAgent, IsActive: true, IsAssigned: true, AssignedTo: &leaderID}
		userRepo.EXPECT().FindByID(gomock.Any(), agent.ID).Return(agent, nil)

		newRole := model.RoleTeamLeader
		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Update(context.Background(), admin, agent.ID, service.UpdateUserInput{
			Role: &newRole,
		})

		assert.ErrorIs(t, err, domain.ErrUserHasActiveAssignment)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("leader with active members cannot change role", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		leader := &model.User{ID: uuid.New(), Role: model.RoleTeamLeader, IsActive: true}
		gomock.InOrder(
			userRepo.EXPECT().FindByID(gomock.Any(), leader.ID).Return(leader, nil),
			assignRepo.EXPECT().CountActiveByTeamLeader(gomock.Any(), leader.ID).Return(int64(3), nil),
		)

		newRole := model.RoleAgent
		svc := newUserService(userRepo, assignRepo)
		_, err := svc.Update(context.Background(), admin, leader.ID, service.UpdateUserInput{
			Role: &newRole,
		})

		assert.ErrorIs(t, err, domain.ErrTeamLeaderHasActiveMembers)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unreferenced user changes role", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		agent := &model.User{ID: uuid.New(), Role: model.RoleAgent, IsActive: true}
		gomock.InOrder(
			userRepo.EXPECT().FindByID(gomock.Any(), agent.ID).Return(agent, nil),
			userRepo.EXPECT().Update(gomock.Any(), agent).Return(nil),
		)

		newRole := model.RoleTeamLeader
		svc := newUserService(userRepo, assignRepo)
		got, err := svc.Update(context.Background(), admin, agent.ID, service.UpdateUserInput{
			Role: &newRole,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleTeamLeader, got.Role)
	})
}
