package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewUserRepository struct{ mock.Mock }

func (m *MockReviewUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockReviewUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockReviewUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockReviewUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockReviewUserUoW struct{ mock.Mock }

func (m *MockReviewUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockReviewUserUoWFactory struct{ mock.Mock }

func (m *MockReviewUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func makePendingUser(t *testing.T, userID kernel.UUID) *user.User {
	t.Helper()

	u, err := user.NewUser(userID, "Alex Chen", "alex@example.com", "", "bcrypt-hash",
		[]user.Role{user.RoleCustomer})
	require.NoError(t, err)
	return u
}

func TestReviewAccountCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	account := makePendingUser(t, userID)

	cmd, err := commands.NewReviewAccountCommand(userID, true)
	require.NoError(t, err)

	userRepo := new(MockReviewUserRepository)
	uow := new(MockReviewUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewAccountCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, user.Approved, result.MustValue())
	assert.Equal(t, user.Approved, account.State())

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewAccountCommandHandler_Handle_Decline(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	account := makePendingUser(t, userID)

	cmd, err := commands.NewReviewAccountCommand(userID, false)
	require.NoError(t, err)

	userRepo := new(MockReviewUserRepository)
	uow := new(MockReviewUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewAccountCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, user.Declined, result.MustValue())
}

func TestReviewAccountCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	account := makePendingUser(t, userID)
	require.NoError(t, account.Approve())

	cmd, err := commands.NewReviewAccountCommand(userID, false)
	require.NoError(t, err)

	userRepo := new(MockReviewUserRepository)
	uow := new(MockReviewUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewAccountCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.False(t, result.IsSuccess())
	assert.Contains(t, result.Errors()[0], "invalid transition")
	assert.Equal(t, user.Approved, account.State())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReviewAccountCommandHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	cmd, err := commands.NewReviewAccountCommand(userID, true)
	require.NoError(t, err)

	userRepo := new(MockReviewUserRepository)
	uow := new(MockReviewUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("user", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewAccountCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.False(t, result.IsSuccess())
	assert.Contains(t, result.Errors()[0], "object not found")
}
