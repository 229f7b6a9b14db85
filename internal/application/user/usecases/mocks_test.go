package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"triagedesk/internal/domain/user"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}
