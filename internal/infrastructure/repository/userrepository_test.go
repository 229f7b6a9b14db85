package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triagedesk/internal/domain/user"
	uservo "triagedesk/internal/domain/user/valueobjects"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
)

func createTestUser(t *testing.T, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(addr, "$2a$12$testhash", "Test Patient", role)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create assigns ID and round-trips", func(t *testing.T) {
		u := createTestUser(t, "patient@example.com", authorization.RolePatient)

		require.NoError(t, repo.Create(ctx, u))
		assert.NotZero(t, u.ID())

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "patient@example.com", found.Email().String())
		assert.Equal(t, authorization.RolePatient, found.Role())
		assert.Equal(t, "$2a$12$testhash", found.PasswordHash())
	})

	t.Run("get by email", func(t *testing.T) {
		u := createTestUser(t, "staff@example.com", authorization.RoleStaff)
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.GetByEmail(ctx, "staff@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
		assert.True(t, found.CanReviewCases())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		u1 := createTestUser(t, "dup@example.com", authorization.RolePatient)
		require.NoError(t, repo.Create(ctx, u1))

		u2 := createTestUser(t, "dup@example.com", authorization.RolePatient)
		assert.Error(t, repo.Create(ctx, u2))
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "exists@example.com", authorization.RolePatient)
	require.NoError(t, repo.Create(ctx, u))

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "profile@example.com", authorization.RolePatient)
	require.NoError(t, repo.Create(ctx, u))

	dob := time.Date(1985, 7, 3, 0, 0, 0, 0, time.UTC)
	u.UpdateProfile("555-0142", &dob)
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "555-0142", found.Phone())
	require.NotNil(t, found.DateOfBirth())
	assert.Equal(t, dob.UnixMilli(), found.DateOfBirth().UnixMilli())
}
