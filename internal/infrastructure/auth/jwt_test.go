package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triagedesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret-at-least-32-characters!!", 15)

	token, expiresIn, err := svc.Generate(42, authorization.RoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(15*60), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret-at-least-32-characters!!", 15)
	other := NewJWTService("a-completely-different-signing-key!!", 15)

	token, _, err := svc.Generate(1, authorization.RolePatient)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret-at-least-32-characters!!", 15)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret-at-least-32-characters!!", -1)

	token, _, err := svc.Generate(1, authorization.RolePatient)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secure.pass1")
	require.NoError(t, err)
	assert.NotEqual(t, "secure.pass1", hash)

	assert.NoError(t, hasher.Verify("secure.pass1", hash))
	assert.Error(t, hasher.Verify("wrong.pass1", hash))
	assert.Error(t, hasher.Verify("secure.pass1", "not-a-bcrypt-hash"))
}
