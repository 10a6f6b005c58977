package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(7, "alice", "Alice A", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice A", claims.DisplayName)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 15)
	other := NewJWTService("secret-b", 15)

	token, err := svc.Generate(1, "alice", "Alice A", authorization.RoleUser)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(1, "alice", "Alice A", authorization.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
