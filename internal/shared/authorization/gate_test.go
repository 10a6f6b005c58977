package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/shared/errors"
)

func TestGate_PolicyTable(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	tests := []struct {
		name    string
		role    UserRole
		op      Operation
		allowed bool
	}{
		{"user can create requests", RoleUser, OpCreateRequest, true},
		{"user can view requests", RoleUser, OpViewRequest, true},
		{"user can add comments", RoleUser, OpAddComment, true},
		{"user cannot edit requests", RoleUser, OpEditRequest, false},
		{"user cannot count requests", RoleUser, OpCountRequests, false},
		{"user cannot change roles", RoleUser, OpSetRole, false},
		{"admin can edit requests", RoleAdmin, OpEditRequest, true},
		{"admin can count requests", RoleAdmin, OpCountRequests, true},
		{"admin can change roles", RoleAdmin, OpSetRole, true},
		{"admin inherits create", RoleAdmin, OpCreateRequest, true},
		{"admin inherits view", RoleAdmin, OpViewRequest, true},
		{"admin inherits comment", RoleAdmin, OpAddComment, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := gate.Allow(tt.role, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestGate_Authorize(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	assert.NoError(t, gate.Authorize(RoleAdmin, OpEditRequest))

	err = gate.Authorize(RoleUser, OpEditRequest)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGate_UnknownRoleDenied(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	allowed, err := gate.Allow(UserRole("ghost"), OpViewRequest)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("unknown"))
}
