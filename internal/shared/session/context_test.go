package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixdesk/internal/shared/authorization"
)

func TestWithPrincipal_RoundTrip(t *testing.T) {
	p := Principal{
		UserID:      7,
		Username:    "alice",
		DisplayName: "Alice A",
		Role:        authorization.RoleUser,
	}

	ctx := WithPrincipal(context.Background(), p)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestFromContext_Empty(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}

func TestWithPrincipal_DoesNotLeakAcrossContexts(t *testing.T) {
	ctx1 := WithPrincipal(context.Background(), Principal{UserID: 1, Username: "alice", Role: authorization.RoleUser})
	ctx2 := WithPrincipal(context.Background(), Principal{UserID: 2, Username: "bob", Role: authorization.RoleAdmin})

	p1, _ := FromContext(ctx1)
	p2, _ := FromContext(ctx2)

	assert.Equal(t, "alice", p1.Username)
	assert.Equal(t, "bob", p2.Username)
}
