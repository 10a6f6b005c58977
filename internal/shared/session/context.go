// Package session carries the acting principal through context.Context.
// There is deliberately no process-wide current-user slot: each request installs
// its own principal, so concurrent sessions never observe each other's identity.
package session

import (
	"context"

	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
)

// Principal is the authenticated identity acting on a request.
type Principal struct {
	UserID      uint
	Username    string
	DisplayName string
	Role        authorization.UserRole
}

type principalKey struct{}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal installed in the context, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Require returns the principal from the context or an unauthorized error
// when no session is active.
func Require(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, errors.NewUnauthorizedError("authentication required")
	}
	return p, nil
}
