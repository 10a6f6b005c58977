// Package authorization implements the access control gate: a declarative
// policy table mapping (role, operation) to allow/deny, enforced by casbin.
// The policy is static and embedded; nothing mutates it at runtime.
package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"fixdesk/internal/shared/errors"
)

// Operation identifies a gated operation as a casbin object/action pair.
type Operation struct {
	Object string
	Action string
}

func (o Operation) String() string {
	return o.Object + ":" + o.Action
}

var (
	OpCreateRequest = Operation{"request", "create"}
	OpViewRequest   = Operation{"request", "view"}
	OpEditRequest   = Operation{"request", "edit"}
	OpCountRequests = Operation{"request", "count"}
	OpAddComment    = Operation{"comment", "add"}
	OpSetRole       = Operation{"user", "set_role"}
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the single declarative policy table every mutating operation
// consults. Admin inherits everything granted to user.
var policies = []struct {
	role UserRole
	op   Operation
}{
	{RoleUser, OpCreateRequest},
	{RoleUser, OpViewRequest},
	{RoleUser, OpAddComment},
	{RoleAdmin, OpEditRequest},
	{RoleAdmin, OpCountRequests},
	{RoleAdmin, OpSetRole},
}

// Gate decides whether a role may perform an operation.
type Gate struct {
	enforcer *casbin.Enforcer
}

// NewGate builds the enforcer from the embedded model and policy table.
func NewGate() (*Gate, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.role.String(), p.op.Object, p.op.Action); err != nil {
			return nil, fmt.Errorf("failed to add policy %s %s: %w", p.role, p.op, err)
		}
	}

	if _, err := enforcer.AddGroupingPolicy(RoleAdmin.String(), RoleUser.String()); err != nil {
		return nil, fmt.Errorf("failed to add role inheritance: %w", err)
	}

	return &Gate{enforcer: enforcer}, nil
}

// Allow reports whether the role may perform the operation.
func (g *Gate) Allow(role UserRole, op Operation) (bool, error) {
	allowed, err := g.enforcer.Enforce(role.String(), op.Object, op.Action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// Authorize returns a forbidden error when the role may not perform the
// operation, and nil when it may.
func (g *Gate) Authorize(role UserRole, op Operation) error {
	allowed, err := g.Allow(role, op)
	if err != nil {
		return errors.NewInternalError("authorization check failed", err.Error())
	}
	if !allowed {
		return errors.NewForbiddenError(fmt.Sprintf("role %s may not perform %s", role, op))
	}
	return nil
}
