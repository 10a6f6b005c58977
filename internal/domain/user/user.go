// Package user holds the principal aggregate: an identity with a credential
// hash, a role, and an active flag. Usernames are unique; inactive principals
// cannot authenticate.
package user

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/authorization"
)

type User struct {
	id           uint
	username     string
	passwordHash string
	displayName  string
	role         authorization.UserRole
	active       bool
	createdAt    time.Time
}

// NewUser creates a principal with role user and active=true. The caller
// provides an already-computed credential hash; the plaintext never reaches
// the domain.
func NewUser(username string, passwordHash string, displayName string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         authorization.RoleUser,
		active:       true,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	displayName string,
	role authorization.UserRole,
	active bool,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		active:       active,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeRole is an administrative act; it is the only role mutation.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	return nil
}

func (u *User) Deactivate() {
	u.active = false
}

func (u *User) Activate() {
	u.active = true
}
