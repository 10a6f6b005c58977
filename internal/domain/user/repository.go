package user

import "context"

// UserRepository owns principal records. Save inserts a new principal and
// sets its id; the store's unique index on username is the authority on
// duplicates.
type UserRepository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, u *User) error
}
