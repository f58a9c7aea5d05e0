package user

import "context"

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	// Save persists a new user; a duplicate email is reported as a conflict.
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
