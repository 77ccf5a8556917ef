package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetAll(ctx context.Context, limit, offset int) ([]User, int64, error)

	// Delete removes the user and their ownership rows in one transaction.
	Delete(ctx context.Context, id int64) error
}
