package user

import "context"

type UserService interface {
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id int64) (*UserResponse, error)
	List(ctx context.Context, skip, limit int) (*UserListResponse, error)
	Delete(ctx context.Context, id int64) error
}
