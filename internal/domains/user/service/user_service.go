package service

import (
	"context"

	"boardgames-backend/internal/domains/user"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

type userService struct {
	repo user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, user.NewValidationError(err)
	}

	u, err := s.repo.Create(ctx, user.NewUser(req))
	if err != nil {
		return nil, err
	}

	return u.ToResponse(), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) List(ctx context.Context, skip, limit int) (*user.UserListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	users, total, err := s.repo.GetAll(ctx, limit, skip)
	if err != nil {
		return nil, err
	}

	items := make([]user.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *users[i].ToResponse())
	}

	return &user.UserListResponse{
		Users: items,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
