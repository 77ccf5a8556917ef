package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardgames-backend/internal/domains/user"
)

type fakeUserRepository struct {
	users  map[int64]user.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]user.User), nextID: 1}
}

func (r *fakeUserRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	stored := *u
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored
	return &stored, nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepository) GetAll(_ context.Context, limit, offset int) ([]user.User, int64, error) {
	total := int64(len(r.users))
	var page []user.User
	for id := int64(1); id < r.nextID; id++ {
		u, ok := r.users[id]
		if !ok {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		if len(page) == limit {
			break
		}
		page = append(page, u)
	}
	return page, total, nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func createUserRequest(email string) *user.CreateUserRequest {
	return &user.CreateUserRequest{Name: "Ada", Surname: "Lovelace", Email: email}
}

func TestCreateUserRejectsInvalidRequest(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())

	resp, err := svc.Create(context.Background(), &user.CreateUserRequest{})
	assert.Nil(t, resp)
	assert.True(t, user.IsValidationError(err))
}

func TestCreateUserRoundTrip(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())

	created, err := svc.Create(context.Background(), createUserRequest("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCreateUserAllowsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())

	first, err := svc.Create(context.Background(), createUserRequest("same@example.com"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), createUserRequest("same@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserListClampsPagination(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), createUserRequest("ada@example.com"))
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), -1, 500)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Skip)
	assert.Equal(t, 100, resp.Limit)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Users, 3)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())

	created, err := svc.Create(context.Background(), createUserRequest("ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), user.ErrUserNotFound)
}
