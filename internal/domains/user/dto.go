package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Validate enforces field shapes only. Email uniqueness is deliberately not
// enforced anywhere.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Surname,
			validation.Required.Error("surname is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(3, 200),
		),
	)
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
	}
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}
