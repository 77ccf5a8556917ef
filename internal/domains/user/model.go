package user

// User is a catalog account that can own board games through the
// users_games table. The table carries no timestamps.
type User struct {
	ID      int64
	Name    string
	Surname string
	Email   string
}

func NewUser(req *CreateUserRequest) *User {
	return &User{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	}
}
