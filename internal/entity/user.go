package entity

import (
	"errors"

	"github.com/google/uuid"
)

// User exists for parity with the admin schema; none of the site flows
// touch it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

func NewUser(username, password string) (*User, error) {
	user := &User{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if u.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
