package user

import "strings"

// User is a read-only reference to the user directory. Bookers and item owners are both users.
type User struct {
	id    int64
	name  string
	email Email
}

func NewUser(id int64, name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{id: id, name: name, email: email}, nil
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
