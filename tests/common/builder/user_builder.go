//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/user"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    2,
		Name:  "Booker",
		Email: "booker@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.ID, u.Name, email)
}

// MustBuild panics on invalid data; use it only with fixed test values.
func (u *UserBuilder) MustBuild() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}
