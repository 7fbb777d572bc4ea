package auth

import (
	"library-backend/internal/domain/user"
	"library-backend/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a validated sign-up request.
type Registration struct {
	Name        user.Name
	Credentials Credentials
}

func NewRegistration(firstName, lastName, email, password string) (Registration, error) {
	name, err := user.NewName(firstName, lastName)
	if err != nil {
		return Registration{}, err
	}
	creds, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Name: name, Credentials: creds}, nil
}
