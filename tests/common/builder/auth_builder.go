//go:build unit || e2e

package builder

import (
	reqdto "library-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FirstName: "Hanako",
		LastName:  "Yamada",
		Email:     "test@example.com",
		Password:  "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Password:  a.Password,
	}
}
