package response

import (
	"time"

	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		UserID:      r.UserID,
		Email:       r.Email,
		Role:        r.Role.String(),
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return copyOne[queries.UserView, UserResponse](v)
}

func FromUserList(views []*queries.UserView) ([]*UserResponse, error) {
	return copyAll[queries.UserView, UserResponse](views)
}
