package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/models"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Nickname string `json:"nickname" validate:"required,max=50"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse carries the session credential pair issued on login/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUpdateRequest replaces the mutable profile fields wholesale: email,
// nickname and password are all required, so a caller can never drop a field
// by accident. CurrentPassword gates the change.
type UserUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=64"`
	Email           string `json:"email" validate:"required,email"`
	Nickname        string `json:"nickname" validate:"required,max=50"`
}

type RoleUpdateRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserSearchRequest mirrors the GET /api/user query parameters.
type UserSearchRequest struct {
	Username string `query:"username"`
	Email    string `query:"email"`
	Role     string `query:"role"`
	Page     int    `query:"page"`
	Size     int    `query:"size"`
	SortBy   string `query:"sortBy"`
	Order    string `query:"order"`
}

// UserResponse is the public representation of an account. It never carries
// the password hash.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Nickname  string      `json:"nickname"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
