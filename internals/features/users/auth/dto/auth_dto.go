package dto

import (
	"strings"

	"schoolquiz_backend/internals/constants"
	userDTO "schoolquiz_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=60"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// RefreshRequest identifies the session whose access token should be renewed.
type RefreshRequest struct {
	ID       string
	UserID   uint
	UserType constants.UserType
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccessClaims is what an access token carries.
type AccessClaims struct {
	TokenID string
	UserID  uint
	Type    constants.UserType
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  *userDTO.UserProfile `json:"user"`
}
