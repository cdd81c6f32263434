package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/auth/dto"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	userDTO "schoolquiz_backend/internals/features/users/user/dto"
	userService "schoolquiz_backend/internals/features/users/user/service"
	helper "schoolquiz_backend/internals/helpers"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// ==========================
// Session operations
// ==========================

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, userAgent string) helper.Feedback {
	req.Normalize()

	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil || !helperAuth.CheckPasswordHash(user.Password, req.Password) {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.ErrorContext(ctx, "login lookup", "err", err)
		}
		return helper.FailStatus(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.CreateAccessToken(ctx, user.ID, user.Type, userAgent)
	if err != nil {
		return helper.FromError(err, "Unable to sign in")
	}

	profile := userService.NewUserService(s.DB).GetUser(ctx, userDTO.UserFilter{ID: user.ID})
	return helper.Ok("Login successful", dto.LoginResponse{Token: token, User: profile})
}

func (s *AuthService) Logout(ctx context.Context, id string) helper.Feedback {
	if _, err := authRepo.DeleteRefreshToken(ctx, s.DB, id); err != nil {
		return helper.FromError(err, "Unable to sign out")
	}
	return helper.NewFeedback(true, "Logged out")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
