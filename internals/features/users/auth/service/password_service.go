package service

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/auth/dto"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	helper "schoolquiz_backend/internals/helpers"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

const resetPasswordLength = 5

// ========================== RESET PASSWORD ==========================
// ResetPassword assigns a random password to the account of email and returns it in result.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) helper.Feedback {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FailStatus(http.StatusNotFound, "User record not found")
		}
		return helper.FromError(err, "Unable to reset password")
	}

	plain, err := helperAuth.RandomPassword(resetPasswordLength)
	if err != nil {
		return helper.FromError(err, "Unable to reset password")
	}
	hashed, err := helperAuth.HashPassword(plain)
	if err != nil {
		return helper.FromError(err, "Unable to reset password")
	}
	if err := authRepo.UpdateUserPassword(ctx, s.DB, user.ID, hashed); err != nil {
		return helper.FromError(err, "Unable to reset password")
	}

	activityService.Record(ctx, s.DB, user.ID, "reset password", nil)
	return helper.Ok("Password reset successful", plain)
}

// ========================== CHANGE PASSWORD ==========================
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) helper.Feedback {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FailStatus(http.StatusNotFound, "User record not found")
		}
		return helper.FromError(err, "Unable to change password")
	}

	if !helperAuth.CheckPasswordHash(user.Password, req.OldPassword) {
		return helper.FailStatus(http.StatusBadRequest, "Incorrect old password.")
	}

	hashed, err := helperAuth.HashPassword(req.NewPassword)
	if err != nil {
		return helper.FromError(err, "Unable to change password")
	}
	if err := authRepo.UpdateUserPassword(ctx, s.DB, user.ID, hashed); err != nil {
		return helper.FromError(err, "Unable to change password")
	}

	activityService.Record(ctx, s.DB, user.ID, "changed password", nil)
	return helper.NewFeedback(true, "Password changed")
}
