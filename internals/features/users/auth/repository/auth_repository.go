package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	authModel "schoolquiz_backend/internals/features/users/auth/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByID(ctx context.Context, db *gorm.DB, userID uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uint, hashed string) error {
	return db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(rt).Error
}

// FindRefreshToken loads a valid refresh token; a non-zero userID must own it.
func FindRefreshToken(ctx context.Context, db *gorm.DB, id string, userID uint) (*authModel.RefreshTokenModel, error) {
	q := db.WithContext(ctx).Where("id = ? AND valid = ?", id, true)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var rt authModel.RefreshTokenModel
	if err := q.First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RotateRefreshToken(ctx context.Context, db *gorm.DB, id, token string, expiresAt time.Time) error {
	return db.WithContext(ctx).
		Model(&authModel.RefreshTokenModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"token": token, "expires_at": expiresAt}).Error
}

func InvalidateRefreshToken(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&authModel.RefreshTokenModel{}).
		Where("id = ?", id).
		Update("valid", false).Error
}

func DeleteRefreshToken(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

// DeleteStaleRefreshTokens removes up to limit tokens that expired or were invalidated before cutoff.
func DeleteStaleRefreshTokens(ctx context.Context, db *gorm.DB, cutoff time.Time, limit int) (int64, error) {
	var ids []string
	if err := db.WithContext(ctx).
		Model(&authModel.RefreshTokenModel{}).
		Where("expires_at < ? OR (valid = ? AND updated_at < ?)", cutoff, false, cutoff).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
