package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/users/auth/dto"
	authModel "schoolquiz_backend/internals/features/users/auth/model"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

const bearerPrefix = "Bearer "

// ==========================
// Tokens
// ==========================

func signAccess(tokenID string, userID uint, t constants.UserType) (string, error) {
	return helperAuth.SignToken(jwt.MapClaims{
		"typ":   "access",
		"token": tokenID,
		"user":  userID,
		"type":  string(t),
	}, configs.JWTSecret, configs.AccessTokenTimeout)
}

func signRefresh(userID uint) (string, error) {
	return helperAuth.SignToken(jwt.MapClaims{
		"typ":  "refresh",
		"user": userID,
	}, configs.JWTRefreshSecret, configs.RefreshTokenTimeout)
}

// CreateAccessToken opens a session for the user and returns "Bearer <access jwt>".
func (s *AuthService) CreateAccessToken(ctx context.Context, userID uint, t constants.UserType, userAgent string) (string, error) {
	refresh, err := signRefresh(userID)
	if err != nil {
		return "", err
	}
	rt := &authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     refresh,
		UserAgent: truncate(userAgent, 300),
		Valid:     true,
		ExpiresAt: time.Now().Add(configs.RefreshTokenTimeout),
	}
	if err := authRepo.CreateRefreshToken(ctx, s.DB, rt); err != nil {
		return "", err
	}

	access, err := signAccess(rt.ID, userID, t)
	if err != nil {
		return "", err
	}
	return bearerPrefix + access, nil
}

// ParseAccessToken verifies a raw or "Bearer "-prefixed access token.
// With allowExpired the signature is still checked but exp is ignored.
func ParseAccessToken(raw string, allowExpired bool) (dto.AccessClaims, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), bearerPrefix))
	if raw == "" {
		return dto.AccessClaims{}, errors.New("missing token")
	}

	var claims jwt.MapClaims
	var err error
	if allowExpired {
		claims, err = parseSkippingExpiry(raw, configs.JWTSecret)
	} else {
		claims, err = helperAuth.ParseToken(raw, configs.JWTSecret)
	}
	if err != nil {
		return dto.AccessClaims{}, err
	}

	userID, ok := helperAuth.ClaimUint(claims, "user")
	if !ok {
		return dto.AccessClaims{}, errors.New("invalid user claim")
	}
	out := dto.AccessClaims{
		TokenID: helperAuth.ClaimString(claims, "token"),
		UserID:  userID,
		Type:    constants.UserType(helperAuth.ClaimString(claims, "type")),
	}
	if out.TokenID == "" || !out.Type.Valid() {
		return dto.AccessClaims{}, errors.New("invalid access token claims")
	}
	return out, nil
}

func parseSkippingExpiry(raw, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, helperAuth.ErrMissingSecret
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	return claims, err
}

// RefreshAccessToken renews the access token of a live session. It returns
// the empty string when the session is unknown, revoked or expired.
func (s *AuthService) RefreshAccessToken(ctx context.Context, req dto.RefreshRequest) string {
	rt, err := authRepo.FindRefreshToken(ctx, s.DB, req.ID, req.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.ErrorContext(ctx, "refresh lookup", "err", err)
		}
		return ""
	}

	if _, err := helperAuth.ParseToken(rt.Token, configs.JWTRefreshSecret); err != nil {
		if err := authRepo.InvalidateRefreshToken(ctx, s.DB, rt.ID); err != nil {
			slog.WarnContext(ctx, "refresh invalidate", "err", err)
		}
		return ""
	}

	refresh, err := signRefresh(req.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "refresh sign", "err", err)
		return ""
	}
	if err := authRepo.RotateRefreshToken(ctx, s.DB, rt.ID, refresh, time.Now().Add(configs.RefreshTokenTimeout)); err != nil {
		slog.ErrorContext(ctx, "refresh rotate", "err", err)
		return ""
	}

	access, err := signAccess(rt.ID, req.UserID, req.UserType)
	if err != nil {
		slog.ErrorContext(ctx, "access sign", "err", err)
		return ""
	}
	return bearerPrefix + access
}

func (s *AuthService) GetRefreshToken(ctx context.Context, id string) (*authModel.RefreshTokenModel, error) {
	return authRepo.FindRefreshToken(ctx, s.DB, id, 0)
}

