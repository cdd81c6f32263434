package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/configs"
	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/users/auth/dto"
	authModel "schoolquiz_backend/internals/features/users/auth/model"
	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
	"schoolquiz_backend/internals/testutil"
)

func TestLogin(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	svc := NewAuthService(db)
	ctx := context.Background()

	fb := svc.Login(ctx, dto.LoginRequest{Email: " Student@School.test ", Password: testutil.Password}, "go-test")
	require.True(t, fb.Success, fb.Message)
	res := fb.Result.(dto.LoginResponse)
	assert.True(t, strings.HasPrefix(res.Token, "Bearer "))
	require.NotNil(t, res.User)
	require.NotNil(t, res.User.Student)
	assert.Equal(t, school.Student.ID, res.User.Student.ID)

	claims, err := ParseAccessToken(res.Token, false)
	require.NoError(t, err)
	assert.Equal(t, school.Student.UserID, claims.UserID)
	assert.Equal(t, constants.UserTypeStudent, claims.Type)

	rt, err := svc.GetRefreshToken(ctx, claims.TokenID)
	require.NoError(t, err)
	assert.Equal(t, "go-test", rt.UserAgent)
	assert.True(t, rt.Valid)

	for _, req := range []dto.LoginRequest{
		{Email: "student@school.test", Password: "wrong"},
		{Email: "nobody@school.test", Password: testutil.Password},
	} {
		fb := svc.Login(ctx, req, "")
		assert.Equal(t, http.StatusUnauthorized, fb.Status)
		assert.Equal(t, "Invalid email or password", fb.Message)
	}
}

func TestParseAccessToken(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeAdmin)
	svc := NewAuthService(db)

	token, err := svc.CreateAccessToken(context.Background(), u.ID, u.Type, "")
	require.NoError(t, err)

	raw := strings.TrimPrefix(token, "Bearer ")
	claims, err := ParseAccessToken(raw, false)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, err = ParseAccessToken("", false)
	assert.Error(t, err)
	_, err = ParseAccessToken("Bearer garbage", true)
	assert.Error(t, err)
}

func TestRefreshAccessToken(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeTeacher)
	svc := NewAuthService(db)
	ctx := context.Background()

	token, err := svc.CreateAccessToken(ctx, u.ID, u.Type, "")
	require.NoError(t, err)
	claims, err := ParseAccessToken(token, false)
	require.NoError(t, err)
	before, err := svc.GetRefreshToken(ctx, claims.TokenID)
	require.NoError(t, err)

	req := dto.RefreshRequest{ID: claims.TokenID, UserID: u.ID, UserType: u.Type}
	renewed := svc.RefreshAccessToken(ctx, req)
	require.NotEmpty(t, renewed)
	again, err := ParseAccessToken(renewed, false)
	require.NoError(t, err)
	assert.Equal(t, claims.TokenID, again.TokenID)

	after, err := svc.GetRefreshToken(ctx, claims.TokenID)
	require.NoError(t, err)
	assert.False(t, after.ExpiresAt.Before(before.ExpiresAt))

	assert.Empty(t, svc.RefreshAccessToken(ctx, dto.RefreshRequest{ID: claims.TokenID, UserID: u.ID + 1, UserType: u.Type}))
	assert.Empty(t, svc.RefreshAccessToken(ctx, dto.RefreshRequest{ID: "unknown", UserID: u.ID, UserType: u.Type}))
}

func TestRefreshRejectsExpiredSession(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeStudent)
	svc := NewAuthService(db)
	ctx := context.Background()

	stale, err := helperAuth.SignToken(map[string]any{"typ": "refresh", "user": u.ID}, configs.JWTRefreshSecret, -time.Hour)
	require.NoError(t, err)
	rt := &authModel.RefreshTokenModel{UserID: u.ID, Token: stale, Valid: true, ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, authRepo.CreateRefreshToken(ctx, db, rt))

	assert.Empty(t, svc.RefreshAccessToken(ctx, dto.RefreshRequest{ID: rt.ID, UserID: u.ID, UserType: u.Type}))
	_, err = svc.GetRefreshToken(ctx, rt.ID)
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeAdmin)
	svc := NewAuthService(db)
	ctx := context.Background()

	token, err := svc.CreateAccessToken(ctx, u.ID, u.Type, "")
	require.NoError(t, err)
	claims, err := ParseAccessToken(token, false)
	require.NoError(t, err)

	fb := svc.Logout(ctx, claims.TokenID)
	require.True(t, fb.Success)
	_, err = svc.GetRefreshToken(ctx, claims.TokenID)
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeStudent)
	svc := NewAuthService(db)
	ctx := context.Background()

	fb := svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "A@school.test"})
	require.True(t, fb.Success, fb.Message)
	plain := fb.Result.(string)
	assert.Len(t, plain, 5)

	user, err := authRepo.FindUserByID(ctx, db, u.ID)
	require.NoError(t, err)
	assert.True(t, helperAuth.CheckPasswordHash(user.Password, plain))

	fb = svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "none@school.test"})
	assert.Equal(t, http.StatusNotFound, fb.Status)
}

func TestChangePassword(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeStudent)
	svc := NewAuthService(db)
	ctx := context.Background()

	fb := svc.ChangePassword(ctx, u.ID, dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "fresh"})
	assert.Equal(t, http.StatusBadRequest, fb.Status)
	assert.Equal(t, "Incorrect old password.", fb.Message)

	fb = svc.ChangePassword(ctx, u.ID, dto.ChangePasswordRequest{OldPassword: testutil.Password, NewPassword: "fresh"})
	require.True(t, fb.Success, fb.Message)

	fb = svc.Login(ctx, dto.LoginRequest{Email: "a@school.test", Password: "fresh"}, "")
	assert.True(t, fb.Success)

	fb = svc.ChangePassword(ctx, 999, dto.ChangePasswordRequest{OldPassword: "x", NewPassword: "fresh"})
	assert.Equal(t, http.StatusNotFound, fb.Status)
}
