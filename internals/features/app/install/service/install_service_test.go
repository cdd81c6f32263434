package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	levelModel "schoolquiz_backend/internals/features/school/levels/model"
	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"
	"schoolquiz_backend/internals/testutil"
)

func TestInstallApp(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewInstallService(db)
	ctx := context.Background()

	fb := svc.InstallApp(ctx)
	require.True(t, fb.Success, fb.Message)
	assert.Equal(t, "installed", fb.Message)

	var u userModel.UserModel
	require.NoError(t, db.Where("email = ?", constants.DefaultAdminEmail).First(&u).Error)
	assert.Equal(t, constants.UserTypeAdmin, u.Type)

	var levels int64
	require.NoError(t, db.Model(&levelModel.LevelModel{}).Count(&levels).Error)
	assert.Equal(t, int64(len(constants.DefaultLevels)), levels)

	fb = svc.InstallApp(ctx)
	assert.False(t, fb.Success)
	assert.Equal(t, http.StatusConflict, fb.Status)
	assert.Equal(t, "App already installed", fb.Message)
}

func TestInstallerSkipsWhenAdminExists(t *testing.T) {
	db := testutil.OpenTestDB(t)
	testutil.CreateAdmin(t, db, "existing@school.test")

	NewInstallService(db).Installer(context.Background())

	var n int64
	require.NoError(t, db.Model(&adminModel.AdminModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
