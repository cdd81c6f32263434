package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	authService "schoolquiz_backend/internals/features/users/auth/service"
	helper "schoolquiz_backend/internals/helpers"
	"schoolquiz_backend/internals/testutil"
)

func newApp(t *testing.T, roles []string) (*fiber.App, *authService.AuthService) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Get("/me", AuthMiddleware(db), OnlyRolesSlice("Admins only", roles), func(c *fiber.Ctx) error {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id, "role": helper.GetRoleFromToken(c)})
	})
	return app, authService.NewAuthService(db)
}

func get(t *testing.T, app *fiber.App, authz string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	app, svc := newApp(t, constants.AllSignedRoles)
	db := svc.DB
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeStudent)
	token, err := svc.CreateAccessToken(context.Background(), u.ID, u.Type, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, app, token))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Token abc"))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer not.a.jwt"))

	claims, err := authService.ParseAccessToken(token, false)
	require.NoError(t, err)
	require.True(t, svc.Logout(context.Background(), claims.TokenID).Success)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, token))
}

func TestRoleMiddleware(t *testing.T) {
	app, svc := newApp(t, constants.AdminOnly)
	ctx := context.Background()
	admin := testutil.CreateUser(t, svc.DB, "admin@school.test", constants.UserTypeAdmin)
	teacher := testutil.CreateUser(t, svc.DB, "teacher@school.test", constants.UserTypeTeacher)

	adminToken, err := svc.CreateAccessToken(ctx, admin.ID, admin.Type, "")
	require.NoError(t, err)
	teacherToken, err := svc.CreateAccessToken(ctx, teacher.ID, teacher.Type, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, app, adminToken))
	assert.Equal(t, http.StatusForbidden, get(t, app, teacherToken))
}
