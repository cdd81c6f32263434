package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/auth/dto"
	"schoolquiz_backend/internals/features/users/auth/service"
	helper "schoolquiz_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	service   *service.AuthService
	validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		service:   service.NewAuthService(db),
		validator: helper.NewValidator(),
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, ac.service.Login(c.UserContext(), req, c.Get(fiber.HeaderUserAgent)))
}

// POST /api/auth/refresh
// Takes the (possibly expired) access token and returns a fresh one.
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	claims, err := service.ParseAccessToken(c.Get(fiber.HeaderAuthorization), true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	token := ac.service.RefreshAccessToken(c.UserContext(), dto.RefreshRequest{
		ID:       claims.TokenID,
		UserID:   claims.UserID,
		UserType: claims.Type,
	})
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session expired, please login again")
	}
	return helper.JsonFeedback(c, helper.Ok("success", token))
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, ac.service.Logout(c.UserContext(), helper.GetTokenIDFromToken(c)))
}

// POST /api/auth/reset-password
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, ac.service.ResetPassword(c.UserContext(), req))
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, ac.service.ChangePassword(c.UserContext(), userID, req))
}
