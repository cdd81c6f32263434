package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/user/dto"
	"schoolquiz_backend/internals/features/users/user/service"
	helper "schoolquiz_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	service   *service.UserService
	validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, service: service.NewUserService(db), validator: helper.NewValidator()}
}

// GET /api/u/me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	profile := uc.service.GetUser(c.UserContext(), dto.UserFilter{ID: userID})
	if profile == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User record not found")
	}
	return helper.JsonFeedback(c, helper.Ok("success", profile))
}

// PUT /api/u/me
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := helper.BindJSON(c, uc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, uc.service.UpdateUser(c.UserContext(), userID, req))
}
