package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/admins/dto"
	"schoolquiz_backend/internals/features/users/admins/service"
	helper "schoolquiz_backend/internals/helpers"
)

type AdminController struct {
	DB        *gorm.DB
	service   *service.AdminService
	validator *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, service: service.NewAdminService(db), validator: helper.NewValidator()}
}

// POST /api/a/admins
func (ac *AdminController) CreateAdmin(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateAdminRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, ac.service.CreateAdmin(c.UserContext(), req, actorID))
}

// GET /api/a/admins?page=&search=
func (ac *AdminController) GetAdmins(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, ac.service.GetAdmins(c.UserContext(), dto.ListAdminsQuery{
		Page:   helper.QueryPage(c),
		Search: c.Query("search"),
	}))
}

// GET /api/a/admins/:id
func (ac *AdminController) GetAdmin(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, ac.service.GetAdmin(c.UserContext(), id))
}

// PUT /api/a/admins/:id
func (ac *AdminController) UpdateAdmin(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateAdminRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, ac.service.UpdateAdmin(c.UserContext(), id, req, actorID))
}

// DELETE /api/a/admins/:id
func (ac *AdminController) DeleteAdmin(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, ac.service.DeleteAdmin(c.UserContext(), id, actorID))
}

// GET /api/a/dashboard
func (ac *AdminController) GetDashboardStats(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, ac.service.GetAdminDashboardStats(c.UserContext()))
}
