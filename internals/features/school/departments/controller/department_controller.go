package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/departments/dto"
	"schoolquiz_backend/internals/features/school/departments/service"
	helper "schoolquiz_backend/internals/helpers"
)

type DepartmentController struct {
	DB        *gorm.DB
	service   *service.DepartmentService
	validator *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, service: service.NewDepartmentService(db), validator: helper.NewValidator()}
}

func (dc *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := helper.BindJSON(c, dc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, dc.service.CreateDepartment(c.UserContext(), req, actorID))
}

// GET /departments?page=&search=&paginate=false
func (dc *DepartmentController) GetDepartments(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, dc.service.GetDepartments(c.UserContext(), dto.ListDepartmentsQuery{
		Page:     helper.QueryPage(c),
		Search:   c.Query("search"),
		Paginate: helper.QueryBool(c, "paginate", true),
	}))
}

func (dc *DepartmentController) GetDepartment(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, dc.service.GetDepartment(c.UserContext(), id))
}

func (dc *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.DepartmentRequest
	if err := helper.BindJSON(c, dc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, dc.service.UpdateDepartment(c.UserContext(), id, req, actorID))
}

func (dc *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, dc.service.DeleteDepartment(c.UserContext(), id, actorID))
}
