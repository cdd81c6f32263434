package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/teachers/dto"
	"schoolquiz_backend/internals/features/users/teachers/service"
	helper "schoolquiz_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	service   *service.TeacherService
	validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, service: service.NewTeacherService(db), validator: helper.NewValidator()}
}

// POST /api/a/teachers
func (tc *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateTeacherRequest
	if err := helper.BindJSON(c, tc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, tc.service.CreateTeacher(c.UserContext(), req, actorID))
}

// GET /api/t/teachers?page=&search=&dept_id=
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, tc.service.GetTeachers(c.UserContext(), dto.ListTeachersQuery{
		Page:   helper.QueryPage(c),
		Search: c.Query("search"),
		DeptID: helper.QueryUint(c, "dept_id"),
	}))
}

// GET /api/t/teachers/:id
func (tc *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, tc.service.GetTeacher(c.UserContext(), id))
}

// PUT /api/a/teachers/:id
func (tc *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateTeacherRequest
	if err := helper.BindJSON(c, tc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, tc.service.UpdateTeacher(c.UserContext(), id, req, actorID))
}

// DELETE /api/a/teachers/:id
func (tc *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, tc.service.DeleteTeacher(c.UserContext(), id, actorID))
}

// GET /api/t/dashboard
func (tc *TeacherController) GetDashboardStats(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, tc.service.GetTeacherDashboardStats(c.UserContext()))
}
