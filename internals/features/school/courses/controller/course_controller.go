package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/courses/dto"
	"schoolquiz_backend/internals/features/school/courses/service"
	helper "schoolquiz_backend/internals/helpers"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

type CourseController struct {
	DB        *gorm.DB
	service   *service.CourseService
	validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, service: service.NewCourseService(db), validator: helper.NewValidator()}
}

// POST /api/t/courses
// A teacher always creates courses for themselves; admins name the teacher.
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonBindError(c, helper.ErrInvalidBody)
	}
	if teacherID := featuresMiddleware.TeacherID(c); teacherID != 0 {
		req.TeacherID = teacherID
	}
	if err := cc.validator.Struct(&req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, cc.service.CreateCourse(c.UserContext(), req, actorID))
}

// GET /api/t/courses?page=&search=&teacher_id=&paginate=
func (cc *CourseController) GetCourses(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, cc.service.GetCourses(c.UserContext(), dto.ListCoursesQuery{
		Page:      helper.QueryPage(c),
		Search:    c.Query("search"),
		TeacherID: helper.QueryUint(c, "teacher_id"),
		Paginate:  helper.QueryBool(c, "paginate", true),
	}))
}

func (cc *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, cc.service.GetCourse(c.UserContext(), id))
}

func (cc *CourseController) UpdateCourse(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateCourseRequest
	if err := helper.BindJSON(c, cc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	if featuresMiddleware.TeacherID(c) != 0 {
		req.TeacherID = nil
	}
	return helper.JsonFeedback(c, cc.service.UpdateCourse(c.UserContext(), id, req, actorID))
}

func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, cc.service.DeleteCourse(c.UserContext(), id, actorID))
}
