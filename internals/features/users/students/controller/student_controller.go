package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/students/dto"
	"schoolquiz_backend/internals/features/users/students/service"
	helper "schoolquiz_backend/internals/helpers"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

type StudentController struct {
	DB        *gorm.DB
	service   *service.StudentService
	validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, service: service.NewStudentService(db), validator: helper.NewValidator()}
}

// POST /api/a/students
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateStudentRequest
	if err := helper.BindJSON(c, sc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, sc.service.CreateStudent(c.UserContext(), req, actorID))
}

// GET /api/t/students?page=&search=&dept_id=&level_id=
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, sc.service.GetStudents(c.UserContext(), dto.ListStudentsQuery{
		Page:    helper.QueryPage(c),
		Search:  c.Query("search"),
		DeptID:  helper.QueryUint(c, "dept_id"),
		LevelID: helper.QueryUint(c, "level_id"),
	}))
}

// GET /api/t/students/:id
func (sc *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, sc.service.GetStudent(c.UserContext(), id))
}

// PUT /api/a/students/:id
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateStudentRequest
	if err := helper.BindJSON(c, sc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, sc.service.UpdateStudent(c.UserContext(), id, req, actorID))
}

// DELETE /api/a/students/:id
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, sc.service.DeleteStudent(c.UserContext(), id, actorID))
}

// GET /api/t/students/:id/quizzes/:quiz_id/result
func (sc *StudentController) GetStudentQuizResult(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	quizID, err := helper.ParamUint(c, "quiz_id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid quiz_id")
	}
	return helper.JsonFeedback(c, sc.service.GetStudentQuizResult(c.UserContext(), id, quizID))
}

// GET /api/t/students/:id/results
func (sc *StudentController) GetStudentQuizzesResult(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, sc.service.GetStudentQuizzesResult(c.UserContext(), id))
}

// GET /api/s/results/:quiz_id
func (sc *StudentController) GetMyQuizResult(c *fiber.Ctx) error {
	studentID, err := featuresMiddleware.StudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student record not found")
	}
	quizID, err := helper.ParamUint(c, "quiz_id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid quiz_id")
	}
	return helper.JsonFeedback(c, sc.service.GetStudentQuizResult(c.UserContext(), studentID, quizID))
}

// GET /api/s/results
func (sc *StudentController) GetMyQuizzesResult(c *fiber.Ctx) error {
	studentID, err := featuresMiddleware.StudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student record not found")
	}
	return helper.JsonFeedback(c, sc.service.GetStudentQuizzesResult(c.UserContext(), studentID))
}
