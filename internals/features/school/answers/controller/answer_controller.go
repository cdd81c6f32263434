package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/answers/dto"
	"schoolquiz_backend/internals/features/school/answers/service"
	helper "schoolquiz_backend/internals/helpers"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

type AnswerController struct {
	DB        *gorm.DB
	service   *service.AnswerService
	validator *validator.Validate
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{DB: db, service: service.NewAnswerService(db), validator: helper.NewValidator()}
}

// POST /api/s/answers
func (ac *AnswerController) CreateAnswer(c *fiber.Ctx) error {
	studentID, err := featuresMiddleware.StudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student record not found")
	}
	var req dto.CreateAnswerRequest
	if err := helper.BindJSON(c, ac.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	if featuresMiddleware.QuizID(c) != req.QuizID {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid quiz token")
	}
	return helper.JsonCreated(c, ac.service.CreateAnswer(c.UserContext(), studentID, req))
}
