package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/quizzes/dto"
	"schoolquiz_backend/internals/features/school/quizzes/service"
	helper "schoolquiz_backend/internals/helpers"
)

type QuizController struct {
	DB        *gorm.DB
	service   *service.QuizService
	validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, service: service.NewQuizService(db), validator: helper.NewValidator()}
}

func (qc *QuizController) CreateQuiz(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateQuizRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, qc.service.CreateQuiz(c.UserContext(), req, actorID))
}

// GET /quizzes?page=&topic_id=&search=&active=&paginate=
func (qc *QuizController) GetQuizzes(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, qc.service.GetQuizzes(c.UserContext(), dto.ListQuizzesQuery{
		Page:     helper.QueryPage(c),
		TopicID:  helper.QueryUint(c, "topic_id"),
		Search:   c.Query("search"),
		Active:   helper.QueryBoolPtr(c, "active"),
		Paginate: helper.QueryBool(c, "paginate", true),
	}))
}

// GET /api/s/quizzes lists active quizzes only.
func (qc *QuizController) GetActiveQuizzes(c *fiber.Ctx) error {
	active := true
	return helper.JsonFeedback(c, qc.service.GetQuizzes(c.UserContext(), dto.ListQuizzesQuery{
		Page:      helper.QueryPage(c),
		TopicID:   helper.QueryUint(c, "topic_id"),
		Search:    c.Query("search"),
		Active:    &active,
		Paginate:  helper.QueryBool(c, "paginate", true),
		HideToken: true,
	}))
}

func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.GetQuiz(c.UserContext(), dto.QuizFilter{ID: id}))
}

func (qc *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateQuizRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, qc.service.UpdateQuiz(c.UserContext(), id, req, actorID))
}

func (qc *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.DeleteQuiz(c.UserContext(), id, actorID))
}

// GET /api/s/quizzes/:id
func (qc *QuizController) GetQuizForStudent(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.GetQuiz(c.UserContext(), dto.QuizFilter{ID: id, HideToken: true}))
}

// GET /quizzes/:id/results
func (qc *QuizController) GetQuizResults(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.GetQuizResults(c.UserContext(), id))
}

// GET /quizzes/:id/report
func (qc *QuizController) GetQuizReport(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.GenerateQuizReport(c.UserContext(), id))
}

// POST /api/s/quizzes/validate-token
func (qc *QuizController) ValidateQuizToken(c *fiber.Ctx) error {
	var req dto.ValidateQuizTokenRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, qc.service.ValidateQuizToken(c.UserContext(), req))
}
