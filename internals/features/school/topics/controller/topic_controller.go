package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/topics/dto"
	"schoolquiz_backend/internals/features/school/topics/service"
	helper "schoolquiz_backend/internals/helpers"
)

type TopicController struct {
	DB        *gorm.DB
	service   *service.TopicService
	validator *validator.Validate
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db, service: service.NewTopicService(db), validator: helper.NewValidator()}
}

func (tc *TopicController) CreateTopic(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateTopicRequest
	if err := helper.BindJSON(c, tc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, tc.service.CreateTopic(c.UserContext(), req, actorID))
}

// GET /topics?course_id=&page=&search=&paginate=
func (tc *TopicController) GetTopics(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, tc.service.GetTopics(c.UserContext(), dto.ListTopicsQuery{
		Page:     helper.QueryPage(c),
		CourseID: helper.QueryUint(c, "course_id"),
		Search:   c.Query("search"),
		Paginate: helper.QueryBool(c, "paginate", true),
	}))
}

func (tc *TopicController) GetTopic(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, tc.service.GetTopic(c.UserContext(), id))
}

func (tc *TopicController) UpdateTopic(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateTopicRequest
	if err := helper.BindJSON(c, tc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, tc.service.UpdateTopic(c.UserContext(), id, req, actorID))
}

func (tc *TopicController) DeleteTopic(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, tc.service.DeleteTopic(c.UserContext(), id, actorID))
}
