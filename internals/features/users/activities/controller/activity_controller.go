package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/activities/service"
	helper "schoolquiz_backend/internals/helpers"
)

type ActivityController struct {
	DB      *gorm.DB
	service *service.ActivityService
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db, service: service.NewActivityService(db)}
}

// GET /api/u/activities?month=1..12 (defaults to the current month)
func (ac *ActivityController) GetMyActivities(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	month := int(time.Now().Month())
	if raw := c.Query("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month")
		}
	}
	return helper.JsonFeedback(c, ac.service.GetUserActivities(c.UserContext(), userID, month))
}

// DELETE /api/u/activities/:id
func (ac *ActivityController) DeleteMyActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, ac.service.DeleteUserActivity(c.UserContext(), id, userID))
}
