package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/levels/service"
	helper "schoolquiz_backend/internals/helpers"
)

type LevelController struct {
	DB      *gorm.DB
	service *service.LevelService
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db, service: service.NewLevelService(db)}
}

// GET /api/u/levels
func (lc *LevelController) GetLevels(c *fiber.Ctx) error {
	return helper.JsonFeedback(c, lc.service.GetLevels(c.UserContext()))
}
