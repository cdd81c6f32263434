package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/app/install/service"
	helper "schoolquiz_backend/internals/helpers"
)

type InstallController struct {
	DB      *gorm.DB
	service *service.InstallService
}

func NewInstallController(db *gorm.DB) *InstallController {
	return &InstallController{DB: db, service: service.NewInstallService(db)}
}

// POST /api/install
func (ic *InstallController) Install(c *fiber.Ctx) error {
	return helper.JsonCreated(c, ic.service.InstallApp(c.UserContext()))
}
