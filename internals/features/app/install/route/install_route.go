package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/app/install/controller"
)

func InstallRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstallController(db)
	app.Post("/install", ctrl.Install)
}
