package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/levels/controller"
)

func LevelUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLevelController(db)
	app.Get("/levels", ctrl.GetLevels)
}
