package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/activities/controller"
)

func ActivityUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityController(db)

	activities := app.Group("/activities")
	activities.Get("/", ctrl.GetMyActivities)
	activities.Delete("/:id", ctrl.DeleteMyActivity)
}
