package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/topics/controller"
)

func TopicStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTopicController(db)

	topics := app.Group("/topics")
	topics.Post("/", ctrl.CreateTopic)
	topics.Get("/", ctrl.GetTopics)
	topics.Get("/:id", ctrl.GetTopic)
	topics.Put("/:id", ctrl.UpdateTopic)
	topics.Delete("/:id", ctrl.DeleteTopic)
}
