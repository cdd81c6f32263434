package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/answers/controller"
	rateLimiter "schoolquiz_backend/internals/middlewares"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

func AnswerStudentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnswerController(db)

	app.Post("/answers",
		rateLimiter.AnswerRateLimiter(),
		featuresMiddleware.RequireQuizToken(),
		ctrl.CreateAnswer,
	)
}
