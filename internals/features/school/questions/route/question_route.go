package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/questions/controller"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

func QuestionStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	app.Get("/quizzes/:quiz_id/questions", ctrl.GetQuestions)
	app.Post("/quizzes/:quiz_id/questions/upload", ctrl.UploadQuestions)

	questions := app.Group("/questions")
	questions.Post("/", ctrl.CreateQuestion)
	questions.Get("/:id", ctrl.GetQuestion)
	questions.Put("/:id", ctrl.UpdateQuestion)
	questions.Delete("/:id", ctrl.DeleteQuestion)
	questions.Post("/:id/options", ctrl.CreateOption)

	options := app.Group("/options")
	options.Put("/:id", ctrl.UpdateOption)
	options.Delete("/:id", ctrl.DeleteOption)
}

func QuestionStudentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	app.Get("/quizzes/:quiz_id/questions", featuresMiddleware.RequireQuizToken(), ctrl.GetStudentQuestions)
}
