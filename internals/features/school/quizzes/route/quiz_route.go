package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/quizzes/controller"
)

func QuizStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quizzes := app.Group("/quizzes")
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Get("/", ctrl.GetQuizzes)
	quizzes.Get("/:id", ctrl.GetQuiz)
	quizzes.Put("/:id", ctrl.UpdateQuiz)
	quizzes.Delete("/:id", ctrl.DeleteQuiz)
	quizzes.Get("/:id/results", ctrl.GetQuizResults)
	quizzes.Get("/:id/report", ctrl.GetQuizReport)
}

func QuizStudentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quizzes := app.Group("/quizzes")
	quizzes.Get("/", ctrl.GetActiveQuizzes)
	quizzes.Post("/validate-token", ctrl.ValidateQuizToken)
	quizzes.Get("/:id", ctrl.GetQuizForStudent)
	quizzes.Get("/:id/results", ctrl.GetQuizResults)
	quizzes.Get("/:id/report", ctrl.GetQuizReport)
}
