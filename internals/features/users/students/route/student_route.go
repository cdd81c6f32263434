package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/students/controller"
)

// StudentAdminRoutes: account management, admins only.
func StudentAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := app.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}

// StudentStaffRoutes: listing and results for teachers and admins.
func StudentStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := app.Group("/students")
	students.Get("/", ctrl.GetStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Get("/:id/results", ctrl.GetStudentQuizzesResult)
	students.Get("/:id/quizzes/:quiz_id/result", ctrl.GetStudentQuizResult)
}

// StudentSelfRoutes: a student's own results. Expects ResolveStudent upstream.
func StudentSelfRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	app.Get("/results", ctrl.GetMyQuizzesResult)
	app.Get("/results/:quiz_id", ctrl.GetMyQuizResult)
}
