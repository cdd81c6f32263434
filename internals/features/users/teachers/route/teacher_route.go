package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/teachers/controller"
)

// TeacherAdminRoutes: account management, admins only.
func TeacherAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := app.Group("/teachers")
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
}

// TeacherStaffRoutes: read access for teachers and admins.
func TeacherStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	app.Get("/dashboard", ctrl.GetDashboardStats)

	teachers := app.Group("/teachers")
	teachers.Get("/", ctrl.GetTeachers)
	teachers.Get("/:id", ctrl.GetTeacher)
}
