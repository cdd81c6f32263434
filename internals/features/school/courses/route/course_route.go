package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/courses/controller"
)

// CourseStaffRoutes expects ResolveTeacher upstream.
func CourseStaffRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := app.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Get("/", ctrl.GetCourses)
	courses.Get("/:id", ctrl.GetCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)
}
