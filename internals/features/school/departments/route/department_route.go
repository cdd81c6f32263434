package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/departments/controller"
)

func DepartmentAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	departments := app.Group("/departments")
	departments.Post("/", ctrl.CreateDepartment)
	departments.Put("/:id", ctrl.UpdateDepartment)
	departments.Delete("/:id", ctrl.DeleteDepartment)
}

// DepartmentUserRoutes is read access for any signed-in user.
func DepartmentUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	departments := app.Group("/departments")
	departments.Get("/", ctrl.GetDepartments)
	departments.Get("/:id", ctrl.GetDepartment)
}
