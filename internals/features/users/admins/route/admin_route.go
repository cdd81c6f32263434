package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/admins/controller"
)

// AdminAdminRoutes mounts admin management under an admin-only group.
func AdminAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	app.Get("/dashboard", ctrl.GetDashboardStats)

	admins := app.Group("/admins")
	admins.Post("/", ctrl.CreateAdmin)
	admins.Get("/", ctrl.GetAdmins)
	admins.Get("/:id", ctrl.GetAdmin)
	admins.Put("/:id", ctrl.UpdateAdmin)
	admins.Delete("/:id", ctrl.DeleteAdmin)
}
