package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolquiz_backend/internals/features/users/user/controller"
)

// UserAllRoutes mounts the signed-in user's own profile.
func UserAllRoutes(app fiber.Router, db *gorm.DB) {
	selfCtrl := userController.NewUserController(db)

	app.Get("/me", selfCtrl.GetMe)
	app.Put("/me", selfCtrl.UpdateMe)
}
