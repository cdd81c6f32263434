package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	installRoute "schoolquiz_backend/internals/features/app/install/route"
	authRoute "schoolquiz_backend/internals/features/users/auth/route"
	rateLimiter "schoolquiz_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

// AppRoutes mounts the public setup endpoint.
func AppRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", rateLimiter.GlobalRateLimiter())
	installRoute.InstallRoutes(api, db)
}
