package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/users/auth/controller"
	rateLimiter "schoolquiz_backend/internals/middlewares"
	authMiddleware "schoolquiz_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth", rateLimiter.GlobalRateLimiter())

	// public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh", authController.RefreshToken)
	baseAuth.Post("/reset-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ResetPassword)

	// signed in
	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Post("/change-password", authController.ChangePassword)
}
