package auth

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "schoolquiz_backend/internals/features/users/auth/repository"
	authService "schoolquiz_backend/internals/features/users/auth/service"
	helper "schoolquiz_backend/internals/helpers"
)

// AuthMiddleware accepts a live access token and stores its claims in Locals.
// The session behind the token must still be valid (not logged out).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := authService.ParseAccessToken(raw, false)
		if err != nil {
			slog.Debug("access token rejected", "err", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		if _, err := authRepo.FindRefreshToken(c.UserContext(), db, claims.TokenID, claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Session ended")
			}
			slog.Error("session lookup", "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals(helper.LocalUserID, claims.UserID)
		c.Locals(helper.LocalRole, claims.Type.String())
		c.Locals(helper.LocalTokenID, claims.TokenID)
		return c.Next()
	}
}
