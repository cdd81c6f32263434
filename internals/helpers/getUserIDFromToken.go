package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys written by the auth middleware.
const (
	LocalUserID  = "user_id"
	LocalRole    = "userRole"
	LocalTokenID = "token_id"
)

// GetUserIDFromToken reads the signed-in user id from c.Locals("user_id").
// Returns 401 when the request is not authenticated.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	switch v := c.Locals(LocalUserID).(type) {
	case uint:
		if v != 0 {
			return v, nil
		}
	case int:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}

// GetRoleFromToken is the user type of the signed-in user, empty when unknown.
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// GetTokenIDFromToken is the refresh token id the access token was issued for.
func GetTokenIDFromToken(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalTokenID).(string)
	return id
}
