package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// extractBearerToken reads "Authorization: Bearer <jwt>", falling back to the
// access_token cookie.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookie := c.Cookies("access_token"); cookie != "" {
			auth = "Bearer " + cookie
		}
	}
	if auth == "" {
		return "", errors.New("Unauthorized - No token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("Unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("Unauthorized - Empty token")
	}
	return tok, nil
}
