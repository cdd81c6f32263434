package middleware

import (
	"github.com/gofiber/fiber/v2"

	quizService "schoolquiz_backend/internals/features/school/quizzes/service"
	helper "schoolquiz_backend/internals/helpers"
)

const (
	HeaderQuizToken = "X-Quiz-Token"
	LocalQuizID     = "quiz_id"
)

// RequireQuizToken admits requests carrying a token from the validate-token
// endpoint and stores its quiz id in Locals("quiz_id").
func RequireQuizToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderQuizToken)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusForbidden, "Quiz token required")
		}
		quizID, err := quizService.ParseQuizToken(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid quiz token")
		}
		c.Locals(LocalQuizID, quizID)
		return c.Next()
	}
}

// QuizID is the quiz admitted by RequireQuizToken, 0 when absent.
func QuizID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalQuizID).(uint)
	return id
}
