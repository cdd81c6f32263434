package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope writers
=================================*/

// JsonFeedback writes fb with okStatus on success (default 200) or the
// envelope's own status on failure (default 400).
func JsonFeedback(c *fiber.Ctx, fb Feedback, okStatus ...int) error {
	status := fb.Status
	if fb.Success {
		if status == 0 {
			status = fiber.StatusOK
			if len(okStatus) > 0 {
				status = okStatus[0]
			}
		}
	} else if status == 0 {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fb)
}

func JsonCreated(c *fiber.Ctx, fb Feedback) error {
	return JsonFeedback(c, fb, fiber.StatusCreated)
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(FailStatus(status, message))
}

// JsonValidationError writes the messages of a validator error.
func JsonValidationError(c *fiber.Ctx, err error) error {
	return JsonFeedback(c, FailErrors("Validation failed", ValidationMessages(err)))
}

// JsonAppError writes err as an envelope, keeping an *AppError's status.
func JsonAppError(c *fiber.Ctx, err error, fallback string) error {
	return JsonFeedback(c, FromError(err, fallback))
}

// FiberErrorHandler renders fiber errors (404, 405, middleware aborts) as envelopes.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
		message = fe.Message
	}
	return c.Status(status).JSON(FailStatus(status, message))
}
