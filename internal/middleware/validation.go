package middleware

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidateQuizID rejects requests whose :id path parameter is not a ULID
// before any handler or database work runs.
func ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validation.IsValidULID(id) {
			return domain.NewError(domain.CodeInvalidFormat, "Invalid quiz ID format", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}
