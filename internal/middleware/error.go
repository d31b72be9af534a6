package middleware

import (
	"errors"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body returned for a failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level detail for validation failures
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Fields  []domain.ValidationError `json:"fields"`
}

// statusForCode maps a domain error code to an HTTP status. Anything unmapped
// is treated as an internal error.
func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound, domain.CodeQuizNotFound, domain.CodeQuizResultNotFound:
		return fiber.StatusNotFound
	case domain.CodeValidation, domain.CodeInvalidInput, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange, domain.CodeGenerationFailed:
		return fiber.StatusBadRequest
	case domain.CodeLLMServiceError, domain.CodeDatabaseError, domain.CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler returns the central fiber error handler. Handlers return errors
// instead of writing error bodies themselves; this is the single place where
// domain errors become HTTP responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		l := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Fields:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := statusForCode(domainErr.Code)
			if status >= fiber.StatusInternalServerError {
				l.Error("Request failed",
					zap.String("code", string(domainErr.Code)),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			} else {
				l.Info("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.String("path", c.Path()),
				)
			}
			return c.Status(status).JSON(ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    string(domain.CodeInternal),
				Message: fiberErr.Message,
			})
		}

		l.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
		})
	}
}
