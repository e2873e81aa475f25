package serverutils

import (
	"errors"

	"student-notes-be/internal/pkg/apperror"
	"student-notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// HandleServiceError maps a service error onto the HTTP response.
// Validation failures and missing resources are expected outcomes and
// surface their message verbatim; anything else is logged with its full
// cause and answered with a generic 500 body.
func HandleServiceError(ctx *fiber.Ctx, log logger.ILogger, module string, err error) error {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
	}

	var notFoundErr *apperror.NotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFoundErr.Message))
	}

	log.Error(module, "unexpected error", map[string]interface{}{
		"path":  ctx.Path(),
		"error": err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
}
