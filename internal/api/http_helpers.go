package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/services"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindAuth:
		return fiber.StatusUnauthorized
	case services.KindAuthorization:
		return fiber.StatusForbidden
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict, services.KindState:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError maps a service error onto the JSON error contract.
// Internal failures are logged and answered generically.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	// A repeated check-out is a client mistake on the scan endpoint.
	if errors.Is(err, services.ErrAlreadyCheckedOut) {
		return apiError(c, fiber.StatusBadRequest, services.MessageOf(err))
	}

	kind := services.KindOf(err)
	if kind == services.KindInternal {
		handler.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return apiError(c, statusForKind(kind), services.MessageOf(err))
}

func organizationIDParam(c *fiber.Ctx) (uint, bool) {
	value, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
