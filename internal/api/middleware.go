package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/logging"
	"github.com/terraincognita07/worktime/internal/models"
)

const (
	authCookieName = "worktime_session"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	c.Locals(logging.UserIDLocal, user.ID)
	return c.Next()
}

// StaffOrAdmin guards the administrator surface. It runs after AuthRequired.
func (handler *Handler) StaffOrAdmin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsStaffOrAdmin() {
		return apiError(c, fiber.StatusForbidden, "staff access required")
	}
	return c.Next()
}
