package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/services"
	"go.uber.org/zap"
)

const missingCredentialsMessage = `Both "email" and "password" are required.`

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusBadRequest, missingCredentialsMessage)
	}

	user, err := handler.authService.Authenticate(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		if services.KindOf(err) != services.KindAuth {
			return handler.respondServiceError(c, err)
		}
		handler.loginLimiter.recordFailure(limiterKey, now)
		handler.logger.Warn("login failed",
			zap.String("email", services.NormalizeAuthEmail(credentials.Email)),
			zap.String("ip", limiterKey),
		)
		return apiError(c, fiber.StatusBadRequest, services.MessageOf(err))
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user); err != nil {
		handler.logger.Error("create session", zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.logger.Info("login succeeded", zap.Uint("user_id", user.ID))
	return c.SendStatus(fiber.StatusAccepted)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
