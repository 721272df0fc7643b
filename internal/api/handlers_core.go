package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, world"})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
