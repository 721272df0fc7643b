package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/services"
)

func (handler *Handler) AdminUsers(c *fiber.Ctx) error {
	users, err := handler.directoryService.ListUsers(c.UserContext(), services.UserQuery{
		OrganizationName: c.Query("organization"),
		Date:             c.Query("date"),
		Search:           c.Query("search"),
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newUserResponses(users))
}

func (handler *Handler) AdminOrganizations(c *fiber.Ctx) error {
	organizations, err := handler.directoryService.ListOrganizations(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(organizations)
}

func (handler *Handler) AdminWorkTime(c *fiber.Ctx) error {
	entries, err := handler.attendanceService.ListWorkTime(c.UserContext(), services.WorkTimeQuery{
		OrganizationName: c.Query("organization"),
		Date:             c.Query("date"),
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newWorkTimeResponses(entries))
}
