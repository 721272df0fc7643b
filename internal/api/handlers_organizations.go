package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/worktime/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GenerateQR(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	code, err := handler.qrService.Issue(c.UserContext(), user, organizationID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.logger.Info("qr code issued",
		zap.Uint("organization_id", organizationID),
		zap.String("stored_at", code.Location),
	)
	c.Attachment(code.Filename)
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(code.PNG)
}

func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	result, err := handler.attendanceService.CheckIn(c.UserContext(), *user, organizationID)
	if err != nil {
		if services.KindOf(err) == services.KindConflict {
			handler.logger.Warn("check-in rejected",
				zap.Uint("user_id", user.ID),
				zap.Uint("organization_id", organizationID),
				zap.Error(err),
			)
		}
		return handler.respondServiceError(c, err)
	}

	handler.logger.Info("check-in registered",
		zap.Uint("user_id", user.ID),
		zap.Uint("organization_id", organizationID),
		zap.String("action", string(result.Action)),
	)
	return c.JSON(checkInResponse{
		Message:  result.Message(),
		Action:   string(result.Action),
		WorkTime: newWorkTimeResponse(result.Entry),
	})
}

func (handler *Handler) Employees(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	users, err := handler.directoryService.ListEmployees(c.UserContext(), user, organizationID, c.Query("date"), c.Query("search"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newUserResponses(users))
}

func (handler *Handler) OrganizationWorkTime(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	entries, err := handler.attendanceService.ListOrganizationWorkTime(c.UserContext(), user, organizationID, c.Query("date"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newWorkTimeResponses(entries))
}

func (handler *Handler) MonthWork(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	total, err := handler.attendanceService.MonthlyTotal(c.UserContext(), user, organizationID, services.MonthlyTotalInput{
		UserEmail: c.Query("user"),
		Year:      c.Query("year"),
		Month:     c.Query("month"),
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(monthlyTotalResponse{
		DurationSum: services.FormatDuration(total.Duration),
		OpenRecords: total.OpenRecords,
	})
}

func (handler *Handler) ListShifts(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	shifts, err := handler.shiftService.List(c.UserContext(), user, organizationID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(shifts)
}

func (handler *Handler) CreateShift(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	organizationID, ok := organizationIDParam(c)
	if !ok {
		return handler.respondServiceError(c, services.ErrOrganizationNotFound)
	}

	input := services.ShiftInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	shift, err := handler.shiftService.Create(c.UserContext(), user, organizationID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shift)
}
