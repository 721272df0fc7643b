package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires every endpoint. Fiber's non-strict routing also serves
// the trailing-slash form of each path.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Index)
	app.Get("/healthz", handler.Health)

	app.Post("/login", handler.Login)
	app.Post("/logout", handler.AuthRequired, handler.Logout)

	admin := app.Group("/administrator", handler.AuthRequired, handler.StaffOrAdmin)
	admin.Get("/user", handler.AdminUsers)
	admin.Get("/organizations", handler.AdminOrganizations)
	admin.Get("/worktime", handler.AdminWorkTime)

	organizations := app.Group("/organizations")
	organizations.Get("/:id/generateqr", handler.AuthRequired, handler.GenerateQR)
	organizations.Get("/:id/checkin", handler.AuthRequired, handler.CheckIn)
	organizations.Get("/:id/employees", handler.AuthRequired, handler.Employees)
	organizations.Get("/:id/worktime", handler.AuthRequired, handler.OrganizationWorkTime)
	organizations.Get("/:id/monthwork", handler.AuthRequired, handler.MonthWork)
	organizations.Get("/:id/shifts", handler.AuthRequired, handler.ListShifts)
	organizations.Post("/:id/shifts", handler.AuthRequired, handler.CreateShift)
}
