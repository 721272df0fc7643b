package api

import (
	"github.com/terraincognita07/worktime/internal/db"
	"github.com/terraincognita07/worktime/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, options Options) *Handler {
	repositories := db.NewRepositories(database)
	handler.authService = services.NewAuthService(repositories.Users, repositories.Organizations)
	handler.attendanceService = services.NewAttendanceService(
		repositories.WorkTimes,
		repositories.Organizations,
		repositories.Users,
		options.Location,
	)
	if options.Clock != nil {
		handler.attendanceService.SetClock(options.Clock)
	}
	handler.directoryService = services.NewDirectoryService(repositories.Users, repositories.Organizations)
	handler.qrService = services.NewQRService(
		repositories.Organizations,
		options.QREncoder,
		options.ArtifactStore,
		options.SiteURL,
		handler.logger.Named("qr"),
	)
	handler.shiftService = services.NewShiftService(repositories.Shifts, repositories.Organizations)
	return handler
}
