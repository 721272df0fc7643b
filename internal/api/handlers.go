package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/worktime/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type Options struct {
	SecretKey     string
	CookieSecure  bool
	SessionTTL    time.Duration
	Location      *time.Location
	SiteURL       string
	QREncoder     services.QREncoder
	ArtifactStore services.ArtifactStore
	Logger        *zap.Logger
	// Clock overrides the attendance time source.
	Clock func() time.Time
}

type Handler struct {
	secretKey    []byte
	cookieSecure bool
	sessionTTL   time.Duration
	logger       *zap.Logger
	cookieCodec  *secureCookieCodec
	loginLimiter *attemptLimiter

	authService       *services.AuthService
	attendanceService *services.AttendanceService
	directoryService  *services.DirectoryService
	qrService         *services.QRService
	shiftService      *services.ShiftService
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.QREncoder == nil {
		return nil, errors.New("qr encoder is required")
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.SessionTTL <= 0 {
		options.SessionTTL = defaultSessionTTL
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	codec, err := newSecureCookieCodec([]byte(options.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("init cookie codec: %w", err)
	}

	handler := &Handler{
		secretKey:    []byte(options.SecretKey),
		cookieSecure: options.CookieSecure,
		sessionTTL:   options.SessionTTL,
		logger:       options.Logger,
		cookieCodec:  codec,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database, options), nil
}
