package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/terraincognita07/worktime/internal/models"
	"go.uber.org/zap"
)

type QREncoder interface {
	EncodePNG(content string) ([]byte, error)
}

// ArtifactStore keeps a copy of issued QR images. It returns the location
// the copy was written to.
type ArtifactStore interface {
	SaveQRCode(ctx context.Context, organizationID uint, filename string, png []byte) (string, error)
}

type QRCode struct {
	Filename string
	Link     string
	PNG      []byte
	Location string
}

type QRService struct {
	organizations OrganizationLookup
	encoder       QREncoder
	store         ArtifactStore
	siteURL       string
	logger        *zap.Logger
}

func NewQRService(organizations OrganizationLookup, encoder QREncoder, store ArtifactStore, siteURL string, logger *zap.Logger) *QRService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QRService{
		organizations: organizations,
		encoder:       encoder,
		store:         store,
		siteURL:       strings.TrimRight(strings.TrimSpace(siteURL), "/"),
		logger:        logger,
	}
}

func (service *QRService) CheckInLink(organizationID uint) string {
	return fmt.Sprintf("%s/organizations/%d/checkin/", service.siteURL, organizationID)
}

// Issue renders the organization's check-in link. Only the organization's
// own account may request it. A failing store is logged and ignored.
func (service *QRService) Issue(ctx context.Context, caller *models.User, organizationID uint) (QRCode, error) {
	organization, err := loadOwnedOrganization(ctx, service.organizations, caller, organizationID)
	if err != nil {
		return QRCode{}, err
	}

	link := service.CheckInLink(organization.ID)
	png, err := service.encoder.EncodePNG(link)
	if err != nil {
		return QRCode{}, fmt.Errorf("%w: %v", ErrQRCodeEncodeFailed, err)
	}

	code := QRCode{
		Filename: QRCodeFilename(organization),
		Link:     link,
		PNG:      png,
	}
	if service.store != nil {
		location, err := service.store.SaveQRCode(ctx, organization.ID, code.Filename, png)
		if err != nil {
			service.logger.Warn("store qr code",
				zap.Uint("organization_id", organization.ID),
				zap.Error(err),
			)
		} else {
			code.Location = location
		}
	}
	return code, nil
}

// QRCodeFilename returns "<name>_qr.png" with the name reduced to characters
// safe in paths and Content-Disposition headers.
func QRCodeFilename(organization models.Organization) string {
	var builder strings.Builder
	for _, char := range strings.TrimSpace(organization.Name) {
		switch {
		case unicode.IsLetter(char), unicode.IsDigit(char), char == '-', char == '_', char == '.':
			builder.WriteRune(char)
		case unicode.IsSpace(char):
			builder.WriteRune('_')
		}
	}
	name := strings.Trim(builder.String(), ".")
	if name == "" {
		name = fmt.Sprintf("organization-%d", organization.ID)
	}
	return name + "_qr.png"
}
