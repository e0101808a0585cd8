package qrcode

import (
	"net/url"

	"tripmap/config"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	settings := config.QRCodeConfig{}
	if cfg != nil && cfg.QRCode != nil {
		settings = *cfg.QRCode
	}

	size := settings.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(settings.ErrorCorrectionLevel),
		baseURL:              settings.BaseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShareURL appends the trip owner as the "trip" query parameter of the base URL.
// It returns an empty string when sharing is not configured.
func (s *qrcodeService) ShareURL(ownerID string) string {
	if s.baseURL == "" {
		return ""
	}

	shareURL, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}

	query := shareURL.Query()
	query.Set("trip", ownerID)
	shareURL.RawQuery = query.Encode()

	return shareURL.String()
}

// GenerateShareQR renders the share URL as a PNG QR code.
func (s *qrcodeService) GenerateShareQR(ownerID string) ([]byte, error) {
	shareURL := s.ShareURL(ownerID)
	if shareURL == "" {
		return nil, domainerrors.ErrShareUnavailable
	}

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
