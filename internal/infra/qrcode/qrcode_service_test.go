package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"tripmap/config"
	domainerrors "tripmap/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(cfg config.QRCodeConfig) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: &cfg}).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(config.QRCodeConfig{ErrorCorrectionLevel: tt.level})

			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, defaultSize, svc.size)
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"not configured", "", ""},
		{"plain base", "https://trip.example.com/share", "https://trip.example.com/share?trip=owner+1"},
		{"keeps existing query", "https://trip.example.com/?lang=en", "https://trip.example.com/?lang=en&trip=owner+1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(config.QRCodeConfig{BaseURL: tt.baseURL})

			assert.Equal(t, tt.want, svc.ShareURL("owner 1"))
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	svc := newService(config.QRCodeConfig{BaseURL: "https://trip.example.com/share", Size: 128})

	qrBytes, err := svc.GenerateShareQR("default")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateShareQR_NotConfigured(t *testing.T) {
	svc := NewQRCodeService(nil)

	qrBytes, err := svc.GenerateShareQR("default")

	assert.ErrorIs(t, err, domainerrors.ErrShareUnavailable)
	assert.Nil(t, qrBytes)
}
