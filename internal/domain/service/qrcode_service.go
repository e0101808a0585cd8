package service

// QRCodeService renders share links as QR codes.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code pointing at the trip share URL.
	GenerateShareQR(ownerID string) ([]byte, error)

	// ShareURL returns the link encoded in the QR code.
	ShareURL(ownerID string) string
}
