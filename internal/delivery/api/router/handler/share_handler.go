package handler

import (
	"net/http"

	"tripmap/internal/delivery/api/response"
	deliverycontext "tripmap/internal/delivery/context"
	"tripmap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const headerShareURL = "X-Share-Url"

// ShareHandler renders the trip share link.
type ShareHandler struct {
	qrCodeSvc service.QRCodeService
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(qrCodeSvc service.QRCodeService) *ShareHandler {
	return &ShareHandler{qrCodeSvc: qrCodeSvc}
}

// ShareQR returns the share link of the authenticated trip as a PNG QR code.
func (h *ShareHandler) ShareQR(c echo.Context) error {
	ownerID, ok := deliverycontext.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Owner not found in context")
	}

	png, err := h.qrCodeSvc.GenerateShareQR(ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerShareURL, h.qrCodeSvc.ShareURL(ownerID))

	return c.Blob(http.StatusOK, "image/png", png)
}
