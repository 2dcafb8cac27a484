package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DestinationHandlerParams holds dependencies for DestinationHandler, injected by Fx.
type DestinationHandlerParams struct {
	fx.In

	QRCode service.QRCodeService
}

// DestinationHandler renders shareable destination links
type DestinationHandler struct {
	qrcode service.QRCodeService
}

// NewDestinationHandler is the constructor for DestinationHandler
func NewDestinationHandler(params DestinationHandlerParams) *DestinationHandler {
	return &DestinationHandler{qrcode: params.QRCode}
}

// QRCode returns a PNG QR code that opens directions to lat/lng
func (h *DestinationHandler) QRCode(c echo.Context) error {
	destination, ok := entity.ParseQueryCoordinate(c.QueryParam("lat"), c.QueryParam("lng"))
	if !ok {
		return domainerrors.ErrInvalidCoordinate.WithDetails("lat and lng query parameters are required")
	}

	png, err := h.qrcode.GenerateDestinationQR(destination)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
