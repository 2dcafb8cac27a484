// Package qrcode renders and reads the directions deep links printed on
// campus signage.
package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultBaseURL = "http://localhost:8080/directions"
	defaultSize    = 256

	// decimals per axis, about 0.1 m at the equator
	linkPrecision = 6
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type destinationCodes struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds the destination QR service. Unknown recovery levels
// fall back to M.
func NewQRCodeService(cfg config.QRCodeConfig) service.QRCodeService {
	codes := &destinationCodes{
		size:    cfg.Size,
		level:   qrcode.Medium,
		baseURL: strings.TrimSpace(cfg.BaseURL),
	}
	if level, ok := recoveryLevels[strings.ToUpper(cfg.ErrorCorrectionLevel)]; ok {
		codes.level = level
	}
	if codes.size <= 0 {
		codes.size = defaultSize
	}
	if codes.baseURL == "" {
		codes.baseURL = defaultBaseURL
	}

	return codes
}

// DestinationLink is the directions URL a scanned code opens.
func DestinationLink(baseURL string, destination entity.Coordinate) string {
	query := url.Values{}
	query.Set("lat", formatAxis(destination.Lat))
	query.Set("lng", formatAxis(destination.Lng))

	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}

	return baseURL + separator + query.Encode()
}

func (s *destinationCodes) GenerateDestinationQR(destination entity.Coordinate) ([]byte, error) {
	if !destination.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(formatAxis(destination.Lat) + "," + formatAxis(destination.Lng))
	}

	code, err := qrcode.New(DestinationLink(s.baseURL, destination), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "encode destination link")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render destination QR")
	}

	return png, nil
}

// ParseDestinationQR accepts any link carrying numeric lat and lng, not only
// ones minted with this service's base URL.
func (s *destinationCodes) ParseDestinationQR(qrData string) (entity.Coordinate, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails("unreadable link")
	}

	query := link.Query()
	destination, ok := entity.ParseQueryCoordinate(query.Get("lat"), query.Get("lng"))
	if !ok {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails("link has no destination")
	}

	return destination, nil
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', linkPrecision, 64)
}
