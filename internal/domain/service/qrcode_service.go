package service

import (
	"wayfinder/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDestinationQR renders a PNG QR code for a directions deep link
	GenerateDestinationQR(destination entity.Coordinate) ([]byte, error)

	// ParseDestinationQR parses a scanned deep link and returns the destination
	ParseDestinationQR(qrData string) (entity.Coordinate, error)
}
