package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signageURL = "https://campus.example/directions"

var library = entity.Coordinate{Lat: 4.591234, Lng: 101.124567}

func TestNewQRCodeService_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.QRCodeConfig
		size  int
		level qrcode.RecoveryLevel
		base  string
	}{
		{"empty config", config.QRCodeConfig{}, defaultSize, qrcode.Medium, defaultBaseURL},
		{"lower case level", config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "q"}, 512, qrcode.High, defaultBaseURL},
		{"highest", config.QRCodeConfig{ErrorCorrectionLevel: "H", BaseURL: signageURL}, defaultSize, qrcode.Highest, signageURL},
		{"unknown level", config.QRCodeConfig{ErrorCorrectionLevel: "X"}, defaultSize, qrcode.Medium, defaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, ok := NewQRCodeService(tt.cfg).(*destinationCodes)
			require.True(t, ok)

			assert.Equal(t, tt.size, codes.size)
			assert.Equal(t, tt.level, codes.level)
			assert.Equal(t, tt.base, codes.baseURL)
		})
	}
}

func TestGenerateDestinationQR_RendersRequestedSize(t *testing.T) {
	svc := NewQRCodeService(config.QRCodeConfig{Size: 200, BaseURL: signageURL})

	raw, err := svc.GenerateDestinationQR(library)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestGenerateDestinationQR_InvalidDestination(t *testing.T) {
	svc := NewQRCodeService(config.QRCodeConfig{})

	_, err := svc.GenerateDestinationQR(entity.Coordinate{Lat: 120, Lng: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestDestinationLink(t *testing.T) {
	assert.Equal(t, signageURL+"?lat=4.591234&lng=101.124567", DestinationLink(signageURL, library))
	assert.Equal(t, signageURL+"?building=lib&lat=4.591234&lng=101.124567", DestinationLink(signageURL+"?building=lib", library))
}

func TestParseDestinationQR(t *testing.T) {
	svc := NewQRCodeService(config.QRCodeConfig{BaseURL: signageURL})

	destination, err := svc.ParseDestinationQR("  " + DestinationLink(signageURL, library) + "\n")
	require.NoError(t, err)
	assert.Equal(t, library, destination)

	foreign, err := svc.ParseDestinationQR("https://maps.example/?lng=101.13&lat=4.59")
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinate{Lat: 4.59, Lng: 101.13}, foreign)

	invalid := []string{
		signageURL,
		signageURL + "?lat=abc&lng=101.12",
		signageURL + "?lat=4.59",
		"%zz",
	}
	for _, data := range invalid {
		_, err := svc.ParseDestinationQR(data)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate, data)
	}
}
