package location

import (
	"wayfinder/internal/domain/service"
)

// DeviceSourceFactory gives every session its own device fed source
type DeviceSourceFactory struct{}

// NewDeviceSourceFactory creates the factory used by the HTTP service
func NewDeviceSourceFactory() *DeviceSourceFactory {
	return &DeviceSourceFactory{}
}

// NewSource implements service.PositionSourceFactory
func (DeviceSourceFactory) NewSource(string) service.PositionSource {
	return NewDeviceSource()
}

// NewSource implements service.PositionSourceFactory. The replay is shared,
// so every session continues the same track.
func (r *ReplaySource) NewSource(string) service.PositionSource {
	return r
}
