package notification

import (
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/goccy/go-json"
)

// Server to client message types
const (
	MessageTypeToast       = "toast"
	MessageTypeDialog      = "dialog"
	MessageTypeRoute       = "route"
	MessageTypeMarker      = "marker"
	MessageTypeDestination = "destination"
	MessageTypeState       = "state"
	MessageTypePong        = "pong"
)

// Client to server message types
const (
	MessageTypeDialogResult      = "dialog_result"
	MessageTypePosition          = "position"
	MessageTypePositionError     = "position_error"
	MessageTypeSensorUnsupported = "sensor_unsupported"
	MessageTypeClick             = "click"
	MessageTypePing              = "ping"
)

// Message is an outbound websocket frame
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// InboundMessage is a frame received from the device
type InboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ToastPayload is the data of a toast message
type ToastPayload struct {
	Level   service.ToastLevel `json:"level"`
	Message string             `json:"message"`
}

// DialogPayload is the data of a dialog message
type DialogPayload struct {
	ID string `json:"id"`
	service.ConfirmOptions
}

// DialogResultPayload is the device's answer to a dialog
type DialogResultPayload struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// PositionPayload is a sensor fix reported by the device
type PositionPayload struct {
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	Accuracy   float64    `json:"accuracy"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// Sample converts the payload to a position sample
func (p PositionPayload) Sample() entity.PositionSample {
	sample := entity.PositionSample{
		Coordinate:     entity.Coordinate{Lat: p.Lat, Lng: p.Lng},
		AccuracyMeters: p.Accuracy,
	}
	if p.CapturedAt != nil {
		sample.CapturedAt = *p.CapturedAt
	}

	return sample
}

// PositionErrorPayload is a sensor failure reported by the device
type PositionErrorPayload struct {
	Kind string `json:"kind"`
}

// ClickPayload is a map click reported by the device
type ClickPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoutePayload is the route to draw, coordinates in [lat, lng] order
type RoutePayload struct {
	Geometry     [][2]float64         `json:"geometry"`
	Distance     string               `json:"distance"`
	Duration     string               `json:"duration"`
	Profile      entity.Profile       `json:"profile"`
	Provider     entity.Provider      `json:"provider"`
	Instructions []entity.Instruction `json:"instructions,omitempty"`
}

func newRoutePayload(route *entity.RouteResult) RoutePayload {
	payload := RoutePayload{
		Geometry:     make([][2]float64, 0, len(route.Geometry)),
		Distance:     route.DistanceText(),
		Duration:     route.DurationText(),
		Profile:      route.Profile,
		Provider:     route.ProviderUsed,
		Instructions: route.Instructions,
	}
	for _, c := range route.Geometry {
		payload.Geometry = append(payload.Geometry, [2]float64{c.Lat, c.Lng})
	}

	return payload
}
