package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Navigation event types published on the event topic
const (
	EventRouteComputed     = "route_computed"
	EventRouteRecalculated = "route_recalculated"
	EventRouteFailed       = "route_failed"
	EventOffRoute          = "off_route"
	EventTrackingStarted   = "tracking_started"
	EventTrackingStopped   = "tracking_stopped"
)

