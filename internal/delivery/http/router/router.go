// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler  *handler.NavigationHandler
	StreamHandler      *handler.StreamHandler
	DestinationHandler *handler.DestinationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler  *handler.NavigationHandler
	streamHandler      *handler.StreamHandler
	destinationHandler *handler.DestinationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler:  params.NavigationHandler,
		streamHandler:      params.StreamHandler,
		destinationHandler: params.DestinationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.Metrics)

	e.GET("/destinations/qr", r.destinationHandler.QRCode)

	nav := r.navigationHandler
	sessions := e.Group("/navigation/sessions")
	{
		sessions.POST("", nav.CreateSession)
		sessions.GET("/:id", nav.GetSession)
		sessions.DELETE("/:id", nav.CloseSession)
		sessions.GET("/:id/ws", r.streamHandler.Stream)

		sessions.POST("/:id/clicks", nav.MapClick)

		sessions.POST("/:id/acquisition", nav.StartAcquisition)
		sessions.POST("/:id/acquisition/manual", nav.UseManualLocation)
		sessions.DELETE("/:id/acquisition", nav.CancelAcquisition)

		sessions.POST("/:id/positions", nav.ReportPosition)
		sessions.POST("/:id/positions/errors", nav.ReportPositionError)

		sessions.PUT("/:id/profile", nav.SetProfile)
		sessions.PUT("/:id/buffer", nav.SetBufferDistance)
		sessions.DELETE("/:id/buffer", nav.ClearBufferOverride)

		sessions.POST("/:id/recalculate", nav.Recalculate)
		sessions.DELETE("/:id/tracking", nav.StopTracking)

		sessions.PUT("/:id/push-token", nav.SetPushToken)
	}
}
