package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Metrics exposes the Prometheus registry
var Metrics = echo.WrapHandler(promhttp.Handler())
