package ors

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeResponse = `{
  "type": "FeatureCollection",
  "bbox": [101.125, 4.589, 101.127, 4.592],
  "features": [{
    "type": "Feature",
    "bbox": [101.125, 4.589, 101.127, 4.592],
    "properties": {
      "segments": [{
        "distance": 1249.5,
        "duration": 720.2,
        "steps": [
          {"distance": 800.1, "duration": 480.0, "instruction": "Head north on Jalan Universiti"},
          {"distance": 449.4, "duration": 240.2, "instruction": "Arrive at your destination"}
        ]
      }],
      "summary": {"distance": 1249.5, "duration": 720.2}
    },
    "geometry": {
      "type": "LineString",
      "coordinates": [[101.125, 4.589], [101.126, 4.590], [101.127, 4.592]]
    }
  }]
}`

var campusRequest = entity.RouteRequest{
	Origin:      entity.Coordinate{Lat: 4.589, Lng: 101.125},
	Destination: entity.Coordinate{Lat: 4.592, Lng: 101.127},
	Profile:     entity.ProfileWalking,
}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*config.PrimaryRoutingConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.PrimaryRoutingConfig{
		URL:     server.URL,
		Timeout: 2 * time.Second,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Route_ParsesFeatureCollection(t *testing.T) {
	var received requestBody
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(routeResponse))
	}, func(cfg *config.PrimaryRoutingConfig) {
		cfg.APIKey = "secret"
	})

	route, err := client.Route(context.Background(), campusRequest)
	require.NoError(t, err)

	assert.Equal(t, "foot-walking", received.Profile)
	assert.True(t, received.Instructions)
	assert.Equal(t, "text", received.InstructionsFormat)
	assert.Equal(t, "recommended", received.Preference)
	assert.Equal(t, [][2]float64{{101.125, 4.589}, {101.127, 4.592}}, received.Coordinates)

	require.Len(t, route.Geometry, 3)
	assert.Equal(t, entity.Coordinate{Lat: 4.589, Lng: 101.125}, route.Geometry[0])
	assert.InDelta(t, 1249.5, route.DistanceMeters, 0.001)
	assert.InDelta(t, 720.2, route.DurationSeconds, 0.001)
	require.Len(t, route.Instructions, 2)
	assert.Equal(t, "Head north on Jalan Universiti", route.Instructions[0].Text)
	assert.Equal(t, entity.ProviderPrimary, route.ProviderUsed)
	assert.Equal(t, entity.ProfileWalking, route.Profile)
}

func TestClient_Route_ClassifiesStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   domainerrors.RoutingErrorKind
	}{
		{http.StatusBadRequest, domainerrors.RoutingInvalidParams},
		{http.StatusTooManyRequests, domainerrors.RoutingRateLimited},
		{http.StatusBadGateway, domainerrors.RoutingServiceUnavailable},
		{http.StatusForbidden, domainerrors.RoutingGeneric},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)

			_, err := client.Route(context.Background(), campusRequest)

			var routingErr *domainerrors.RoutingError
			require.ErrorAs(t, err, &routingErr)
			assert.Equal(t, tt.kind, routingErr.Kind)
			assert.Equal(t, tt.status, routingErr.StatusCode)
		})
	}
}

func TestClient_Route_PayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind domainerrors.RoutingErrorKind
	}{
		{"string error", `{"error": "Route could not be found"}`, domainerrors.RoutingNoRouteFound},
		{"object error", `{"error": {"code": 2010, "message": "Could not find routable point within a radius of 350.0 meters"}}`, domainerrors.RoutingNoRouteFound},
		{"service error", `{"error": {"code": 2099, "message": "Unknown internal error"}}`, domainerrors.RoutingServiceError},
		{"empty features", `{"type": "FeatureCollection", "features": []}`, domainerrors.RoutingNoRouteFound},
		{"single point", `{"features": [{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[101.125, 4.589]]}}]}`, domainerrors.RoutingServiceError},
		{"malformed", `{"features": [`, domainerrors.RoutingServiceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			_, err := client.Route(context.Background(), campusRequest)

			var routingErr *domainerrors.RoutingError
			require.ErrorAs(t, err, &routingErr)
			assert.Equal(t, tt.kind, routingErr.Kind)
		})
	}
}

func TestClient_Route_RejectsInvalidRequestWithoutCalling(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}, nil)

	req := campusRequest
	req.Origin = entity.Coordinate{Lat: 95, Lng: 0}

	_, err := client.Route(context.Background(), req)

	var routingErr *domainerrors.RoutingError
	require.ErrorAs(t, err, &routingErr)
	assert.Equal(t, domainerrors.RoutingInvalidParams, routingErr.Kind)
	assert.Zero(t, hits.Load())
}

func TestClient_Route_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(config.PrimaryRoutingConfig{URL: url, Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Route(context.Background(), campusRequest)

	var routingErr *domainerrors.RoutingError
	require.ErrorAs(t, err, &routingErr)
	assert.Equal(t, domainerrors.RoutingNetworkError, routingErr.Kind)
}

func TestClient_Route_LocalRateLimit(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(routeResponse))
	}, func(cfg *config.PrimaryRoutingConfig) {
		cfg.RequestsPerSecond = 0.001
		cfg.Burst = 1
	})

	_, err := client.Route(context.Background(), campusRequest)
	require.NoError(t, err)

	_, err = client.Route(context.Background(), campusRequest)

	var routingErr *domainerrors.RoutingError
	require.ErrorAs(t, err, &routingErr)
	assert.Equal(t, domainerrors.RoutingRateLimited, routingErr.Kind)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_Route_BreakerOpensOnConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *config.PrimaryRoutingConfig) {
		cfg.Breaker = config.BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute}
	})

	for range 2 {
		_, err := client.Route(context.Background(), campusRequest)
		require.Error(t, err)
	}

	_, err := client.Route(context.Background(), campusRequest)

	var routingErr *domainerrors.RoutingError
	require.ErrorAs(t, err, &routingErr)
	assert.Equal(t, domainerrors.RoutingServiceUnavailable, routingErr.Kind)
	assert.Equal(t, "circuit breaker open", routingErr.Detail)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the service")
}

func TestClient_Route_NoRouteDoesNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"features": []}`))
	}, func(cfg *config.PrimaryRoutingConfig) {
		cfg.Breaker = config.BreakerConfig{ConsecutiveFailures: 1, OpenTimeout: time.Minute}
	})

	for range 3 {
		_, err := client.Route(context.Background(), campusRequest)
		require.Error(t, err)
	}

	assert.Equal(t, int32(3), hits.Load())
}
