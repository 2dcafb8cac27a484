// Package osrm is the fallback routing backend speaking the OSRM route/v1 API.
package osrm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BackendName identifies the fallback backend in logs and metrics
const BackendName = "fallback"

const (
	// DefaultURL is the public OSRM demo server
	DefaultURL = "https://router.project-osrm.org/route/v1"

	maxResponseBytes = 8 << 20
	codeOK           = "Ok"
	codeNoRoute      = "NoRoute"
	codeInvalidQuery = "InvalidQuery"
)

type route struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
}

type responseBody struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

// Client calls the fallback routing service. Its routes carry no turn instructions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates the fallback routing client
func NewClient(cfg config.FallbackRoutingConfig, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.URL, "/")
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(slog.String("backend", BackendName)),
		now:        time.Now,
	}
}

// Name implements service.RouteBackend
func (c *Client) Name() string {
	return BackendName
}

// Route implements service.RouteBackend
func (c *Client) Route(ctx context.Context, req entity.RouteRequest) (*entity.RouteResult, error) {
	if !req.IsValid() {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingInvalidParams, BackendName, "invalid route request", nil)
	}

	start := c.now()
	result, err := c.do(ctx, req)
	metrics.RouteRequestDuration.WithLabelValues(BackendName).Observe(c.now().Sub(start).Seconds())

	if err != nil {
		metrics.RouteRequests.WithLabelValues(BackendName, "failure").Inc()

		return nil, err
	}

	metrics.RouteRequests.WithLabelValues(BackendName, "success").Inc()

	return result, nil
}

// buildURL renders {base}/{profile}/{lng,lat;lng,lat}?overview=full&geometries=geojson
func (c *Client) buildURL(req entity.RouteRequest) string {
	coordinates := fmt.Sprintf("%f,%f;%f,%f",
		req.Origin.Lng, req.Origin.Lat,
		req.Destination.Lng, req.Destination.Lat,
	)

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")

	return c.baseURL + "/" + req.Profile.FallbackName() + "/" + coordinates + "?" + query.Encode()
}

func (c *Client) do(ctx context.Context, req entity.RouteRequest) (*entity.RouteResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(req), nil)
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingInvalidParams, BackendName, "build request", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, BackendName, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, BackendName, "read response", err)
	}

	var parsed responseBody
	decodeErr := json.Unmarshal(body, &parsed)

	// OSRM reports NoRoute and InvalidQuery with a 400 and a JSON code
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := domainerrors.ClassifyStatus(resp.StatusCode)
		if decodeErr == nil && parsed.Code == codeNoRoute {
			kind = domainerrors.RoutingNoRouteFound
		}
		routingErr := domainerrors.NewRoutingError(kind, BackendName, parsed.Message, nil)
		routingErr.StatusCode = resp.StatusCode

		return nil, routingErr
	}

	if decodeErr != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "malformed response", decodeErr)
	}

	return c.parse(parsed, req.Profile)
}

func (c *Client) parse(parsed responseBody, profile entity.Profile) (*entity.RouteResult, error) {
	switch parsed.Code {
	case codeOK:
	case codeNoRoute:
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNoRouteFound, BackendName, parsed.Message, nil)
	case codeInvalidQuery:
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingInvalidParams, BackendName, parsed.Message, nil)
	default:
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, parsed.Code+": "+parsed.Message, nil)
	}

	if len(parsed.Routes) == 0 {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNoRouteFound, BackendName, "no routes in response", nil)
	}

	first := parsed.Routes[0]
	if first.Geometry == nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "route without geometry", nil)
	}

	line, ok := first.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "route geometry is not a line string", nil)
	}

	result := &entity.RouteResult{
		Geometry:        make([]entity.Coordinate, 0, len(line)),
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
		ProviderUsed:    entity.ProviderFallback,
		Profile:         profile,
		ComputedAt:      c.now(),
	}
	for _, point := range line {
		result.Geometry = append(result.Geometry, entity.CoordinateFromPoint(point))
	}

	if !result.IsValid() {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "route violates geometry or totals invariants", nil)
	}

	return result, nil
}
