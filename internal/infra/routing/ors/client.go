// Package ors is the primary routing backend speaking the OpenRouteService directions API.
package ors

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// BackendName identifies the primary backend in logs and metrics
const BackendName = "primary"

const (
	maxResponseBytes = 8 << 20
	maxErrorBytes    = 4 << 10

	// ORS internal error codes for unroutable points
	codeRouteNotFound = 2009
	codePointNotFound = 2010
)

type requestBody struct {
	Coordinates        [][2]float64 `json:"coordinates"`
	Instructions       bool         `json:"instructions"`
	InstructionsFormat string       `json:"instructions_format"`
	Preference         string       `json:"preference"`
	Profile            string       `json:"profile"`
}

type step struct {
	Instruction string  `json:"instruction"`
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
}

type segment struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Steps    []step  `json:"steps"`
}

type feature struct {
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties struct {
		Segments []segment `json:"segments"`
		Summary  struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"properties"`
}

type responseBody struct {
	Type     string          `json:"type"`
	Features []feature       `json:"features"`
	Error    json.RawMessage `json:"error"`
}

type payloadError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client calls the primary routing service behind a circuit breaker and a local rate limiter
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*entity.RouteResult]
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates the primary routing client
func NewClient(cfg config.PrimaryRoutingConfig, logger *slog.Logger) *Client {
	client := &Client{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(slog.String("backend", BackendName)),
		now:        time.Now,
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	client.breaker = newBreaker(cfg.Breaker, client.logger)

	return client
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*entity.RouteResult] {
	name := "routing-" + BackendName
	consecutiveFailures := cfg.ConsecutiveFailures
	if consecutiveFailures == 0 {
		consecutiveFailures = 3
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[*entity.RouteResult](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		},
		// Caller mistakes and unroutable points say nothing about service health
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}

			var routingErr *domainerrors.RoutingError
			if errors.As(err, &routingErr) {
				return routingErr.Kind == domainerrors.RoutingInvalidParams ||
					routingErr.Kind == domainerrors.RoutingNoRouteFound
			}

			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state transition",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
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

	if c.limiter != nil && !c.limiter.Allow() {
		metrics.RouteRequests.WithLabelValues(BackendName, "rejected").Inc()

		return nil, domainerrors.NewRoutingError(domainerrors.RoutingRateLimited, BackendName, "local rate limit exceeded", nil)
	}

	start := c.now()
	result, err := c.breaker.Execute(func() (*entity.RouteResult, error) {
		return c.do(ctx, req)
	})
	metrics.RouteRequestDuration.WithLabelValues(BackendName).Observe(c.now().Sub(start).Seconds())

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RouteRequests.WithLabelValues(BackendName, "rejected").Inc()

		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceUnavailable, BackendName, "circuit breaker open", err)
	}
	if err != nil {
		metrics.RouteRequests.WithLabelValues(BackendName, "failure").Inc()

		return nil, err
	}

	metrics.RouteRequests.WithLabelValues(BackendName, "success").Inc()

	return result, nil
}

func (c *Client) do(ctx context.Context, req entity.RouteRequest) (*entity.RouteResult, error) {
	payload, err := json.Marshal(requestBody{
		Coordinates: [][2]float64{
			{req.Origin.Lng, req.Origin.Lat},
			{req.Destination.Lng, req.Destination.Lat},
		},
		Instructions:       true,
		InstructionsFormat: "text",
		Preference:         "recommended",
		Profile:            req.Profile.PrimaryName(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingInvalidParams, BackendName, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json, application/geo+json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, BackendName, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		routingErr := domainerrors.NewRoutingError(domainerrors.ClassifyStatus(resp.StatusCode), BackendName, strings.TrimSpace(string(detail)), nil)
		routingErr.StatusCode = resp.StatusCode

		return nil, routingErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, BackendName, "read response", err)
	}

	return c.parse(body, req.Profile)
}

func (c *Client) parse(body []byte, profile entity.Profile) (*entity.RouteResult, error) {
	var parsed responseBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "malformed response", err)
	}

	if routingErr := classifyPayloadError(parsed.Error); routingErr != nil {
		return nil, routingErr
	}

	if len(parsed.Features) == 0 {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNoRouteFound, BackendName, "no route found between these locations", nil)
	}

	first := parsed.Features[0]
	if first.Geometry == nil {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "feature without geometry", nil)
	}

	line, ok := first.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "route geometry is not a line string", nil)
	}

	result := &entity.RouteResult{
		Geometry:     make([]entity.Coordinate, 0, len(line)),
		ProviderUsed: entity.ProviderPrimary,
		Profile:      profile,
		ComputedAt:   c.now(),
	}
	for _, point := range line {
		result.Geometry = append(result.Geometry, entity.CoordinateFromPoint(point))
	}

	if len(first.Properties.Segments) > 0 {
		seg := first.Properties.Segments[0]
		result.DistanceMeters = seg.Distance
		result.DurationSeconds = seg.Duration
		result.Instructions = make([]entity.Instruction, 0, len(seg.Steps))
		for _, s := range seg.Steps {
			result.Instructions = append(result.Instructions, entity.Instruction{
				Text:            s.Instruction,
				DistanceMeters:  s.Distance,
				DurationSeconds: s.Duration,
			})
		}
	} else {
		result.DistanceMeters = first.Properties.Summary.Distance
		result.DurationSeconds = first.Properties.Summary.Duration
	}

	if !result.IsValid() {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, BackendName, "route violates geometry or totals invariants", nil)
	}

	return result, nil
}

// classifyPayloadError handles the "error" member of a 2xx body, which is either a string or {code, message}
func classifyPayloadError(raw json.RawMessage) *domainerrors.RoutingError {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var detail payloadError
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		detail.Message = text
	} else if err := json.Unmarshal(trimmed, &detail); err != nil {
		detail.Message = string(trimmed)
	}

	kind := domainerrors.RoutingServiceError
	message := strings.ToLower(detail.Message)
	if detail.Code == codeRouteNotFound || detail.Code == codePointNotFound ||
		strings.Contains(message, "route") && (strings.Contains(message, "not") || strings.Contains(message, "unable")) ||
		strings.Contains(message, "routable point") {
		kind = domainerrors.RoutingNoRouteFound
	}

	return domainerrors.NewRoutingError(kind, BackendName, detail.Message, nil)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
