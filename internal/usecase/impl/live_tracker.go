package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"

	"github.com/pkg/errors"
)

const defaultCheckInterval = 5 * time.Second

// trackerHooks connects the live tracker to the owning session
type trackerHooks struct {
	// recalculate computes a new route from origin. It may block.
	recalculate func(ctx context.Context, origin entity.Coordinate) error
	// onLocationError reports a sensor failure. It must not block.
	onLocationError func(ctx context.Context, err *domainerrors.LocationError)
	// onOffRoute runs once per triggered recalculation
	onOffRoute func(ctx context.Context, origin entity.Coordinate, deviationMeters float64)
	// onChange runs after the tracker started or stopped
	onChange func(ctx context.Context, running bool)
}

// LiveTracker follows the user's position during navigation and triggers a
// recalculation when they leave the buffer around the route.
type LiveTracker struct {
	ctx      context.Context
	source   service.PositionSource
	sink     service.NotificationSink
	renderer service.MapRenderer
	cfg      config.TrackingConfig
	hooks    trackerHooks
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	sub     service.Subscription
	cancel  context.CancelFunc
	done    chan struct{}

	inFlight atomic.Bool
	work     sync.WaitGroup
}

func newLiveTracker(
	ctx context.Context,
	source service.PositionSource,
	channel service.SessionChannel,
	cfg config.TrackingConfig,
	hooks trackerHooks,
	logger *slog.Logger,
) *LiveTracker {
	return &LiveTracker{
		ctx:      ctx,
		source:   source,
		sink:     channel,
		renderer: channel,
		cfg:      cfg,
		hooks:    hooks,
		logger:   logger,
	}
}

// Running reports whether tracking is active
func (t *LiveTracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// Start opens the tracking subscription and the periodic proximity check. It
// returns false without side effects when tracking is already running.
func (t *LiveTracker) Start(ctx context.Context, tc *trackingContext) (bool, error) {
	if tc == nil {
		return false, domainerrors.ErrOriginNotSet.WithDetails("no route to track")
	}

	t.mu.Lock()
	if t.running {
		t.mu.Unlock()

		return false, nil
	}

	runCtx, cancel := context.WithCancel(t.ctx)
	sub, err := t.source.Watch(runCtx, service.WatchOptions{
		HighAccuracy: true,
		Timeout:      t.cfg.SampleTimeout,
		MaxSampleAge: t.cfg.MaxSampleAge,
	})
	if err != nil {
		t.mu.Unlock()
		cancel()

		return false, errors.Wrap(err, "failed to watch position for tracking")
	}

	t.running = true
	t.sub = sub
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.loop(runCtx, sub, tc, t.done)
	t.mu.Unlock()

	t.logger.Info("Live tracking started", slog.Int("buffer_m", int(tc.Snapshot().BufferDistance)))
	t.sink.Toast(ctx, service.ToastSuccess, "Live tracking started")
	t.changed(ctx, true)

	return true, nil
}

// Stop cancels the subscription and the periodic check. When it returns
// neither is left running. Stopping a stopped tracker is a no-op.
func (t *LiveTracker) Stop(ctx context.Context) bool {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()

		return false
	}
	t.running = false
	t.cancel()
	t.sub.Cancel()
	done := t.done
	t.sub = nil
	t.cancel = nil
	t.mu.Unlock()

	<-done
	t.work.Wait()

	t.logger.Info("Live tracking stopped")
	t.sink.Toast(ctx, service.ToastInfo, "Live tracking stopped")
	t.changed(ctx, false)

	return true
}

func (t *LiveTracker) loop(ctx context.Context, sub service.Subscription, tc *trackingContext, done chan struct{}) {
	defer close(done)

	interval := t.cfg.CheckInterval
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Err != nil {
				if t.hooks.onLocationError != nil {
					t.hooks.onLocationError(ctx, event.Err)
				}

				continue
			}
			t.onSample(ctx, tc, event.Sample)

		case <-ticker.C:
			t.checkProximity(ctx, tc)
		}
	}
}

func (t *LiveTracker) onSample(ctx context.Context, tc *trackingContext, sample entity.PositionSample) {
	tc.setOrigin(sample.Coordinate)
	t.renderer.MovePositionMarker(ctx, sample.Coordinate)
	t.checkProximity(ctx, tc)
}

// checkProximity compares the distance to the nearest route vertex against the
// buffer. Sample and timer driven checks share the in-flight guard, so only one
// recalculation runs at a time.
func (t *LiveTracker) checkProximity(ctx context.Context, tc *trackingContext) {
	snapshot := tc.Snapshot()
	if snapshot.CurrentRoute == nil || !snapshot.CurrentOrigin.IsValid() {
		return
	}

	deviation := snapshot.CurrentRoute.DistanceToNearestVertex(snapshot.CurrentOrigin)
	if deviation <= snapshot.BufferDistance.Meters() {
		return
	}

	if !t.inFlight.CompareAndSwap(false, true) {
		return
	}

	metrics.OffRouteDetections.Inc()
	t.logger.Info("User is off route",
		slog.Float64("deviation_m", deviation),
		slog.Int("buffer_m", int(snapshot.BufferDistance)),
	)
	t.sink.Toast(ctx, service.ToastWarning, "You're off route! Recalculating...")
	if t.hooks.onOffRoute != nil {
		t.hooks.onOffRoute(ctx, snapshot.CurrentOrigin, deviation)
	}

	origin := snapshot.CurrentOrigin
	t.work.Add(1)
	go func() {
		defer t.work.Done()
		defer t.inFlight.Store(false)

		err := t.hooks.recalculate(ctx, origin)
		if err != nil && !errors.Is(err, domainerrors.ErrRouteSuperseded) && !errors.Is(err, domainerrors.ErrRecalculationInFlight) {
			t.logger.Warn("Recalculation failed", slog.Any("error", err))
		}
	}()
}

func (t *LiveTracker) changed(ctx context.Context, running bool) {
	if t.hooks.onChange != nil {
		t.hooks.onChange(ctx, running)
	}
}
