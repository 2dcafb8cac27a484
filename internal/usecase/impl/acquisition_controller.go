package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultAcquisitionDeadline = 12 * time.Second
	defaultSuppressionWindow   = 5 * time.Second

	// consecutive restarts from a dismissed GPS timeout dialog
	maxDeadlineRestarts = 3
)

const (
	manualPickPrompt  = "Click anywhere on the map to set your starting location for directions."
	deadlineMessage   = "Getting your location is taking too long. You can set your location manually."
	unsupportedPrompt = "Your browser doesn't support GPS. Please use a different browser."
)

// acquisitionHooks connects the controller to the owning session
type acquisitionHooks struct {
	// onOrigin receives the resolved start point, exactly once per acquisition
	onOrigin func(ctx context.Context, origin entity.Coordinate, source entity.OriginSource)
	// onChange runs after every state transition, outside the controller lock
	onChange func(ctx context.Context)
}

// AcquisitionController resolves the starting point of a session, from the
// position sensor or from a manual map pick.
type AcquisitionController struct {
	ctx    context.Context
	source service.PositionSource
	sink   service.NotificationSink
	cfg    config.AcquisitionConfig
	phase  *sessionPhase
	hooks  acquisitionHooks
	logger *slog.Logger
	now    func() time.Time
	wg     *sync.WaitGroup

	mu            sync.Mutex
	state         entity.AcquisitionState
	generation    uint64
	sub           service.Subscription
	deadline      *time.Timer
	suppressUntil time.Time
	dialogOpen    bool
	restarts      int
}

func newAcquisitionController(
	ctx context.Context,
	source service.PositionSource,
	sink service.NotificationSink,
	cfg config.AcquisitionConfig,
	phase *sessionPhase,
	hooks acquisitionHooks,
	wg *sync.WaitGroup,
	logger *slog.Logger,
) *AcquisitionController {
	if cfg.Deadline <= 0 {
		cfg.Deadline = defaultAcquisitionDeadline
	}
	if cfg.SuppressionWindow <= 0 {
		cfg.SuppressionWindow = defaultSuppressionWindow
	}

	return &AcquisitionController{
		ctx:    ctx,
		source: source,
		sink:   sink,
		cfg:    cfg,
		phase:  phase,
		hooks:  hooks,
		logger: logger,
		now:    time.Now,
		wg:     wg,
		state:  entity.AcquisitionIdle,
	}
}

// State returns the current acquisition state
func (c *AcquisitionController) State() entity.AcquisitionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Start subscribes to the sensor and arms the overall deadline. An active
// subscription is released first, so at most one is ever open.
func (c *AcquisitionController) Start(ctx context.Context) error {
	c.mu.Lock()
	c.restarts = 0
	c.mu.Unlock()

	return c.start(ctx)
}

func (c *AcquisitionController) start(ctx context.Context) error {
	c.mu.Lock()
	c.releaseLocked()
	c.generation++
	gen := c.generation

	sub, err := c.source.Watch(c.ctx, service.WatchOptions{
		HighAccuracy: true,
		Timeout:      c.cfg.SampleTimeout,
		MaxSampleAge: c.cfg.MaxSampleAge,
	})
	if err != nil {
		c.state = entity.AcquisitionError
		c.mu.Unlock()

		c.phase.set(entity.SessionError, err)
		c.changed(ctx)
		if errors.Is(err, domainerrors.ErrSensorUnsupported) {
			c.warnUnsupported()
		}

		return errors.Wrap(err, "failed to watch position")
	}

	c.state = entity.AcquisitionRequesting
	c.sub = sub
	c.deadline = time.AfterFunc(c.cfg.Deadline, func() { c.onDeadline(gen) })
	c.mu.Unlock()

	c.phase.set(entity.SessionAcquiringLocation, nil)
	c.changed(ctx)

	c.wg.Add(1)
	go c.consume(gen, sub)

	return nil
}

// UseManualLocation releases the sensor and waits for one map click. Location
// failures inside the suppression window are shown as toasts.
func (c *AcquisitionController) UseManualLocation(ctx context.Context) {
	c.mu.Lock()
	c.releaseLocked()
	c.generation++
	c.state = entity.AcquisitionManualPending
	c.suppressUntil = c.now().Add(c.cfg.SuppressionWindow)
	c.mu.Unlock()

	c.changed(ctx)
	c.sink.Toast(ctx, service.ToastInfo, manualPickPrompt)
}

// MapClick sets the origin from a map click while a manual pick is pending
func (c *AcquisitionController) MapClick(ctx context.Context, at entity.Coordinate) error {
	if !at.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}

	c.mu.Lock()
	if c.state != entity.AcquisitionManualPending {
		c.mu.Unlock()

		return domainerrors.ErrNotAwaitingClick
	}
	c.state = entity.AcquisitionManualSet
	c.suppressUntil = c.now().Add(c.cfg.SuppressionWindow)
	c.mu.Unlock()

	c.changed(ctx)
	c.sink.Toast(ctx, service.ToastSuccess, "Location set! Calculating route...")
	c.hooks.onOrigin(ctx, at, entity.OriginFromMap)

	return nil
}

// Cancel releases the subscription and the deadline and returns to idle
func (c *AcquisitionController) Cancel(ctx context.Context) {
	c.mu.Lock()
	c.releaseLocked()
	c.generation++
	wasActive := c.state == entity.AcquisitionRequesting || c.state == entity.AcquisitionManualPending
	c.state = entity.AcquisitionIdle
	c.mu.Unlock()

	if wasActive {
		c.phase.set(entity.SessionIdle, nil)
	}
	c.changed(ctx)
}

// ReportLocationError shows a sensor failure raised outside the acquisition,
// e.g. by live tracking. It never blocks.
func (c *AcquisitionController) ReportLocationError(ctx context.Context, locErr *domainerrors.LocationError) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	c.report(ctx, gen, locErr.Message(), c.errorDialog(locErr))
}

func (c *AcquisitionController) consume(gen uint64, sub service.Subscription) {
	defer c.wg.Done()

	for event := range sub.Events() {
		if event.Err != nil {
			c.onError(gen, event.Err)

			continue
		}
		c.onSuccess(gen, event.Sample)
	}
}

func (c *AcquisitionController) onSuccess(gen uint64, sample entity.PositionSample) {
	c.mu.Lock()
	if gen != c.generation || c.state != entity.AcquisitionRequesting {
		c.mu.Unlock()

		return
	}
	c.releaseLocked()
	c.state = entity.AcquisitionSuccess
	c.restarts = 0
	c.mu.Unlock()

	c.logger.Info("Start point acquired",
		slog.Float64("lat", sample.Coordinate.Lat),
		slog.Float64("lng", sample.Coordinate.Lng),
		slog.Float64("accuracy", sample.AccuracyMeters),
	)

	c.changed(c.ctx)
	c.sink.Toast(c.ctx, service.ToastSuccess, "Location found! Calculating route...")
	c.hooks.onOrigin(c.ctx, sample.Coordinate, entity.OriginFromSensor)
}

func (c *AcquisitionController) onError(gen uint64, locErr *domainerrors.LocationError) {
	c.mu.Lock()
	if gen != c.generation || c.state != entity.AcquisitionRequesting {
		c.mu.Unlock()

		return
	}
	c.releaseLocked()
	c.state = entity.AcquisitionError
	c.mu.Unlock()

	c.logger.Warn("Start point acquisition failed", slog.String("kind", string(locErr.Kind)))

	c.phase.set(entity.SessionError, locErr)
	c.changed(c.ctx)
	c.report(c.ctx, gen, locErr.Message(), c.errorDialog(locErr))
}

func (c *AcquisitionController) onDeadline(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != entity.AcquisitionRequesting {
		c.mu.Unlock()

		return
	}
	c.releaseLocked()
	locErr := domainerrors.NewLocationError(domainerrors.LocationTimeout)
	c.state = entity.AcquisitionTimedOut
	c.mu.Unlock()

	c.logger.Warn("Start point acquisition deadline exceeded", slog.Duration("deadline", c.cfg.Deadline))

	c.phase.set(entity.SessionError, locErr)
	c.changed(c.ctx)
	c.report(c.ctx, gen, deadlineMessage, dialog{
		options: service.ConfirmOptions{
			Title:       "GPS Timeout",
			Message:     deadlineMessage,
			ConfirmText: "Set Manually",
			CancelText:  "Try Again",
			Icon:        string(service.ToastWarning),
		},
		onConfirm: c.UseManualLocation,
		onCancel:  c.restartAfterDeadline,
	})
}

// restartAfterDeadline handles "Try Again", at most maxDeadlineRestarts times
// in a row.
func (c *AcquisitionController) restartAfterDeadline(ctx context.Context) {
	c.mu.Lock()
	c.restarts++
	exhausted := c.restarts > maxDeadlineRestarts
	c.mu.Unlock()

	if exhausted {
		c.logger.Warn("Giving up on automatic acquisition restarts", slog.Int("restarts", maxDeadlineRestarts))
		c.sink.Toast(ctx, service.ToastWarning, deadlineMessage)

		return
	}

	if err := c.start(ctx); err != nil {
		c.logger.Warn("Failed to restart acquisition", slog.Any("error", err))
	}
}

type dialog struct {
	options   service.ConfirmOptions
	onConfirm func(ctx context.Context)
	onCancel  func(ctx context.Context)
}

func (c *AcquisitionController) errorDialog(locErr *domainerrors.LocationError) dialog {
	return dialog{
		options: service.ConfirmOptions{
			Title:       "Location Access Needed",
			Message:     locErr.Message(),
			ConfirmText: "Set Manually",
			CancelText:  "Cancel",
			Icon:        string(service.ToastWarning),
		},
		onConfirm: c.UseManualLocation,
	}
}

// report shows a toast inside the suppression window or while another dialog
// is open, and a blocking dialog otherwise. The dialog is awaited on its own
// goroutine and its answer only applies if no newer acquisition started.
func (c *AcquisitionController) report(ctx context.Context, gen uint64, message string, d dialog) {
	c.mu.Lock()
	suppressed := c.now().Before(c.suppressUntil) || c.dialogOpen
	if !suppressed {
		c.dialogOpen = true
	}
	c.mu.Unlock()

	if suppressed {
		c.sink.Toast(ctx, service.ToastWarning, message)

		return
	}
	if c.ctx.Err() != nil {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		confirmed := c.sink.Confirm(c.ctx, d.options)

		c.mu.Lock()
		c.dialogOpen = false
		current := gen == c.generation
		c.mu.Unlock()

		if !current || c.ctx.Err() != nil {
			return
		}
		if confirmed && d.onConfirm != nil {
			d.onConfirm(c.ctx)
		}
		if !confirmed && d.onCancel != nil {
			d.onCancel(c.ctx)
		}
	}()
}

func (c *AcquisitionController) warnUnsupported() {
	if c.ctx.Err() != nil {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.sink.Confirm(c.ctx, service.ConfirmOptions{
			Title:       "GPS Not Supported",
			Message:     unsupportedPrompt,
			ConfirmText: "OK",
			Icon:        string(service.ToastWarning),
		})
	}()
}

// releaseLocked cancels the subscription and the deadline
func (c *AcquisitionController) releaseLocked() {
	if c.deadline != nil {
		c.deadline.Stop()
		c.deadline = nil
	}
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
}

func (c *AcquisitionController) changed(ctx context.Context) {
	if c.hooks.onChange != nil {
		c.hooks.onChange(ctx)
	}
}
