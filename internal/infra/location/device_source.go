package location

import (
	"context"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
)

// DeviceSource is a position source fed by samples the device reports.
// Every open subscription sees every report.
type DeviceSource struct {
	mu          sync.Mutex
	subs        map[*subscription]struct{}
	last        *entity.PositionSample
	unsupported bool
	now         func() time.Time
}

// NewDeviceSource creates an empty device source
func NewDeviceSource() *DeviceSource {
	return &DeviceSource{
		subs: make(map[*subscription]struct{}),
		now:  time.Now,
	}
}

// Watch implements service.PositionSource. A cached sample younger than
// MaxSampleAge is delivered immediately.
func (d *DeviceSource) Watch(ctx context.Context, opts service.WatchOptions) (service.Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unsupported {
		return nil, domainerrors.ErrSensorUnsupported
	}

	sub := newSubscription(opts, d.now, d.remove)
	d.subs[sub] = struct{}{}

	if d.last != nil && opts.MaxSampleAge > 0 && d.last.Age(d.now()) <= opts.MaxSampleAge {
		sub.offer(service.PositionEvent{Sample: *d.last})
	}

	stop := context.AfterFunc(ctx, sub.Cancel)
	go func() {
		<-sub.exited
		stop()
	}()

	return sub, nil
}

// Publish fans a sample out to every open subscription
func (d *DeviceSource) Publish(sample entity.PositionSample) {
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = d.now()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = &sample
	for sub := range d.subs {
		sub.offer(service.PositionEvent{Sample: sample})
	}
}

// Fail fans a sensor failure out to every open subscription
func (d *DeviceSource) Fail(err *domainerrors.LocationError) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for sub := range d.subs {
		sub.offer(service.PositionEvent{Err: err})
	}
}

// SetSupported records whether the device has a location sensor at all
func (d *DeviceSource) SetSupported(supported bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.unsupported = !supported
}

// Subscribers returns the number of open subscriptions
func (d *DeviceSource) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.subs)
}

func (d *DeviceSource) remove(sub *subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.subs, sub)
}
