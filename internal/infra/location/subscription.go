// Package location provides position sources: samples pushed by a device and replayed tracks.
package location

import (
	"sync"
	"time"

	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
)

const inboxSize = 8

// subscription applies the watch options to a stream of raw events.
// Raw events arrive on inbox, accepted ones go out on events.
type subscription struct {
	opts   service.WatchOptions
	now    func() time.Time
	inbox  chan service.PositionEvent
	events chan service.PositionEvent
	done   chan struct{}
	exited chan struct{}
	once   sync.Once

	onCancel func(*subscription)
}

func newSubscription(opts service.WatchOptions, now func() time.Time, onCancel func(*subscription)) *subscription {
	sub := &subscription{
		opts:     opts,
		now:      now,
		inbox:    make(chan service.PositionEvent, inboxSize),
		events:   make(chan service.PositionEvent),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
		onCancel: onCancel,
	}

	go sub.run()

	return sub
}

// Events implements service.Subscription
func (s *subscription) Events() <-chan service.PositionEvent {
	return s.events
}

// Cancel implements service.Subscription. The events channel is closed when it returns.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		if s.onCancel != nil {
			s.onCancel(s)
		}
	})
	<-s.exited
}

// offer hands a raw event to the subscription without blocking the producer.
func (s *subscription) offer(event service.PositionEvent) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.inbox <- event:
		return true
	default:
		return false
	}
}

func (s *subscription) run() {
	defer close(s.exited)
	defer close(s.events)

	var timeout <-chan time.Time
	var timer *time.Timer
	if s.opts.Timeout > 0 {
		timer = time.NewTimer(s.opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	for {
		select {
		case <-s.done:
			return

		case event := <-s.inbox:
			if event.Err == nil && s.tooOld(event) {
				continue
			}
			if timer != nil {
				timer.Reset(s.opts.Timeout)
			}
			if !s.emit(event) {
				return
			}

		case <-timeout:
			timer.Reset(s.opts.Timeout)
			if !s.emit(service.PositionEvent{Err: domainerrors.NewLocationError(domainerrors.LocationTimeout)}) {
				return
			}
		}
	}
}

func (s *subscription) tooOld(event service.PositionEvent) bool {
	if s.opts.MaxSampleAge <= 0 {
		return false
	}

	return event.Sample.Age(s.now()) > s.opts.MaxSampleAge
}

func (s *subscription) emit(event service.PositionEvent) bool {
	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	}
}
