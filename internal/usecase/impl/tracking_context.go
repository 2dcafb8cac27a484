package impl

import (
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
)

// trackingContext is the state live tracking works against. The origin is
// written by the live tracker; route, profile and buffer by the route session.
type trackingContext struct {
	mu    sync.RWMutex
	state entity.TrackingContext
}

func newTrackingContext(route *entity.RouteResult, origin, destination entity.Coordinate, profile entity.Profile, buffer entity.BufferDistance) *trackingContext {
	return &trackingContext{
		state: entity.TrackingContext{
			CurrentRoute:   route,
			CurrentOrigin:  origin,
			Destination:    destination,
			Profile:        profile,
			BufferDistance: buffer,
		},
	}
}

func (t *trackingContext) Snapshot() entity.TrackingContext {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

func (t *trackingContext) setOrigin(origin entity.Coordinate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.CurrentOrigin = origin
}

func (t *trackingContext) setRoute(route *entity.RouteResult, profile entity.Profile, buffer entity.BufferDistance, recalculatedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.CurrentRoute = route
	t.state.Profile = profile
	t.state.BufferDistance = buffer
	if !recalculatedAt.IsZero() {
		t.state.LastRecalculationAt = recalculatedAt
	}
}

func (t *trackingContext) setBuffer(buffer entity.BufferDistance) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.BufferDistance = buffer
}

// sessionPhase holds the single active SessionState of a navigation attempt
type sessionPhase struct {
	mu        sync.RWMutex
	state     entity.SessionState
	lastError string
}

func newSessionPhase() *sessionPhase {
	return &sessionPhase{state: entity.SessionIdle}
}

func (p *sessionPhase) set(state entity.SessionState, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = state
	p.lastError = ""
	if err != nil {
		p.lastError = userMessage(err)
	}
}

func (p *sessionPhase) get() (entity.SessionState, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state, p.lastError
}
