package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/stretchr/testify/require"
)

type recordedToast struct {
	level   service.ToastLevel
	message string
}

// fakeChannel records everything sent to the device. Dialogs are answered by
// answer, or dismissed when it is nil.
type fakeChannel struct {
	mu           sync.Mutex
	toasts       []recordedToast
	dialogs      []service.ConfirmOptions
	routes       []*entity.RouteResult
	markers      []entity.Coordinate
	destinations []entity.Coordinate
	states       []entity.SessionSnapshot
	pushToken    string
	closed       bool
	answer       func(opts service.ConfirmOptions) bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{}
}

func (f *fakeChannel) answerWith(answer func(opts service.ConfirmOptions) bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.answer = answer
}

func (f *fakeChannel) Toast(_ context.Context, level service.ToastLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.toasts = append(f.toasts, recordedToast{level: level, message: message})
}

func (f *fakeChannel) Confirm(_ context.Context, opts service.ConfirmOptions) bool {
	f.mu.Lock()
	f.dialogs = append(f.dialogs, opts)
	answer := f.answer
	f.mu.Unlock()

	if answer == nil {
		return false
	}

	return answer(opts)
}

func (f *fakeChannel) RenderRoute(_ context.Context, route *entity.RouteResult) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.routes = append(f.routes, route)
}

func (f *fakeChannel) MovePositionMarker(_ context.Context, position entity.Coordinate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.markers = append(f.markers, position)
}

func (f *fakeChannel) ShowDestination(_ context.Context, destination entity.Coordinate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.destinations = append(f.destinations, destination)
}

func (f *fakeChannel) PushState(_ context.Context, snapshot entity.SessionSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.states = append(f.states, snapshot)
}

func (f *fakeChannel) SetPushToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pushToken = token
}

func (f *fakeChannel) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
}

func (f *fakeChannel) hasToast(level service.ToastLevel, message string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, toast := range f.toasts {
		if toast.level == level && toast.message == message {
			return true
		}
	}

	return false
}

func (f *fakeChannel) countToasts(message string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, toast := range f.toasts {
		if toast.message == message {
			count++
		}
	}

	return count
}

func (f *fakeChannel) dialogTitles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	titles := make([]string, 0, len(f.dialogs))
	for _, d := range f.dialogs {
		titles = append(titles, d.Title)
	}

	return titles
}

func (f *fakeChannel) renderedRoutes() []*entity.RouteResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*entity.RouteResult(nil), f.routes...)
}

// fakeChannelFactory hands out one fakeChannel per session
type fakeChannelFactory struct {
	mu       sync.Mutex
	channels map[string]*fakeChannel
}

func newFakeChannelFactory() *fakeChannelFactory {
	return &fakeChannelFactory{channels: make(map[string]*fakeChannel)}
}

func (f *fakeChannelFactory) Open(sessionID string) service.SessionChannel {
	f.mu.Lock()
	defer f.mu.Unlock()

	channel := newFakeChannel()
	f.channels[sessionID] = channel

	return channel
}

func (f *fakeChannelFactory) get(sessionID string) *fakeChannel {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.channels[sessionID]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNavigationConfig() *config.NavigationConfig {
	return &config.NavigationConfig{
		Acquisition: config.AcquisitionConfig{
			SampleTimeout:     time.Second,
			MaxSampleAge:      time.Minute,
			Deadline:          2 * time.Second,
			SuppressionWindow: time.Second,
		},
		Tracking: config.TrackingConfig{
			SampleTimeout: time.Second,
			MaxSampleAge:  time.Minute,
			CheckInterval: 20 * time.Millisecond,
		},
		DialogTimeout: time.Second,
	}
}

var (
	campusGate    = entity.Coordinate{Lat: 4.589, Lng: 101.125}
	campusLibrary = entity.Coordinate{Lat: 4.5935, Lng: 101.1302}
)

// testRoute returns a valid route from campusGate to campusLibrary
func testRoute(provider entity.Provider, profile entity.Profile) *entity.RouteResult {
	return &entity.RouteResult{
		Geometry: []entity.Coordinate{
			campusGate,
			{Lat: 4.5912, Lng: 101.1276},
			campusLibrary,
		},
		DistanceMeters:  820,
		DurationSeconds: 600,
		ProviderUsed:    provider,
		Profile:         profile,
	}
}

func waitFor(t *testing.T, condition func() bool, msgAndArgs ...any) {
	t.Helper()

	require.Eventually(t, condition, 2*time.Second, 5*time.Millisecond, msgAndArgs...)
}
