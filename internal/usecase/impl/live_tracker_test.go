package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackerFixture struct {
	tracker        *LiveTracker
	source         *location.DeviceSource
	channel        *fakeChannel
	tc             *trackingContext
	recalculations atomic.Int32
	release        chan struct{}
	locationErrors chan *domainerrors.LocationError
}

func newTrackerFixture(t *testing.T) *trackerFixture {
	t.Helper()

	f := &trackerFixture{
		source:         location.NewDeviceSource(),
		channel:        newFakeChannel(),
		release:        make(chan struct{}),
		locationErrors: make(chan *domainerrors.LocationError, 4),
	}
	f.tc = newTrackingContext(testRoute(entity.ProviderPrimary, entity.ProfileWalking), campusGate, campusLibrary, entity.ProfileWalking, 20)

	var releaseOnce sync.Once
	f.tracker = newLiveTracker(context.Background(), f.source, f.channel, testNavigationConfig().Tracking, trackerHooks{
		recalculate: func(ctx context.Context, _ entity.Coordinate) error {
			f.recalculations.Add(1)
			select {
			case <-f.release:
			case <-ctx.Done():
			}

			return nil
		},
		onLocationError: func(_ context.Context, err *domainerrors.LocationError) {
			f.locationErrors <- err
		},
	}, discardLogger())

	t.Cleanup(func() {
		releaseOnce.Do(func() { close(f.release) })
		f.tracker.Stop(context.Background())
	})

	return f
}

func TestLiveTracker_StartIsNoOpWhenRunning(t *testing.T) {
	f := newTrackerFixture(t)

	started, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)
	assert.True(t, started)

	started, err = f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)
	assert.False(t, started)

	assert.Equal(t, 1, f.source.Subscribers())
	assert.Equal(t, 1, f.channel.countToasts("Live tracking started"))
}

func TestLiveTracker_StopTwiceReleasesEverything(t *testing.T) {
	f := newTrackerFixture(t)

	_, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.True(t, f.tracker.Stop(context.Background()))
		assert.False(t, f.tracker.Stop(context.Background()))
	})

	assert.False(t, f.tracker.Running())
	assert.Equal(t, 0, f.source.Subscribers())
	assert.Equal(t, 1, f.channel.countToasts("Live tracking stopped"))
}

func TestLiveTracker_OnRouteSampleMovesMarkerOnly(t *testing.T) {
	f := newTrackerFixture(t)
	_, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)

	onRoute := entity.Coordinate{Lat: 4.5912, Lng: 101.1276}
	f.source.Publish(sampleAt(onRoute))

	waitFor(t, func() bool { return f.tc.Snapshot().CurrentOrigin == onRoute })
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.recalculations.Load())
}

func TestLiveTracker_ConcurrentTriggersRecalculateOnce(t *testing.T) {
	f := newTrackerFixture(t)
	_, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)

	// roughly 300 m away from every vertex
	offRoute := entity.Coordinate{Lat: 4.5930, Lng: 101.1250}
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.source.Publish(sampleAt(offRoute))
		}()
	}
	wg.Wait()

	waitFor(t, func() bool { return f.recalculations.Load() == 1 })
	// let several periodic checks run while the recalculation is pending
	time.Sleep(100 * time.Millisecond)

	assert.EqualValues(t, 1, f.recalculations.Load())
	assert.Equal(t, 1, f.channel.countToasts("You're off route! Recalculating..."))
}

func TestLiveTracker_BufferOverrideWidensTolerance(t *testing.T) {
	f := newTrackerFixture(t)
	f.tc.setBuffer(130)
	_, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)

	// about 60 m from the middle vertex, outside 20 m but inside 130 m
	near := entity.Coordinate{Lat: 4.5917, Lng: 101.1276}
	f.source.Publish(sampleAt(near))

	waitFor(t, func() bool { return f.tc.Snapshot().CurrentOrigin == near })
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.recalculations.Load())
}

func TestLiveTracker_LocationErrorsAreReported(t *testing.T) {
	f := newTrackerFixture(t)
	_, err := f.tracker.Start(context.Background(), f.tc)
	require.NoError(t, err)

	f.source.Fail(domainerrors.NewLocationError(domainerrors.LocationUnavailable))

	select {
	case reported := <-f.locationErrors:
		assert.Equal(t, domainerrors.LocationUnavailable, reported.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("location error not reported")
	}
	assert.True(t, f.tracker.Running())
}

func TestLiveTracker_StartWithoutRoute(t *testing.T) {
	f := newTrackerFixture(t)

	_, err := f.tracker.Start(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrOriginNotSet)
	assert.False(t, f.tracker.Running())
	assert.False(t, f.channel.hasToast(service.ToastSuccess, "Live tracking started"))
}
