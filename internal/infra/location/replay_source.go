package location

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ReplaySource emits a fixed track, one point per interval, to each subscription.
// Every Watch starts from the point following the last one emitted, so an
// acquisition followed by live tracking walks the track once.
type ReplaySource struct {
	mu       sync.Mutex
	track    []entity.Coordinate
	next     int
	interval time.Duration
	accuracy float64
	now      func() time.Time
}

// NewReplaySource creates a source replaying track at interval
func NewReplaySource(track []entity.Coordinate, interval time.Duration) *ReplaySource {
	return &ReplaySource{
		track:    track,
		interval: interval,
		accuracy: 5,
		now:      time.Now,
	}
}

// Watch implements service.PositionSource. When the track is exhausted the
// subscription stays open and the watch timeout reports further silence.
func (r *ReplaySource) Watch(ctx context.Context, opts service.WatchOptions) (service.Subscription, error) {
	if len(r.track) == 0 {
		return nil, domainerrors.ErrSensorUnsupported
	}

	sub := newSubscription(opts, r.now, nil)
	go r.feed(ctx, sub)

	return sub, nil
}

// Remaining returns how many track points have not been emitted yet
func (r *ReplaySource) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.track) - r.next
}

func (r *ReplaySource) feed(ctx context.Context, sub *subscription) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		point, ok := r.advance()
		if ok {
			sub.offer(service.PositionEvent{Sample: entity.PositionSample{
				Coordinate:     point,
				AccuracyMeters: r.accuracy,
				CapturedAt:     r.now(),
			}})
		}

		select {
		case <-ctx.Done():
			sub.Cancel()

			return
		case <-sub.done:
			return
		case <-ticker.C:
		}
	}
}

func (r *ReplaySource) advance() (entity.Coordinate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next >= len(r.track) {
		return entity.Coordinate{}, false
	}

	point := r.track[r.next]
	r.next++

	return point, true
}

// LoadTrack reads a GPS track from a GeoJSON file (a LineString feature,
// FeatureCollection or bare geometry) or a text file of "lat,lng" lines.
func LoadTrack(path string) ([]entity.Coordinate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read track %s", path)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		return parseGeoJSONTrack(data)
	}

	return ParseTrack(trimmed)
}

// ParseTrack parses "lat,lng" pairs separated by newlines or semicolons
func ParseTrack(text string) ([]entity.Coordinate, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	track := make([]entity.Coordinate, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" || strings.HasPrefix(field, "#") {
			continue
		}

		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("track point %d: expected lat,lng, got %q", i+1, field)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "track point %d latitude", i+1)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "track point %d longitude", i+1)
		}

		coord := entity.Coordinate{Lat: lat, Lng: lng}
		if !coord.IsValid() {
			return nil, errors.Errorf("track point %d out of range: %q", i+1, field)
		}
		track = append(track, coord)
	}

	if len(track) == 0 {
		return nil, errors.New("track has no points")
	}

	return track, nil
}

func parseGeoJSONTrack(data []byte) ([]entity.Coordinate, error) {
	var geometry orb.Geometry

	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		geometry = fc.Features[0].Geometry
	} else if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		geometry = f.Geometry
	} else {
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "parse geojson track")
		}
		geometry = g.Geometry()
	}

	var points []orb.Point
	switch g := geometry.(type) {
	case orb.LineString:
		points = g
	case orb.MultiPoint:
		points = g
	default:
		return nil, errors.Errorf("unsupported track geometry %T", geometry)
	}

	track := make([]entity.Coordinate, 0, len(points))
	for _, p := range points {
		track = append(track, entity.CoordinateFromPoint(p))
	}

	return track, nil
}
