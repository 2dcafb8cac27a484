// Command navsim replays a GPS track through a navigation session against the
// configured routing services, logging every toast, dialog and route.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/infra/location"
	logs "wayfinder/internal/infra/log"
	"wayfinder/internal/infra/notification"
	"wayfinder/internal/infra/routing/ors"
	"wayfinder/internal/infra/routing/osrm"
	"wayfinder/internal/usecase"
	"wayfinder/internal/usecase/impl"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type simFlags struct {
	track       string
	destination string
	profile     string
	buffer      int
	interval    time.Duration
	duration    time.Duration
	confirm     bool
}

func main() {
	var flags simFlags
	flag.StringVar(&flags.track, "track", "", "GPS track: a GeoJSON/text file path, or inline \"lat,lng;lat,lng\"")
	flag.StringVar(&flags.destination, "dest", "", "Destination as lat,lng (defaults to the last track point)")
	flag.StringVar(&flags.profile, "profile", "driving", "Routing profile (driving, walking)")
	flag.IntVar(&flags.buffer, "buffer", 0, "Deviation buffer override in meters (10-130, step 10)")
	flag.DurationVar(&flags.interval, "interval", time.Second, "Delay between replayed track points")
	flag.DurationVar(&flags.duration, "duration", 0, "Stop after this long (defaults to the track length plus a margin)")
	flag.BoolVar(&flags.confirm, "confirm", true, "Answer every dialog with its confirm button")
	flag.Parse()

	if flags.track == "" {
		fmt.Fprintln(os.Stderr, "Usage: navsim -track <file|lat,lng;...> [-dest lat,lng] [-profile walking]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags simFlags) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	track, err := loadTrack(flags.track)
	if err != nil {
		return err
	}

	destination := track[len(track)-1]
	if flags.destination != "" {
		lat, lng, _ := strings.Cut(flags.destination, ",")
		parsed, ok := entity.ParseQueryCoordinate(lat, lng)
		if !ok {
			return errors.Errorf("invalid destination %q", flags.destination)
		}
		destination = parsed
	}

	profile, err := entity.ParseProfile(flags.profile)
	if err != nil {
		return err
	}

	replay := location.NewReplaySource(track, flags.interval)
	navigation := impl.NewNavigationService(impl.NavigationServiceParams{
		Config:   cfg,
		Logger:   logger,
		Primary:  ors.NewClient(cfg.Routing.Primary, logger),
		Fallback: osrm.NewClient(cfg.Routing.Fallback, logger),
		Channels: notification.NewLogChannel(logger, flags.confirm),
		Sources:  replay,
	})
	defer navigation.Close()

	snapshot, err := navigation.CreateSession(ctx, &usecase.CreateSessionInput{Destination: &destination, Profile: profile})
	if err != nil {
		return errors.Wrap(err, "create session")
	}

	if flags.buffer != 0 {
		buffer, err := entity.NewBufferDistance(flags.buffer)
		if err != nil {
			return err
		}
		if _, err := navigation.SetBufferDistance(ctx, snapshot.ID, buffer); err != nil {
			return errors.Wrap(err, "set buffer")
		}
	}

	duration := flags.duration
	if duration <= 0 {
		duration = time.Duration(len(track)+1)*flags.interval + cfg.Navigation.Acquisition.Deadline
	}

	if err := waitForReplay(ctx, replay, duration); err != nil {
		logger.Info("Simulation interrupted", slog.Any("reason", err))
	}

	final, err := navigation.GetSession(context.WithoutCancel(ctx), snapshot.ID)
	if err != nil {
		return err
	}

	return printSnapshot(final)
}

func loadTrack(value string) ([]entity.Coordinate, error) {
	if _, err := os.Stat(value); err == nil {
		return location.LoadTrack(value)
	}

	return location.ParseTrack(value)
}

// waitForReplay returns once the whole track was emitted and one more check
// interval has passed, or when ctx or the duration ends first
func waitForReplay(ctx context.Context, replay *location.ReplaySource, duration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil
			}

			return ctx.Err()
		case <-ticker.C:
			if replay.Remaining() == 0 {
				return nil
			}
		}
	}
}

func printSnapshot(snapshot *entity.SessionSnapshot) error {
	out := struct {
		*entity.SessionSnapshot
		Summary string `json:"summary,omitempty"`
	}{SessionSnapshot: snapshot}
	if snapshot.Route != nil {
		out.Summary = snapshot.Route.DistanceText() + ", " + snapshot.Route.DurationText()
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	fmt.Println(string(encoded))

	return nil
}
