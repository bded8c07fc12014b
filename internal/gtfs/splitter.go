package gtfs

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/jamespfennell/gtfs"
	"golang.org/x/sync/errgroup"

	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/tripspec"
)

// TripResult is the outcome of splitting and ordering one trip.
type TripResult struct {
	TripID     string
	Deferred   bool
	Classified tripspec.ClassifiedTrip
	Assignment tripspec.OrderedStopAssignment
	Err        error
}

// RouteReport is the outcome for one route. Halted is set when a trip had no
// anchor overlap; the trips after it are left out of Trips and counted in
// Skipped.
type RouteReport struct {
	RouteID    string
	Directions tripspec.RouteDirections
	Trips      []TripResult
	Stats      tripspec.Stats
	Halted     error
	Skipped    int
}

// Report is the outcome of a batch split. Routes keep feed order.
type Report struct {
	Routes   []RouteReport
	Stats    tripspec.Stats
	Duration time.Duration
}

// TripSplitter runs the engine over every trip of a feed.
type TripSplitter struct {
	engine  *tripspec.Engine
	logger  *slog.Logger
	workers int
}

// NewTripSplitter returns a splitter using at most workers goroutines.
// A non-positive workers uses GOMAXPROCS.
func NewTripSplitter(engine *tripspec.Engine, logger *slog.Logger, workers int) *TripSplitter {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &TripSplitter{
		engine:  engine,
		logger:  logger.With(slog.String("component", "trip_splitter")),
		workers: workers,
	}
}

func (s *TripSplitter) Engine() *tripspec.Engine {
	return s.engine
}

// Split classifies and orders every trip of static, one route per task.
func (s *TripSplitter) Split(ctx context.Context, static *gtfs.Static) (*Report, error) {
	start := time.Now()
	order, byRoute := TripsByRoute(static)

	reports := make([]RouteReport, len(order))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, routeID := range order {
		g.Go(func() error {
			report, err := s.SplitRoute(ctx, routeID, byRoute[routeID])
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Routes: reports, Duration: time.Since(start)}
	for _, rr := range reports {
		report.Stats.Add(rr.Stats)
	}

	logging.LogOperation(s.logger, "batch_split_finished",
		slog.Int("routes", len(reports)),
		slog.String("stats", report.Stats.String()),
		slog.Duration("duration", report.Duration))
	return report, nil
}

// SplitRoute classifies and orders the trips of one route.
func (s *TripSplitter) SplitRoute(ctx context.Context, routeID string, trips []tripspec.Trip) (RouteReport, error) {
	if err := ctx.Err(); err != nil {
		return RouteReport{}, err
	}

	directions, err := s.engine.BuildDirections(routeID)
	if err != nil {
		return RouteReport{}, err
	}

	report := RouteReport{
		RouteID:    routeID,
		Directions: directions,
		Trips:      make([]TripResult, 0, len(trips)),
	}
	for i, trip := range trips {
		result := s.SplitTrip(routeID, trip)
		if result.Deferred && result.Err == nil {
			report.Stats.RecordDeferred()
		} else {
			report.Stats.Record(result.Err)
		}
		report.Trips = append(report.Trips, result)

		if errors.Is(result.Err, tripspec.ErrNoAnchorOverlap) {
			report.Halted = result.Err
			report.Skipped = len(trips) - i - 1
			logging.LogError(s.logger, "route_halted", result.Err,
				slog.String("route_id", routeID),
				slog.String("trip_id", trip.ID),
				slog.Int("skipped_trips", report.Skipped))
			break
		}
	}
	return report, nil
}

// SplitTrip classifies trip and orders its stops. Failures are reported in
// the result rather than returned.
func (s *TripSplitter) SplitTrip(routeID string, trip tripspec.Trip) TripResult {
	result := TripResult{
		TripID:   trip.ID,
		Deferred: !s.engine.HasSpec(routeID),
	}

	classified, err := s.engine.SplitTrip(routeID, trip)
	if err == nil {
		result.Classified = classified
		result.Assignment, err = s.engine.OrderTripStops(routeID, classified)
	}
	result.Err = err

	logging.LogSplitOutcome(s.logger, routeID, trip.ID, err)
	return result
}
