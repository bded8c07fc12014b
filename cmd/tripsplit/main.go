// Command tripsplit classifies every trip of a static GTFS feed against the
// route trip specs and prints a report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"tripsplit.mtransit.org/internal/appconf"
	"tripsplit.mtransit.org/internal/gtfs"
	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/tripspec"
)

// errReportFailed is returned when the report contains trips that must fail the run.
var errReportFailed = errors.New("trip split report has failures")

type options struct {
	gtfsURL         string
	specFile        string
	workers         int
	verbose         bool
	showTrips       bool
	failOnAmbiguous bool
}

func main() {
	appconf.LoadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("tripsplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.gtfsURL, "gtfs-url", appconf.EnvString("GTFS_URL", ""), "URL or path of a static GTFS zip file")
	fs.StringVar(&opts.specFile, "spec-file", appconf.EnvString("SPEC_FILE", ""), "Route trip spec YAML file (embedded Whitehorse Transit specs when empty)")
	fs.IntVar(&opts.workers, "workers", appconf.EnvInt("WORKERS", 0), "Routes split concurrently (GOMAXPROCS when 0)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&opts.showTrips, "trips", false, "Print one line per trip")
	fs.BoolVar(&opts.failOnAmbiguous, "fail-on-ambiguous", false, "Exit with an error when a trip matches both directions equally")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.gtfsURL == "" {
		_, _ = fmt.Fprintln(stderr, "-gtfs-url is required")
		return opts, errors.New("missing -gtfs-url")
	}
	return opts, nil
}

// run returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(stderr, level)

	report, err := split(ctx, opts, logger)
	if err != nil {
		err = logging.ReplaceLogFatal(logger, "trip split failed", err)
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	printReport(stdout, report, opts.showTrips)

	if err := checkReport(report.Stats, opts.failOnAmbiguous); err != nil {
		logging.LogError(logger, "trip split report", err)
		return 1
	}
	return 0
}

func split(ctx context.Context, opts options, logger *slog.Logger) (*gtfs.Report, error) {
	specs, err := appconf.LoadRouteSpecs(opts.specFile)
	if err != nil {
		return nil, err
	}

	manager, err := gtfs.InitGTFSManager(ctx, gtfs.Config{GtfsURL: opts.gtfsURL, Verbose: opts.verbose}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load GTFS feed: %w", err)
	}
	defer manager.Shutdown()

	engine := tripspec.NewEngine(specs.Table, tripspec.WithFallback(gtfs.NewGenericFallback(manager)))
	splitter := gtfs.NewTripSplitter(engine, logger, opts.workers)
	return splitter.Split(ctx, manager.GetStaticData())
}

// checkReport fails on inconsistent assignments and unexpected errors, and
// on ambiguous trips when asked to.
func checkReport(stats tripspec.Stats, failOnAmbiguous bool) error {
	switch {
	case stats.NoAnchorOverlap > 0:
		return fmt.Errorf("%w: %d trips without anchor overlap", errReportFailed, stats.NoAnchorOverlap)
	case stats.Failed > 0:
		return fmt.Errorf("%w: %d trips failed", errReportFailed, stats.Failed)
	case failOnAmbiguous && stats.Ambiguous > 0:
		return fmt.Errorf("%w: %d ambiguous trips", errReportFailed, stats.Ambiguous)
	}
	return nil
}

func printReport(w io.Writer, report *gtfs.Report, showTrips bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROUTE\tTRIPS\tCLASSIFIED\tAMBIGUOUS\tDEFERRED\tFAILED")
	for _, rr := range report.Routes {
		failed := rr.Stats.NoAnchorOverlap + rr.Stats.Failed
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n",
			rr.RouteID, len(rr.Trips), rr.Stats.Classified, rr.Stats.Ambiguous, rr.Stats.Deferred, failed)
	}
	_ = tw.Flush()

	for _, rr := range report.Routes {
		if rr.Halted != nil {
			_, _ = fmt.Fprintf(w, "route %s halted, %d trips not processed: %v\n", rr.RouteID, rr.Skipped, rr.Halted)
		}
	}

	if showTrips {
		_, _ = fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, rr := range report.Routes {
			for _, tr := range rr.Trips {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", rr.RouteID, tr.TripID, describeTrip(tr))
			}
		}
		_ = tw.Flush()
	}

	_, _ = fmt.Fprintf(w, "\n%s in %s\n", report.Stats, report.Duration.Round(time.Microsecond))
}

func describeTrip(tr gtfs.TripResult) string {
	if tr.Err != nil {
		return "error: " + tr.Err.Error()
	}
	desc := fmt.Sprintf("%s %q %v", tr.Classified.Direction, tr.Classified.Headsign, tr.Assignment.StopIDs())
	if tr.Deferred {
		desc += " (deferred)"
	}
	return desc
}
