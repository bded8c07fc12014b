package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"tripsplit.mtransit.org/internal/app"
	"tripsplit.mtransit.org/internal/appconf"
	"tripsplit.mtransit.org/internal/gtfs"
	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/restapi"
	"tripsplit.mtransit.org/internal/webui"
)

func main() {
	appconf.LoadDotEnv(".env")

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseConfig reads the command-line flags. Flag defaults come from the
// TRIPSPLIT_* environment variables.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	cfg := appconf.DefaultConfig()
	var env, apiKeys string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&env, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", appconf.EnvString("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per API key (negative disables limiting)")
	fs.StringVar(&cfg.GtfsURL, "gtfs-url", cfg.GtfsURL, "URL or path of a static GTFS zip file")
	fs.StringVar(&cfg.SpecFile, "spec-file", cfg.SpecFile, "Route trip spec YAML file (embedded Whitehorse Transit specs when empty)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Routes split concurrently (GOMAXPROCS when 0)")
	fs.DurationVar(&cfg.RefreshInterval, "refresh", cfg.RefreshInterval, "Reload interval of a downloaded GTFS feed")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.SplitList(apiKeys)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(output, err)
		return cfg, err
	}
	return cfg, nil
}

// buildApplication loads the spec file and the feed.
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	specs, err := appconf.LoadRouteSpecs(cfg.SpecFile)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(logger, "route_specs_loaded",
		slog.String("source", specs.Source),
		slog.Int("routes", specs.Table.Len()))

	gtfsConfig := gtfs.Config{
		GtfsURL:         cfg.GtfsURL,
		Env:             cfg.Env,
		Verbose:         cfg.Verbose,
		RefreshInterval: cfg.RefreshInterval,
	}
	manager, err := gtfs.InitGTFSManager(ctx, gtfsConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GTFS manager: %w", err)
	}
	if cfg.Verbose {
		manager.PrintStatistics(os.Stderr)
	}

	return app.New(cfg, gtfsConfig, logger, manager, specs), nil
}

func newHandler(application *app.Application) (http.Handler, *restapi.RestAPI) {
	router := httprouter.New()
	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)
	return api.Handler(router), api
}

// run serves the API until ctx is done, then shuts the server down.
func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	application, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.GtfsManager.Shutdown()

	handler, api := newHandler(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
