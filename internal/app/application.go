package app

import (
	"log/slog"

	"tripsplit.mtransit.org/internal/agency"
	"tripsplit.mtransit.org/internal/appconf"
	"tripsplit.mtransit.org/internal/gtfs"
	"tripsplit.mtransit.org/internal/tripspec"
)

// Application holds the dependencies shared by the HTTP handlers, the debug
// UI and the batch report.
type Application struct {
	Config      appconf.Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	GtfsManager *gtfs.Manager
	Specs       *appconf.RouteSpecs
	Engine      *tripspec.Engine
	Splitter    *gtfs.TripSplitter
	Presenter   *agency.Presenter
}

// New wires the engine, the splitter and the presenter around a loaded feed
// and spec file. Routes missing from the spec table go through the generic
// fallback backed by the feed.
func New(config appconf.Config, gtfsConfig gtfs.Config, logger *slog.Logger, manager *gtfs.Manager, specs *appconf.RouteSpecs) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	engine := tripspec.NewEngine(specs.Table, tripspec.WithFallback(gtfs.NewGenericFallback(manager)))
	return &Application{
		Config:      config,
		GtfsConfig:  gtfsConfig,
		Logger:      logger,
		GtfsManager: manager,
		Specs:       specs,
		Engine:      engine,
		Splitter:    gtfs.NewTripSplitter(engine, logger, config.Workers),
		Presenter:   agency.NewPresenter(specs.AgencyName, specs.AgencyColor, specs.RouteColors),
	}
}
