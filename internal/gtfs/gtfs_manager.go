package gtfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jamespfennell/gtfs"
)

// Manager manages the GTFS data and provides methods to access it
type Manager struct {
	gtfsSource   string
	gtfsData     *gtfs.Static
	lastUpdated  time.Time
	isLocalFile  bool
	staticMutex  sync.RWMutex
	config       Config
	logger       *slog.Logger
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitGTFSManager initializes the Manager with the GTFS data from the given source
// The source can be either a URL or a local file path
func InitGTFSManager(ctx context.Context, config Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	isLocalFile := !strings.HasPrefix(config.GtfsURL, "http://") && !strings.HasPrefix(config.GtfsURL, "https://")

	staticData, err := loadGTFSData(ctx, config.GtfsURL, isLocalFile, logger)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		gtfsSource:   config.GtfsURL,
		isLocalFile:  isLocalFile,
		config:       config,
		logger:       logger.With(slog.String("component", "gtfs_manager")),
		shutdownChan: make(chan struct{}),
	}
	manager.setStaticGTFS(staticData)

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.updateStaticGTFS()
	}

	return manager, nil
}

// NewStaticManager wraps already parsed static data. It never refreshes.
func NewStaticManager(staticData *gtfs.Static, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	manager := &Manager{
		gtfsSource:   "memory",
		isLocalFile:  true,
		logger:       logger.With(slog.String("component", "gtfs_manager")),
		shutdownChan: make(chan struct{}),
	}
	manager.setStaticGTFS(staticData)
	return manager
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// GetStaticData returns the current feed. Callers must treat it as read-only.
func (manager *Manager) GetStaticData() *gtfs.Static {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.gtfsData
}

func (manager *Manager) GetAgencies() []gtfs.Agency {
	return manager.GetStaticData().Agencies
}

func (manager *Manager) GetRoutes() []gtfs.Route {
	return manager.GetStaticData().Routes
}

func (manager *Manager) LastUpdated() time.Time {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return manager.lastUpdated
}

// FindRoute returns the route with the given id, or nil.
func (manager *Manager) FindRoute(id string) *gtfs.Route {
	data := manager.GetStaticData()
	for i := range data.Routes {
		if data.Routes[i].Id == id {
			return &data.Routes[i]
		}
	}
	return nil
}

// FindTrip returns the scheduled trip with the given id, or nil.
func (manager *Manager) FindTrip(id string) *gtfs.ScheduledTrip {
	data := manager.GetStaticData()
	for i := range data.Trips {
		if data.Trips[i].ID == id {
			return &data.Trips[i]
		}
	}
	return nil
}

// TripsForRoute returns the scheduled trips of routeID in feed order.
func (manager *Manager) TripsForRoute(routeID string) []*gtfs.ScheduledTrip {
	data := manager.GetStaticData()
	var trips []*gtfs.ScheduledTrip
	for i := range data.Trips {
		if data.Trips[i].Route != nil && data.Trips[i].Route.Id == routeID {
			trips = append(trips, &data.Trips[i])
		}
	}
	return trips
}

// Statistics summarizes the loaded feed.
type Statistics struct {
	Source      string    `json:"source"`
	LocalFile   bool      `json:"localFile"`
	LastUpdated time.Time `json:"lastUpdated"`
	Agencies    int       `json:"agencies"`
	Routes      int       `json:"routes"`
	Stops       int       `json:"stops"`
	Trips       int       `json:"trips"`
}

func (manager *Manager) Statistics() Statistics {
	manager.staticMutex.RLock()
	defer manager.staticMutex.RUnlock()
	return Statistics{
		Source:      manager.gtfsSource,
		LocalFile:   manager.isLocalFile,
		LastUpdated: manager.lastUpdated,
		Agencies:    len(manager.gtfsData.Agencies),
		Routes:      len(manager.gtfsData.Routes),
		Stops:       len(manager.gtfsData.Stops),
		Trips:       len(manager.gtfsData.Trips),
	}
}

func (manager *Manager) PrintStatistics(w io.Writer) {
	stats := manager.Statistics()
	_, _ = fmt.Fprintf(w, "Source: %s (Local File: %v)\n", stats.Source, stats.LocalFile)
	_, _ = fmt.Fprintf(w, "Last Updated: %s\n", stats.LastUpdated.Format(time.RFC3339))
	_, _ = fmt.Fprintln(w, "Stops Count: ", stats.Stops)
	_, _ = fmt.Fprintln(w, "Routes Count: ", stats.Routes)
	_, _ = fmt.Fprintln(w, "Trips Count: ", stats.Trips)
	_, _ = fmt.Fprintln(w, "Agencies Count: ", stats.Agencies)
}
