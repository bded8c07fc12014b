package gtfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"

	"tripsplit.mtransit.org/internal/logging"
)

func rawGtfsData(ctx context.Context, source string, isLocalFile bool, logger *slog.Logger) (b []byte, err error) {
	if isLocalFile {
		var f *os.File
		f, err = os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		defer logging.HandleDeferredError(&err, f.Close, logger, "gtfs_file_close")

		b, err = io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building GTFS request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "gtfs_download")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: unexpected status %s", resp.Status)
	}
	b, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

// loadGTFSData loads and parses GTFS data from either a URL or a local file
func loadGTFSData(ctx context.Context, source string, isLocalFile bool, logger *slog.Logger) (*gtfs.Static, error) {
	b, err := rawGtfsData(ctx, source, isLocalFile, logger)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return staticData, nil
}

// ReloadStatic reloads the feed from its source and swaps it in.
func (manager *Manager) ReloadStatic(ctx context.Context) error {
	staticData, err := loadGTFSData(ctx, manager.gtfsSource, manager.isLocalFile, manager.logger)
	if err != nil {
		return err
	}
	manager.setStaticGTFS(staticData)
	return nil
}

// updateStaticGTFS reloads a URL feed on every refresh tick until shutdown.
func (manager *Manager) updateStaticGTFS() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			err := manager.ReloadStatic(ctx)
			cancel()

			if err != nil {
				logging.LogError(manager.logger, "failed to refresh static GTFS", err,
					slog.String("source", manager.gtfsSource))
				continue
			}
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "static_gtfs_updates_stopped")
			return
		}
	}
}

func (manager *Manager) setStaticGTFS(staticData *gtfs.Static) {
	manager.staticMutex.Lock()
	manager.gtfsData = staticData
	manager.lastUpdated = time.Now()
	manager.staticMutex.Unlock()

	if manager.config.Verbose {
		logging.LogOperation(manager.logger, "static_gtfs_updated",
			slog.String("source", manager.gtfsSource),
			slog.Int("routes", len(staticData.Routes)),
			slog.Int("trips", len(staticData.Trips)))
	}
}
