package gtfs

import (
	"time"

	"tripsplit.mtransit.org/internal/appconf"
)

// DefaultRefreshInterval is how often a feed downloaded from a URL is reloaded.
const DefaultRefreshInterval = 24 * time.Hour

type Config struct {
	GtfsURL         string
	Env             appconf.Environment
	Verbose         bool
	RefreshInterval time.Duration
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval <= 0 {
		return DefaultRefreshInterval
	}
	return config.RefreshInterval
}
