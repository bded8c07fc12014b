package appconf

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings shared by the binaries. They are read from
// command-line flags whose defaults come from TRIPSPLIT_* variables.
type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	Env             Environment   `validate:"min=0,max=2"`
	ApiKeys         []string      `validate:"dive,required"`
	RateLimit       int           `validate:"min=0"`
	GtfsURL         string        `validate:"required"`
	SpecFile        string
	Workers         int           `validate:"min=0"`
	RefreshInterval time.Duration
	Verbose         bool
}

// DefaultConfig returns the configuration used when neither flags nor
// environment variables say otherwise.
func DefaultConfig() Config {
	return Config{
		Port:            EnvInt("PORT", 4000),
		Env:             EnvFlagToEnvironment(EnvString("ENV", "development")),
		ApiKeys:         SplitList(EnvString("API_KEYS", "test")),
		RateLimit:       EnvInt("RATE_LIMIT", 100),
		GtfsURL:         EnvString("GTFS_URL", ""),
		SpecFile:        EnvString("SPEC_FILE", ""),
		Workers:         EnvInt("WORKERS", 0),
		RefreshInterval: 24 * time.Hour,
	}
}

// Validate checks the ranges of the numeric settings and that a feed source is set.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
