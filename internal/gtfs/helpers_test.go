package gtfs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tripsplit.mtransit.org/internal/appconf"
	"tripsplit.mtransit.org/internal/tripspec"
)

func fixturePath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "testdata", "whitehorse.zip"))
	require.NoError(t, err)
	return path
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := InitGTFSManager(context.Background(), Config{
		GtfsURL: fixturePath(t),
		Env:     appconf.Test,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func newTestEngine(t *testing.T, manager *Manager) *tripspec.Engine {
	t.Helper()
	specs, err := appconf.DefaultRouteSpecs()
	require.NoError(t, err)
	return tripspec.NewEngine(specs.Table, tripspec.WithFallback(NewGenericFallback(manager)))
}
