package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"tripsplit.mtransit.org/internal/app"
	"tripsplit.mtransit.org/internal/appconf"
	"tripsplit.mtransit.org/internal/gtfs"
	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/models"
)

// createTestApi creates a RestAPI over the Whitehorse fixture feed and the
// embedded route specs.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	gtfsConfig := gtfs.Config{
		GtfsURL: filepath.Join("..", "..", "testdata", "whitehorse.zip"),
		Env:     appconf.Test,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gtfsManager, err := gtfs.InitGTFSManager(context.Background(), gtfsConfig, logger)
	require.NoError(t, err)

	specs, err := appconf.DefaultRouteSpecs()
	require.NoError(t, err)

	config := appconf.Config{
		Env:       appconf.Test,
		ApiKeys:   []string{"TEST"},
		RateLimit: 100,
		GtfsURL:   gtfsConfig.GtfsURL,
	}
	api := NewRestAPI(app.New(config, gtfsConfig, logger, gtfsManager, specs))
	t.Cleanup(func() {
		api.Shutdown()
		gtfsManager.Shutdown()
	})
	return api
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(newTestRouter(api))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryOf returns the data.entry and data.references objects of a decoded response.
func entryOf(t *testing.T, model models.ResponseModel) (map[string]interface{}, map[string]interface{}) {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	return entry, refs
}
