package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsplit.mtransit.org/internal/appconf"
)

var fixture = filepath.Join("..", "..", "testdata", "whitehorse.zip")

func TestParseConfig(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		cfg, err := parseConfig([]string{
			"-port", "8081",
			"-env", "production",
			"-api-keys", "a, b",
			"-gtfs-url", fixture,
			"-workers", "3",
			"-refresh", "1h",
		}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Port)
		assert.Equal(t, appconf.Production, cfg.Env)
		assert.Equal(t, []string{"a", "b"}, cfg.ApiKeys)
		assert.Equal(t, fixture, cfg.GtfsURL)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, time.Hour, cfg.RefreshInterval)
	})

	t.Run("environment defaults", func(t *testing.T) {
		t.Setenv("TRIPSPLIT_GTFS_URL", fixture)
		t.Setenv("TRIPSPLIT_PORT", "9000")

		cfg, err := parseConfig(nil, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, fixture, cfg.GtfsURL)
	})

	t.Run("missing feed", func(t *testing.T) {
		t.Setenv("TRIPSPLIT_GTFS_URL", "")

		var out bytes.Buffer
		_, err := parseConfig(nil, &out)
		require.Error(t, err)
		assert.Contains(t, out.String(), "invalid configuration")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseConfig([]string{"-nope"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestNewHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := appconf.Config{
		Port:      4000,
		ApiKeys:   []string{"test"},
		RateLimit: 10,
		GtfsURL:   fixture,
	}

	application, err := buildApplication(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer application.GtfsManager.Shutdown()

	handler, api := newHandler(application)
	defer api.Shutdown()

	tests := []struct {
		path   string
		status int
	}{
		{path: "/api/where/current-time.json?key=test", status: http.StatusOK},
		{path: "/api/where/route-trip-spec/2.json?key=test", status: http.StatusOK},
		{path: "/api/where/trip-classification/2-S-0730.json?key=test", status: http.StatusOK},
		{path: "/api/where/trip-classification/2-S-0730.json", status: http.StatusUnauthorized},
		{path: "/debug/?dataType=feed", status: http.StatusOK},
		{path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestBuildApplicationErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := buildApplication(context.Background(), appconf.Config{GtfsURL: fixture, SpecFile: "missing.yml"}, logger)
	assert.ErrorContains(t, err, "error reading route spec file")

	_, err = buildApplication(context.Background(), appconf.Config{GtfsURL: "missing.zip"}, logger)
	assert.ErrorContains(t, err, "failed to initialize GTFS manager")
}
