package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsplit.mtransit.org/internal/tripspec"
)

func TestDefaultRouteSpecs(t *testing.T) {
	specs, err := DefaultRouteSpecs()
	require.NoError(t, err)

	assert.Equal(t, "Whitehorse Transit", specs.AgencyName)
	assert.Equal(t, "006666", specs.AgencyColor)
	assert.Equal(t, map[string]string{
		"1": "73A3CE",
		"2": "79B242",
		"3": "D42027",
		"4": "80407E",
		"5": "EA9025",
		"6": "14A79D",
	}, specs.RouteColors)

	assert.Equal(t, []string{"1", "2", "3", "5", "6"}, specs.Table.RouteIDs())

	route6, ok := specs.Table.Lookup("6")
	require.True(t, ok)
	assert.Equal(t, "Porter Crk - Whistle Bend", route6.Forward.Label)
	assert.Equal(t, tripspec.HeadingNorth, route6.Forward.Heading)
	assert.Equal(t, []string{"139", "38", "141"}, route6.Forward.Anchors)
	assert.Equal(t, "Ingram - Granger", route6.Backward.Label)
	assert.Equal(t, []string{"141", "91", "58", "79", "139"}, route6.Backward.Anchors)

	_, ok = specs.Table.Lookup("4")
	assert.False(t, ok, "route 4 has colors only")
}

func TestDefaultRouteSpecsClassifyRoute1(t *testing.T) {
	specs, err := DefaultRouteSpecs()
	require.NoError(t, err)
	engine := tripspec.NewEngine(specs.Table)

	trip := tripspec.Trip{ID: "t", RouteID: "1", StopTimes: []tripspec.StopTime{
		{StopID: "17", Sequence: 1},
		{StopID: "3", Sequence: 2},
		{StopID: "16", Sequence: 3},
	}}
	ct, err := engine.SplitTrip("1", trip)
	require.NoError(t, err)
	assert.Equal(t, tripspec.Backward, ct.Direction)
	assert.Equal(t, "Riverdale North", ct.Headsign)
}

func TestParseRouteSpecsRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "malformed yaml",
			yaml: "agency: [",
		},
		{
			name: "missing agency name",
			yaml: `
agency:
  color: "006666"
`,
		},
		{
			name: "bad agency color",
			yaml: `
agency:
  name: Test
  color: "ZZZZZZ"
`,
		},
		{
			name: "missing route id",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - forward: {label: Out, anchors: ["1"]}
`,
		},
		{
			name: "empty anchors",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "1"
    forward: {label: Out, anchors: []}
`,
		},
		{
			name: "unknown heading",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "1"
    forward: {label: Out, heading: up, anchors: ["1"]}
`,
		},
		{
			name: "duplicate route",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "1"
    forward: {label: Out, anchors: ["1", "2"]}
  - route_id: "1"
    backward: {label: In, anchors: ["2", "1"]}
`,
			wantErr: tripspec.ErrDuplicateRoute,
		},
		{
			name: "label made only of markup",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "1"
    forward: {label: "<b></b>", anchors: ["1", "2"]}
`,
			wantErr: tripspec.ErrMissingLabel,
		},
		{
			name: "duplicate color-only route",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "1"
    color: "73A3CE"
    forward: {label: Out, anchors: ["1", "2"]}
    backward: {label: In, anchors: ["2", "1"]}
  - route_id: "1"
    color: "000000"
`,
			wantErr: tripspec.ErrDuplicateRoute,
		},
		{
			name: "duplicate color-only route before its spec",
			yaml: `
agency: {name: Test, color: "006666"}
routes:
  - route_id: "4"
    color: "80407E"
  - route_id: "4"
    forward: {label: Loop, anchors: ["70", "71"]}
`,
			wantErr: tripspec.ErrDuplicateRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := ParseRouteSpecs("test.yml", []byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, specs)
			assert.Contains(t, err.Error(), "test.yml")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseRouteSpecsStripsMarkup(t *testing.T) {
	specs, err := ParseRouteSpecs("test.yml", []byte(`
agency: {name: " <i>Whitehorse Transit</i> ", color: "006666"}
routes:
  - route_id: "1"
    forward: {label: "<b>Porter Creek</b>", anchors: ["16", "17"]}
`))
	require.NoError(t, err)
	assert.Equal(t, "Whitehorse Transit", specs.AgencyName)

	spec, ok := specs.Table.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Porter Creek", spec.Forward.Label)
}

func TestLoadRouteSpecs(t *testing.T) {
	t.Run("empty path loads the embedded default", func(t *testing.T) {
		specs, err := LoadRouteSpecs("")
		require.NoError(t, err)
		assert.Equal(t, "embedded:whitehorse.yml", specs.Source)
		assert.Equal(t, 5, specs.Table.Len())
	})

	t.Run("reads a file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loop.yml")
		content := `
agency: {name: Loop Transit, color: "112233"}
routes:
  - route_id: "L"
    forward:
      label: Loop
      heading: clockwise
      anchors: ["S1", "X", "S3", "X"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		specs, err := LoadRouteSpecs(path)
		require.NoError(t, err)
		assert.Equal(t, path, specs.Source)
		assert.Empty(t, specs.RouteColors)

		spec, ok := specs.Table.Lookup("L")
		require.True(t, ok)
		assert.Nil(t, spec.Backward)
		assert.Equal(t, tripspec.HeadingClockwise, spec.Forward.Heading)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRouteSpecs(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseHeading(t *testing.T) {
	h, err := ParseHeading("")
	require.NoError(t, err)
	assert.Equal(t, tripspec.HeadingNone, h)

	h, err = ParseHeading("counterclockwise")
	require.NoError(t, err)
	assert.Equal(t, tripspec.HeadingCounterclockwise, h)

	_, err = ParseHeading("North")
	assert.ErrorIs(t, err, ErrUnknownHeading)
}
