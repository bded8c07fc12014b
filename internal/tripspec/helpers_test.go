package tripspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// route1Spec is route 1 of Whitehorse Transit.
func route1Spec() RouteTripSpec {
	return RouteTripSpec{
		RouteID: "1",
		Forward: &DirectionSpec{
			Label:   "Porter Crk Express",
			Heading: HeadingNorth,
			Anchors: []string{"16", "46", "17"},
		},
		Backward: &DirectionSpec{
			Label:   "Riverdale North",
			Heading: HeadingSouth,
			Anchors: []string{"17", "3", "16"},
		},
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	table, err := NewTable(route1Spec())
	require.NoError(t, err)
	return NewEngine(table, opts...)
}

// makeTrip builds a trip visiting stopIDs with sequences 1..n.
func makeTrip(id, routeID string, stopIDs ...string) Trip {
	stopTimes := make([]StopTime, len(stopIDs))
	for i, stopID := range stopIDs {
		stopTimes[i] = StopTime{StopID: stopID, Sequence: i + 1}
	}
	return Trip{ID: id, RouteID: routeID, StopTimes: stopTimes}
}

func ranksOf(a OrderedStopAssignment) []int {
	ranks := make([]int, len(a.Stops))
	for i, rs := range a.Stops {
		ranks[i] = rs.Rank
	}
	return ranks
}
