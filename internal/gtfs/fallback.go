package gtfs

import (
	"fmt"
	"slices"

	"github.com/jamespfennell/gtfs"

	"tripsplit.mtransit.org/internal/tripspec"
)

// RouteFinder looks up feed routes by id.
type RouteFinder interface {
	FindRoute(id string) *gtfs.Route
}

// GenericFallback is the converter's own behavior for routes without a trip
// spec: the feed direction_id, a label taken from the trip headsign, stops in
// original sequence order.
type GenericFallback struct {
	routes RouteFinder
}

func NewGenericFallback(routes RouteFinder) *GenericFallback {
	return &GenericFallback{routes: routes}
}

func (f *GenericFallback) SplitTrip(routeID string, trip tripspec.Trip) (tripspec.ClassifiedTrip, error) {
	headsign, err := f.TripHeadsign(routeID, trip)
	if err != nil {
		return tripspec.ClassifiedTrip{}, err
	}
	direction := tripspec.Forward
	if trip.DirectionID == tripspec.Backward.Index() {
		direction = tripspec.Backward
	}
	return tripspec.ClassifiedTrip{Trip: trip, Direction: direction, Headsign: headsign}, nil
}

// TripHeadsign is the trip headsign, or the route long name when the trip has none.
func (f *GenericFallback) TripHeadsign(routeID string, trip tripspec.Trip) (string, error) {
	if trip.Headsign != "" {
		return trip.Headsign, nil
	}
	if f.routes != nil {
		if route := f.routes.FindRoute(routeID); route != nil && route.LongName != "" {
			return route.LongName, nil
		}
	}
	return "", fmt.Errorf("route %s trip %s: no headsign", routeID, trip.ID)
}

func (f *GenericFallback) OrderTripStops(routeID string, trip tripspec.ClassifiedTrip) (tripspec.OrderedStopAssignment, error) {
	stops := slices.Clone(trip.StopTimes)
	slices.SortFunc(stops, tripspec.CompareStopTimes)

	a := tripspec.OrderedStopAssignment{
		RouteID:   routeID,
		TripID:    trip.ID,
		Direction: trip.Direction,
		Step:      1,
		Stops:     make([]tripspec.RankedStop, len(stops)),
	}
	for i, st := range stops {
		a.Stops[i] = tripspec.RankedStop{StopTime: st, Rank: i + 1}
	}
	return a, nil
}

func (f *GenericFallback) CompareEarly(_ string, a, b tripspec.StopRef) (tripspec.Ordering, error) {
	switch c := tripspec.CompareStopTimes(a.StopTime, b.StopTime); {
	case c < 0:
		return tripspec.Before, nil
	case c > 0:
		return tripspec.After, nil
	default:
		return tripspec.Equal, nil
	}
}

var _ tripspec.Fallback = (*GenericFallback)(nil)
