package gtfs

import (
	"github.com/jamespfennell/gtfs"

	"tripsplit.mtransit.org/internal/tripspec"
)

// ConvertTrip builds the engine's view of a scheduled trip. Stop-times
// without a stop are dropped.
func ConvertTrip(trip *gtfs.ScheduledTrip) tripspec.Trip {
	converted := tripspec.Trip{
		ID:          trip.ID,
		Headsign:    trip.Headsign,
		DirectionID: directionIndex(trip.DirectionId),
		StopTimes:   make([]tripspec.StopTime, 0, len(trip.StopTimes)),
	}
	if trip.Route != nil {
		converted.RouteID = trip.Route.Id
	}
	for _, st := range trip.StopTimes {
		if st.Stop == nil {
			continue
		}
		converted.StopTimes = append(converted.StopTimes, tripspec.StopTime{
			StopID:   st.Stop.Id,
			Sequence: st.StopSequence,
		})
	}
	return converted
}

// TripsByRoute converts every trip of the feed and groups them by route id.
// Route ids are returned in feed route order, followed by any route only
// referenced from trips.
func TripsByRoute(static *gtfs.Static) ([]string, map[string][]tripspec.Trip) {
	byRoute := make(map[string][]tripspec.Trip)
	var order []string
	seen := make(map[string]bool)
	for _, route := range static.Routes {
		if !seen[route.Id] {
			seen[route.Id] = true
			order = append(order, route.Id)
		}
	}
	for i := range static.Trips {
		trip := ConvertTrip(&static.Trips[i])
		if !seen[trip.RouteID] {
			seen[trip.RouteID] = true
			order = append(order, trip.RouteID)
		}
		byRoute[trip.RouteID] = append(byRoute[trip.RouteID], trip)
	}
	return order, byRoute
}

// directionIndex maps a feed direction_id to 1 when true and 0 otherwise,
// including when the column is missing.
func directionIndex(id gtfs.DirectionID) int {
	if id == gtfs.DirectionID_True {
		return 1
	}
	return 0
}
