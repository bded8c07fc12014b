package gtfs

import (
	"github.com/jamespfennell/gtfs"
)

// The Mock helpers mutate the loaded feed in place. They are meant for tests
// and must not race with readers.

func (m *Manager) MockAddRoute(id, longName, color string) {
	for _, r := range m.gtfsData.Routes {
		if r.Id == id {
			return
		}
	}
	m.gtfsData.Routes = append(m.gtfsData.Routes, gtfs.Route{
		Id:       id,
		LongName: longName,
		Color:    color,
	})
}

// MockAddTrip adds a trip of routeID visiting stopIDs with sequences 1..n.
func (m *Manager) MockAddTrip(tripID, routeID, headsign string, stopIDs ...string) {
	for _, t := range m.gtfsData.Trips {
		if t.ID == tripID {
			return
		}
	}
	route := &gtfs.Route{Id: routeID}
	for i := range m.gtfsData.Routes {
		if m.gtfsData.Routes[i].Id == routeID {
			route = &m.gtfsData.Routes[i]
			break
		}
	}
	trip := gtfs.ScheduledTrip{
		ID:       tripID,
		Route:    route,
		Headsign: headsign,
	}
	for i, stopID := range stopIDs {
		trip.StopTimes = append(trip.StopTimes, gtfs.ScheduledStopTime{
			Stop:         &gtfs.Stop{Id: stopID},
			StopSequence: i + 1,
		})
	}
	m.gtfsData.Trips = append(m.gtfsData.Trips, trip)
}
