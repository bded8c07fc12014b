package models

import "tripsplit.mtransit.org/internal/tripspec"

type RankedStopEntry struct {
	StopID   string `json:"stopId"`
	Sequence int    `json:"stopSequence"`
	Rank     int    `json:"rank"`
	Anchored bool   `json:"anchored"`
}

// TripClassificationEntry is the direction and stop order assigned to a trip.
// Deferred trips were handled by the generic path.
type TripClassificationEntry struct {
	TripID         string            `json:"tripId"`
	RouteID        string            `json:"routeId"`
	Deferred       bool              `json:"deferred"`
	Direction      string            `json:"direction"`
	DirectionIndex int               `json:"directionId"`
	Headsign       string            `json:"tripHeadsign"`
	RankStep       int               `json:"rankStep"`
	Stops          []RankedStopEntry `json:"stops"`
}

func NewTripClassificationEntry(routeID string, deferred bool, trip tripspec.ClassifiedTrip, a tripspec.OrderedStopAssignment) TripClassificationEntry {
	entry := TripClassificationEntry{
		TripID:         trip.ID,
		RouteID:        routeID,
		Deferred:       deferred,
		Direction:      trip.Direction.String(),
		DirectionIndex: trip.Direction.Index(),
		Headsign:       trip.Headsign,
		RankStep:       a.Step,
		Stops:          make([]RankedStopEntry, 0, len(a.Stops)),
	}
	for _, rs := range a.Stops {
		entry.Stops = append(entry.Stops, RankedStopEntry{
			StopID:   rs.StopID,
			Sequence: rs.Sequence,
			Rank:     rs.Rank,
			Anchored: rs.Anchored,
		})
	}
	return entry
}
