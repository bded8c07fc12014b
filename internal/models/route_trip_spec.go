package models

import "tripsplit.mtransit.org/internal/tripspec"

type DirectionEntry struct {
	Direction      string   `json:"direction"`
	DirectionIndex int      `json:"directionId"`
	Label          string   `json:"label"`
	Heading        string   `json:"heading,omitempty"`
	Anchors        []string `json:"anchors"`
}

// RouteTripSpecEntry is a covered route with its declared directions.
type RouteTripSpecEntry struct {
	RouteID    string           `json:"routeId"`
	Directions []DirectionEntry `json:"directions"`
}

func NewRouteTripSpecEntry(spec tripspec.RouteTripSpec, directions tripspec.RouteDirections) RouteTripSpecEntry {
	entry := RouteTripSpecEntry{
		RouteID:    spec.RouteID,
		Directions: make([]DirectionEntry, 0, len(directions.Directions)),
	}
	for _, dh := range directions.Directions {
		ds, _ := spec.Direction(dh.Direction)
		entry.Directions = append(entry.Directions, DirectionEntry{
			Direction:      dh.Direction.String(),
			DirectionIndex: dh.Index,
			Label:          dh.Label,
			Heading:        string(dh.Heading),
			Anchors:        ds.Anchors,
		})
	}
	return entry
}
