package tripspec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpecForRoute signals that the route has no table entry and no
	// fallback was configured. It is not a failure: callers use their own
	// generic handling for the route.
	ErrNoSpecForRoute = errors.New("no route trip spec for route")

	// ErrAmbiguousDirection is matched by *AmbiguousDirectionError.
	ErrAmbiguousDirection = errors.New("ambiguous trip direction")

	// ErrNoAnchorOverlap is matched by *NoAnchorOverlapError.
	ErrNoAnchorOverlap = errors.New("trip has no stop in common with anchor sequence")

	// ErrDirectionMismatch is returned by CompareEarly for stops of trips
	// classified into different directions.
	ErrDirectionMismatch = errors.New("stops belong to different directions")

	// ErrUnknownStopTime is returned when a stop-time is not part of the trip it references.
	ErrUnknownStopTime = errors.New("stop-time not found in trip")
)

// Table construction errors.
var (
	ErrEmptyRouteID        = errors.New("empty route id")
	ErrDuplicateRoute      = errors.New("duplicate route id")
	ErrNoDirections        = errors.New("route declares no direction")
	ErrEmptyAnchorSequence = errors.New("empty anchor sequence")
	ErrEmptyStopID         = errors.New("empty stop id in anchor sequence")
	ErrMissingLabel        = errors.New("missing direction label")
)

// AmbiguousDirectionError reports a trip whose order-preserving match
// scores do not single out one direction.
type AmbiguousDirectionError struct {
	RouteID       string
	TripID        string
	ForwardScore  int
	BackwardScore int
}

func (e *AmbiguousDirectionError) Error() string {
	return fmt.Sprintf("route %s trip %s: %v (forward score %d, backward score %d)",
		e.RouteID, e.TripID, ErrAmbiguousDirection, e.ForwardScore, e.BackwardScore)
}

func (e *AmbiguousDirectionError) Unwrap() error {
	return ErrAmbiguousDirection
}

// NoAnchorOverlapError is an internal consistency failure: a classified trip
// could not be bound to a single anchor of its direction.
type NoAnchorOverlapError struct {
	RouteID   string
	TripID    string
	Direction Direction
}

func (e *NoAnchorOverlapError) Error() string {
	return fmt.Sprintf("route %s trip %s (%s): %v", e.RouteID, e.TripID, e.Direction, ErrNoAnchorOverlap)
}

func (e *NoAnchorOverlapError) Unwrap() error {
	return ErrNoAnchorOverlap
}
