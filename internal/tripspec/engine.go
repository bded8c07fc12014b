package tripspec

import (
	"cmp"
	"fmt"
)

// Splitter is the capability the converter consults per route and trip.
type Splitter interface {
	SplitTrip(routeID string, trip Trip) (ClassifiedTrip, error)
	OrderTripStops(routeID string, trip ClassifiedTrip) (OrderedStopAssignment, error)
	CompareEarly(routeID string, a, b StopRef) (Ordering, error)
}

// Fallback is the converter's generic behavior, used for routes the table
// does not cover.
type Fallback interface {
	Splitter
	TripHeadsign(routeID string, trip Trip) (string, error)
}

// DirectionHeadsign is a materialized direction of a covered route.
type DirectionHeadsign struct {
	Direction Direction
	Index     int
	Label     string
	Heading   Heading
}

// RouteDirections holds the directions built for a route. Deferred is set
// when the table has no entry and the converter's own splitting applies.
type RouteDirections struct {
	RouteID    string
	Deferred   bool
	Directions []DirectionHeadsign
}

// Find returns the materialized direction d.
func (rd RouteDirections) Find(d Direction) (DirectionHeadsign, bool) {
	for _, dh := range rd.Directions {
		if dh.Direction == d {
			return dh, true
		}
	}
	return DirectionHeadsign{}, false
}

// Engine is the route classification facade. It holds only immutable state
// and is safe for concurrent use.
type Engine struct {
	table    *Table
	fallback Fallback
	step     int
}

type Option func(*Engine)

// WithFallback sets the generic implementation used for uncovered routes.
func WithFallback(f Fallback) Option {
	return func(e *Engine) {
		e.fallback = f
	}
}

// WithRankStep sets the rank distance between consecutive anchors.
func WithRankStep(step int) Option {
	return func(e *Engine) {
		if step > 0 {
			e.step = step
		}
	}
}

func NewEngine(table *Table, opts ...Option) *Engine {
	e := &Engine{
		table: table,
		step:  DefaultRankStep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the reference table the engine was built with.
func (e *Engine) Table() *Table {
	return e.table
}

func (e *Engine) HasSpec(routeID string) bool {
	_, ok := e.table.lookup(routeID)
	return ok
}

// BuildDirections materializes the declared directions of routeID.
func (e *Engine) BuildDirections(routeID string) (RouteDirections, error) {
	spec, ok := e.table.lookup(routeID)
	if !ok {
		return RouteDirections{RouteID: routeID, Deferred: true}, nil
	}
	rd := RouteDirections{RouteID: routeID}
	for _, d := range spec.Declared() {
		ds, _ := spec.Direction(d)
		rd.Directions = append(rd.Directions, DirectionHeadsign{
			Direction: d,
			Index:     d.Index(),
			Label:     ds.Label,
			Heading:   ds.Heading,
		})
	}
	return rd, nil
}

// SplitTrip assigns trip to a direction of routeID and labels it with that
// direction's headsign.
func (e *Engine) SplitTrip(routeID string, trip Trip) (ClassifiedTrip, error) {
	spec, ok := e.table.lookup(routeID)
	if !ok {
		if e.fallback == nil {
			return ClassifiedTrip{}, fmt.Errorf("route %s: %w", routeID, ErrNoSpecForRoute)
		}
		return e.fallback.SplitTrip(routeID, trip)
	}

	d, err := Classify(spec, trip.ID, trip.StopIDs())
	if err != nil {
		return ClassifiedTrip{}, err
	}
	ds, _ := spec.Direction(d)
	return ClassifiedTrip{Trip: trip, Direction: d, Headsign: ds.Label}, nil
}

// TripHeadsign returns the headsign for trip.
func (e *Engine) TripHeadsign(routeID string, trip Trip) (string, error) {
	if !e.HasSpec(routeID) {
		if e.fallback == nil {
			return "", fmt.Errorf("route %s: %w", routeID, ErrNoSpecForRoute)
		}
		return e.fallback.TripHeadsign(routeID, trip)
	}
	classified, err := e.SplitTrip(routeID, trip)
	if err != nil {
		return "", err
	}
	return classified.Headsign, nil
}

// OrderTripStops ranks the stop-times of a classified trip against the anchor
// sequence of its direction.
func (e *Engine) OrderTripStops(routeID string, trip ClassifiedTrip) (OrderedStopAssignment, error) {
	spec, ok := e.table.lookup(routeID)
	if !ok {
		if e.fallback == nil {
			return OrderedStopAssignment{}, fmt.Errorf("route %s: %w", routeID, ErrNoSpecForRoute)
		}
		return e.fallback.OrderTripStops(routeID, trip)
	}
	return resolveRanks(routeID, spec.anchors(trip.Direction), trip, e.step)
}

// CompareEarly orders two stops of the same route direction by their
// positions relative to the anchor sequence, falling back to the stop-time
// tie-break when the positions are equal.
func (e *Engine) CompareEarly(routeID string, a, b StopRef) (Ordering, error) {
	if !e.HasSpec(routeID) {
		if e.fallback == nil {
			return Equal, fmt.Errorf("route %s: %w", routeID, ErrNoSpecForRoute)
		}
		return e.fallback.CompareEarly(routeID, a, b)
	}
	if a.Trip.Direction != b.Trip.Direction {
		return Equal, fmt.Errorf("route %s trips %s and %s: %w", routeID, a.Trip.ID, b.Trip.ID, ErrDirectionMismatch)
	}

	rankA, stepA, err := e.rankOf(routeID, a)
	if err != nil {
		return Equal, err
	}
	rankB, stepB, err := e.rankOf(routeID, b)
	if err != nil {
		return Equal, err
	}

	// Trips may use different steps, compare rankA/stepA with rankB/stepB.
	if c := cmp.Compare(int64(rankA)*int64(stepB), int64(rankB)*int64(stepA)); c != 0 {
		return orderingOf(c), nil
	}
	return orderingOf(CompareStopTimes(a.StopTime, b.StopTime)), nil
}

func (e *Engine) rankOf(routeID string, ref StopRef) (int, int, error) {
	assignment, err := e.OrderTripStops(routeID, ref.Trip)
	if err != nil {
		return 0, 0, err
	}
	rank, ok := assignment.RankOf(ref.StopTime)
	if !ok {
		return 0, 0, fmt.Errorf("route %s trip %s stop %s (sequence %d): %w",
			routeID, ref.Trip.ID, ref.StopTime.StopID, ref.StopTime.Sequence, ErrUnknownStopTime)
	}
	return rank, assignment.Step, nil
}

var _ Splitter = (*Engine)(nil)
