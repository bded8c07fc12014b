package tripspec

import (
	"fmt"
	"slices"
)

// DirectionSpec is one declared direction of a route: the headsign label
// given to its trips and the anchor stops, in expected visiting order.
type DirectionSpec struct {
	Label   string
	Heading Heading
	Anchors []string
}

// RouteTripSpec declares up to two directions for a route. A nil direction is
// not declared.
type RouteTripSpec struct {
	RouteID  string
	Forward  *DirectionSpec
	Backward *DirectionSpec
}

// Direction returns the declared spec for d.
func (s RouteTripSpec) Direction(d Direction) (DirectionSpec, bool) {
	var ds *DirectionSpec
	switch d {
	case Forward:
		ds = s.Forward
	case Backward:
		ds = s.Backward
	}
	if ds == nil {
		return DirectionSpec{}, false
	}
	return *ds, true
}

// Declared returns the declared directions, forward first.
func (s RouteTripSpec) Declared() []Direction {
	declared := make([]Direction, 0, 2)
	for _, d := range Directions {
		if _, ok := s.Direction(d); ok {
			declared = append(declared, d)
		}
	}
	return declared
}

func (s RouteTripSpec) anchors(d Direction) []string {
	ds, ok := s.Direction(d)
	if !ok {
		return nil
	}
	return ds.Anchors
}

func (s RouteTripSpec) clone() RouteTripSpec {
	cloneDirection := func(ds *DirectionSpec) *DirectionSpec {
		if ds == nil {
			return nil
		}
		c := *ds
		c.Anchors = slices.Clone(ds.Anchors)
		return &c
	}
	return RouteTripSpec{
		RouteID:  s.RouteID,
		Forward:  cloneDirection(s.Forward),
		Backward: cloneDirection(s.Backward),
	}
}

func (s RouteTripSpec) validate() error {
	if s.RouteID == "" {
		return ErrEmptyRouteID
	}
	declared := s.Declared()
	if len(declared) == 0 {
		return fmt.Errorf("route %s: %w", s.RouteID, ErrNoDirections)
	}
	for _, d := range declared {
		ds, _ := s.Direction(d)
		if ds.Label == "" {
			return fmt.Errorf("route %s %s: %w", s.RouteID, d, ErrMissingLabel)
		}
		if len(ds.Anchors) == 0 {
			return fmt.Errorf("route %s %s: %w", s.RouteID, d, ErrEmptyAnchorSequence)
		}
		for i, stopID := range ds.Anchors {
			if stopID == "" {
				return fmt.Errorf("route %s %s anchor %d: %w", s.RouteID, d, i, ErrEmptyStopID)
			}
		}
	}
	return nil
}

// Table is the directional reference table. It is immutable once built and
// safe for concurrent use. A nil *Table covers no route.
type Table struct {
	specs map[string]RouteTripSpec
	order []string
}

// NewTable validates and copies specs into a Table. Malformed entries and
// duplicate route ids are rejected.
func NewTable(specs ...RouteTripSpec) (*Table, error) {
	t := &Table{
		specs: make(map[string]RouteTripSpec, len(specs)),
		order: make([]string, 0, len(specs)),
	}
	for _, spec := range specs {
		if err := spec.validate(); err != nil {
			return nil, err
		}
		if _, exists := t.specs[spec.RouteID]; exists {
			return nil, fmt.Errorf("route %s: %w", spec.RouteID, ErrDuplicateRoute)
		}
		t.specs[spec.RouteID] = spec.clone()
		t.order = append(t.order, spec.RouteID)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error. Intended for literal tables.
func MustNewTable(specs ...RouteTripSpec) *Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns a copy of the spec declared for routeID.
func (t *Table) Lookup(routeID string) (RouteTripSpec, bool) {
	spec, ok := t.lookup(routeID)
	if !ok {
		return RouteTripSpec{}, false
	}
	return spec.clone(), true
}

func (t *Table) lookup(routeID string) (RouteTripSpec, bool) {
	if t == nil {
		return RouteTripSpec{}, false
	}
	spec, ok := t.specs[routeID]
	return spec, ok
}

// RouteIDs returns the covered route ids in declaration order.
func (t *Table) RouteIDs() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.order)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}
