package tripspec

// StopTime is one visit of a trip to a stop. Sequence is the original
// stop_sequence supplied by the feed.
type StopTime struct {
	StopID   string
	Sequence int
}

// Trip is the read-only view of a feed trip consumed by the engine.
// DirectionID is the raw direction_id of the feed, 0 when missing. The
// engine ignores it for covered routes.
type Trip struct {
	ID          string
	RouteID     string
	Headsign    string
	DirectionID int
	StopTimes   []StopTime
}

// StopIDs returns the trip's stop ids ordered by original sequence.
func (t Trip) StopIDs() []string {
	stops := sortedStopTimes(t.StopTimes)
	ids := make([]string, len(stops))
	for i, st := range stops {
		ids[i] = st.StopID
	}
	return ids
}

// ClassifiedTrip is a trip with its assigned direction and headsign label.
type ClassifiedTrip struct {
	Trip
	Direction Direction
	Headsign  string
}

// RankedStop is a stop-time with its output rank. Anchored reports whether the
// stop-time was bound to an anchor of the direction.
type RankedStop struct {
	StopTime
	Rank     int
	Anchored bool
}

// OrderedStopAssignment maps every stop-time of a classified trip to a
// distinct rank. Stops is sorted by Rank. Anchors are Step apart.
type OrderedStopAssignment struct {
	RouteID   string
	TripID    string
	Direction Direction
	Step      int
	Stops     []RankedStop
}

// RankOf returns the rank assigned to st.
func (a OrderedStopAssignment) RankOf(st StopTime) (int, bool) {
	for _, rs := range a.Stops {
		if rs.StopTime == st {
			return rs.Rank, true
		}
	}
	return 0, false
}

// StopIDs returns the stop ids in rank order.
func (a OrderedStopAssignment) StopIDs() []string {
	ids := make([]string, len(a.Stops))
	for i, rs := range a.Stops {
		ids[i] = rs.StopID
	}
	return ids
}

// StopRef points at one stop-time of a classified trip.
type StopRef struct {
	Trip     ClassifiedTrip
	StopTime StopTime
}

// Ordering is the result of an early comparison between two stops.
type Ordering int

const (
	Before Ordering = -1
	Equal  Ordering = 0
	After  Ordering = 1
)

func (o Ordering) String() string {
	switch {
	case o < 0:
		return "before"
	case o > 0:
		return "after"
	default:
		return "equal"
	}
}

func orderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Before
	case c > 0:
		return After
	default:
		return Equal
	}
}
