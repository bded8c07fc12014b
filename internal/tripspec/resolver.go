package tripspec

import "slices"

// DefaultRankStep is the distance between the ranks of consecutive anchors.
const DefaultRankStep = 1000

// resolveRanks assigns a distinct rank to every stop-time of trip against the
// anchor sequence of its direction.
func resolveRanks(routeID string, anchors []string, trip ClassifiedTrip, baseStep int) (OrderedStopAssignment, error) {
	stops := sortedStopTimes(trip.StopTimes)
	ids := make([]string, len(stops))
	for i, st := range stops {
		ids[i] = st.StopID
	}

	bound := newSuffixMatches(ids, anchors).bindings()
	boundIdx := make([]int, 0, len(anchors))
	for i, pos := range bound {
		if pos >= 0 {
			boundIdx = append(boundIdx, i)
		}
	}
	if len(boundIdx) == 0 {
		return OrderedStopAssignment{}, &NoAnchorOverlapError{
			RouteID:   routeID,
			TripID:    trip.ID,
			Direction: trip.Direction,
		}
	}

	step := rankStep(baseStep, longestUnboundRun(bound))

	ranks := make([]int, len(stops))
	for _, i := range boundIdx {
		ranks[i] = (bound[i] + 1) * step
	}

	first, last := boundIdx[0], boundIdx[len(boundIdx)-1]
	interpolate(ranks, 0, first, ranks[first]-step, ranks[first])
	for x := 0; x+1 < len(boundIdx); x++ {
		lo, hi := boundIdx[x], boundIdx[x+1]
		interpolate(ranks, lo+1, hi, ranks[lo], ranks[hi])
	}
	interpolate(ranks, last+1, len(stops), ranks[last], ranks[last]+step)

	ranked := make([]RankedStop, len(stops))
	for i, st := range stops {
		ranked[i] = RankedStop{StopTime: st, Rank: ranks[i], Anchored: bound[i] >= 0}
	}
	slices.SortStableFunc(ranked, compareRankedStops)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Rank <= ranked[i-1].Rank {
			ranked[i].Rank = ranked[i-1].Rank + 1
		}
	}

	return OrderedStopAssignment{
		RouteID:   routeID,
		TripID:    trip.ID,
		Direction: trip.Direction,
		Step:      step,
		Stops:     ranked,
	}, nil
}

// interpolate spreads ranks[from:to] evenly and strictly inside (lo, hi).
func interpolate(ranks []int, from, to, lo, hi int) {
	count := to - from
	if count <= 0 {
		return
	}
	for k := 0; k < count; k++ {
		ranks[from+k] = lo + (k+1)*(hi-lo)/(count+1)
	}
}

func longestUnboundRun(bound []int) int {
	longest, run := 0, 0
	for _, pos := range bound {
		if pos >= 0 {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}

// rankStep widens base to a multiple of itself large enough to interpolate a
// run of unbound stops between two adjacent anchors without collisions.
func rankStep(base, longestRun int) int {
	if base <= 0 {
		base = DefaultRankStep
	}
	need := longestRun + 1
	if base >= need {
		return base
	}
	return ((need + base - 1) / base) * base
}
