package tripspec

// suffixMatches holds the longest order-preserving match lengths between
// every suffix of a trip's stops and every suffix of an anchor sequence.
type suffixMatches struct {
	stops   []string
	anchors []string
	lengths [][]int
}

func newSuffixMatches(stops, anchors []string) suffixMatches {
	n, m := len(stops), len(anchors)
	lengths := make([][]int, n+1)
	for i := range lengths {
		lengths[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case stops[i] == anchors[j]:
				lengths[i][j] = lengths[i+1][j+1] + 1
			case lengths[i+1][j] >= lengths[i][j+1]:
				lengths[i][j] = lengths[i+1][j]
			default:
				lengths[i][j] = lengths[i][j+1]
			}
		}
	}
	return suffixMatches{stops: stops, anchors: anchors, lengths: lengths}
}

func (sm suffixMatches) score() int {
	return sm.lengths[0][0]
}

// bindings returns, for each stop, the anchor position it is bound to or -1.
// Bound positions strictly increase. Among maximal alignments each stop binds
// to the earliest anchor occurrence after the previous binding, so a stop
// revisited on a loop binds to the next occurrence of that anchor.
func (sm suffixMatches) bindings() []int {
	bound := make([]int, len(sm.stops))
	cursor := 0
	for i, stopID := range sm.stops {
		bound[i] = -1
		for k := cursor; k < len(sm.anchors); k++ {
			if sm.anchors[k] == stopID && sm.lengths[i+1][k+1]+1 == sm.lengths[i][cursor] {
				bound[i] = k
				cursor = k + 1
				break
			}
		}
	}
	return bound
}

// MatchScore is the length of the longest subsequence of stops that appears
// in the same relative order in anchors.
func MatchScore(stops, anchors []string) int {
	if len(stops) == 0 || len(anchors) == 0 {
		return 0
	}
	return newSuffixMatches(stops, anchors).score()
}

// Classify picks the direction of spec whose anchor sequence has the strictly
// higher match score against stops. Equal scores, including a single declared
// direction scoring zero, yield an *AmbiguousDirectionError.
func Classify(spec RouteTripSpec, tripID string, stops []string) (Direction, error) {
	forward := MatchScore(stops, spec.anchors(Forward))
	backward := MatchScore(stops, spec.anchors(Backward))
	switch {
	case forward > backward:
		return Forward, nil
	case backward > forward:
		return Backward, nil
	default:
		return Forward, &AmbiguousDirectionError{
			RouteID:       spec.RouteID,
			TripID:        tripID,
			ForwardScore:  forward,
			BackwardScore: backward,
		}
	}
}
