package tripspec

import (
	"cmp"
	"slices"
)

// CompareStopTimes orders stop-times by original sequence, then by stop id.
// It returns 0 only for identical stop-times, so it is a strict total order
// over the stop-times of a trip.
func CompareStopTimes(a, b StopTime) int {
	if c := cmp.Compare(a.Sequence, b.Sequence); c != 0 {
		return c
	}
	return cmp.Compare(a.StopID, b.StopID)
}

func compareRankedStops(a, b RankedStop) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return CompareStopTimes(a.StopTime, b.StopTime)
}

// sortedStopTimes returns a copy of stopTimes in original trip order.
func sortedStopTimes(stopTimes []StopTime) []StopTime {
	sorted := slices.Clone(stopTimes)
	slices.SortFunc(sorted, CompareStopTimes)
	return sorted
}
