package tripspec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRecord(t *testing.T) {
	var s Stats
	s.Record(nil)
	s.Record(nil)
	s.Record(nil)
	s.Record(&AmbiguousDirectionError{RouteID: "1", TripID: "t"})
	s.Record(fmt.Errorf("wrapped: %w", &NoAnchorOverlapError{RouteID: "1", TripID: "t"}))
	s.Record(fmt.Errorf("route 99: %w", ErrNoSpecForRoute))
	s.RecordDeferred()
	s.Record(errors.New("boom"))

	assert.Equal(t, Stats{Classified: 3, Ambiguous: 1, NoAnchorOverlap: 1, Deferred: 2, Failed: 1}, s)
	assert.Equal(t, uint(8), s.Total())
	assert.Equal(t, "classified 3 / 5 (60.00 %), ambiguous 1, no anchor overlap 1, deferred 2, failed 1", s.String())
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Classified: 1, Deferred: 2}
	a.Add(Stats{Classified: 4, Ambiguous: 1, Failed: 3})
	assert.Equal(t, Stats{Classified: 5, Ambiguous: 1, Deferred: 2, Failed: 3}, a)
}

func TestStatsStringEmpty(t *testing.T) {
	assert.Equal(t, "classified 0 / 0 (0.00 %), ambiguous 0, no anchor overlap 0, deferred 0, failed 0", Stats{}.String())
}
