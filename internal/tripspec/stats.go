package tripspec

import (
	"errors"
	"fmt"
)

// Stats counts per-trip outcomes.
type Stats struct {
	Classified      uint
	Ambiguous       uint
	NoAnchorOverlap uint
	Deferred        uint
	Failed          uint
}

// Record counts the outcome of splitting or ordering one trip.
func (s *Stats) Record(err error) {
	switch {
	case err == nil:
		s.Classified++
	case errors.Is(err, ErrAmbiguousDirection):
		s.Ambiguous++
	case errors.Is(err, ErrNoAnchorOverlap):
		s.NoAnchorOverlap++
	case errors.Is(err, ErrNoSpecForRoute):
		s.Deferred++
	default:
		s.Failed++
	}
}

// RecordDeferred counts a trip handled by the generic path.
func (s *Stats) RecordDeferred() {
	s.Deferred++
}

func (s *Stats) Add(other Stats) {
	s.Classified += other.Classified
	s.Ambiguous += other.Ambiguous
	s.NoAnchorOverlap += other.NoAnchorOverlap
	s.Deferred += other.Deferred
	s.Failed += other.Failed
}

func (s Stats) Total() uint {
	return s.Classified + s.Ambiguous + s.NoAnchorOverlap + s.Deferred + s.Failed
}

func (s Stats) String() string {
	covered := s.Classified + s.Ambiguous + s.NoAnchorOverlap
	percent := 0.0
	if covered > 0 {
		percent = 100 * float64(s.Classified) / float64(covered)
	}
	return fmt.Sprintf("classified %d / %d (%.2f %%), ambiguous %d, no anchor overlap %d, deferred %d, failed %d",
		s.Classified, covered, percent, s.Ambiguous, s.NoAnchorOverlap, s.Deferred, s.Failed)
}
