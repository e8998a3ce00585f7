// Package combo tracks consecutive correct answers and the score multiplier
// they earn.
package combo

import "math"

// Multiplier thresholds.
const (
	SmallComboAt = 3
	BigComboAt   = 5

	SmallMultiplier = 1.5
	BigMultiplier   = 2.0
)

// System tracks the current run of correct answers and the best run so far.
type System struct {
	current int
	highest int
}

// New returns a System with no combo.
func New() *System {
	return &System{}
}

func (s *System) Current() int { return s.current }
func (s *System) Highest() int { return s.highest }

// RecordAnswer extends the combo on a correct answer and breaks it otherwise.
func (s *System) RecordAnswer(correct bool) {
	if !correct {
		s.current = 0
		return
	}
	s.current++
	s.highest = max(s.highest, s.current)
}

// Multiplier returns the score multiplier for the current combo.
func (s *System) Multiplier() float64 {
	switch {
	case s.current >= BigComboAt:
		return BigMultiplier
	case s.current >= SmallComboAt:
		return SmallMultiplier
	default:
		return 1.0
	}
}

// CalculatePoints applies the current multiplier to base, rounding down.
func (s *System) CalculatePoints(base int) int {
	return int(math.Floor(float64(base) * s.Multiplier()))
}

// Reset clears both the current combo and the high watermark.
func (s *System) Reset() {
	s.current = 0
	s.highest = 0
}
