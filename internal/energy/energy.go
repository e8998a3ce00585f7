// Package energy implements the hearts resource spent on wrong answers and
// regenerated over time.
package energy

import (
	"time"

	"github.com/abhisek/lingua/internal/apperr"
)

// RegenInterval is the time needed to regain one point of energy.
const RegenInterval = time.Hour

// DefaultMax is the default energy capacity.
const DefaultMax = 5

// System is a bounded energy counter in [0, Max].
type System struct {
	max        int
	current    int
	lastUpdate time.Time
}

// New creates a full System with the given capacity.
func New(maxEnergy int, now time.Time) (*System, error) {
	if maxEnergy < 1 {
		return nil, apperr.InvalidArgument("energy.New", "max energy %d must be at least 1", maxEnergy)
	}
	return &System{max: maxEnergy, current: maxEnergy, lastUpdate: now}, nil
}

func (s *System) Current() int          { return s.current }
func (s *System) Max() int              { return s.max }
func (s *System) LastUpdate() time.Time { return s.lastUpdate }

// HasEnergy reports whether at least one point is left.
func (s *System) HasEnergy() bool { return s.current > 0 }

// RecordAnswer spends one point on a wrong answer. Correct answers are free.
func (s *System) RecordAnswer(correct bool, now time.Time) {
	if correct || s.current == 0 {
		return
	}
	s.current--
	s.lastUpdate = now
}

// Regenerate adds one point per whole hour elapsed since the last update,
// capped at Max. Partial hours are dropped: lastUpdate moves to now.
// Returns the number of points gained.
func (s *System) Regenerate(now time.Time) int {
	if s.current >= s.max {
		return 0
	}
	hours := int(now.Sub(s.lastUpdate) / RegenInterval)
	if hours < 1 {
		return 0
	}

	before := s.current
	s.current = min(s.max, s.current+hours)
	s.lastUpdate = now
	return s.current - before
}

// Refill restores full energy immediately.
func (s *System) Refill(now time.Time) {
	s.current = s.max
	s.lastUpdate = now
}

// NextRegenAt returns when the next point will be available, and false when
// energy is already full.
func (s *System) NextRegenAt() (time.Time, bool) {
	if s.current >= s.max {
		return time.Time{}, false
	}
	return s.lastUpdate.Add(RegenInterval), true
}
