// Package achievements unlocks milestone achievements from progress signals.
package achievements

import "time"

// Achievement is a catalog entry together with its unlock state.
type Achievement struct {
	Definition

	Unlocked   bool
	UnlockedAt time.Time // zero while locked
}

// Tracker holds the unlock state of one learner's achievements.
// Once unlocked, an achievement stays unlocked and keeps its first timestamp.
type Tracker struct {
	items []Achievement
}

// NewTracker creates a tracker with every entry of catalog locked.
func NewTracker(catalog Catalog) *Tracker {
	t := &Tracker{items: make([]Achievement, len(catalog))}
	for i, def := range catalog {
		t.items[i] = Achievement{Definition: def}
	}
	return t
}

// CheckLessonCompletion unlocks lesson-count achievements met by count.
// Returns the achievements unlocked by this call.
func (t *Tracker) CheckLessonCompletion(count int, now time.Time) []Achievement {
	return t.check(CriterionLessons, count, now)
}

// CheckStreak unlocks streak achievements met by days.
// Returns the achievements unlocked by this call.
func (t *Tracker) CheckStreak(days int, now time.Time) []Achievement {
	return t.check(CriterionStreak, days, now)
}

func (t *Tracker) check(c Criterion, value int, now time.Time) []Achievement {
	var newly []Achievement
	for i := range t.items {
		a := &t.items[i]
		if a.Unlocked || a.Criterion != c || value < a.Threshold {
			continue
		}
		a.Unlocked = true
		a.UnlockedAt = now
		newly = append(newly, *a)
	}
	return newly
}

// Unlocked returns unlocked achievements in catalog order.
func (t *Tracker) Unlocked() []Achievement {
	var out []Achievement
	for _, a := range t.items {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// All returns every achievement in catalog order.
func (t *Tracker) All() []Achievement {
	return append([]Achievement(nil), t.items...)
}
