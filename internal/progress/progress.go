// Package progress tracks a learner's XP, level, daily streak and completed lessons.
package progress

import (
	"math"
	"time"

	"github.com/abhisek/lingua/internal/apperr"
)

// UserProgress is the progression state of one learner.
type UserProgress struct {
	UserID string

	xp            int
	level         int
	streak        int
	longestStreak int
	lastActivity  time.Time // zero until the first activity

	completed    []string
	completedSet map[string]bool
}

// New creates empty progress for userID at level 1.
func New(userID string) *UserProgress {
	return &UserProgress{
		UserID:       userID,
		level:        1,
		completedSet: make(map[string]bool),
	}
}

func (p *UserProgress) XP() int            { return p.xp }
func (p *UserProgress) Level() int         { return p.level }
func (p *UserProgress) Streak() int        { return p.streak }
func (p *UserProgress) LongestStreak() int { return p.longestStreak }

// LastActivity returns the last recorded activity date, and false if no
// activity was recorded yet.
func (p *UserProgress) LastActivity() (time.Time, bool) {
	return p.lastActivity, !p.lastActivity.IsZero()
}

// AddXP adds amount to the learner's XP and recomputes the level.
// Returns true if the level increased. XP saturates at math.MaxInt.
func (p *UserProgress) AddXP(amount int) (bool, error) {
	if amount < 0 {
		return false, apperr.InvalidArgument("progress.AddXP", "amount %d is negative", amount)
	}
	// Saturate so XP never wraps negative.
	if amount > math.MaxInt-p.xp {
		p.xp = math.MaxInt
	} else {
		p.xp += amount
	}

	prev := p.level
	p.level = LevelForXP(p.xp)
	return p.level > prev, nil
}

// XPToNextLevel returns the XP still needed for the next level, or 0 at MaxLevel.
func (p *UserProgress) XPToNextLevel() int {
	if p.level >= MaxLevel {
		return 0
	}
	return LevelThreshold(p.level+1) - p.xp
}

// RecordActivity records learning activity on the calendar day of now and
// updates the streak. Consecutive days extend the streak, the same day
// leaves it unchanged, anything else restarts it at 1.
func (p *UserProgress) RecordActivity(now time.Time) {
	day := startOfDay(now)

	switch {
	case p.lastActivity.IsZero():
		p.streak = 1
	case sameDay(day, p.lastActivity):
		// Already counted today.
	case sameDay(day, p.lastActivity.AddDate(0, 0, 1)):
		p.streak++
	default:
		p.streak = 1
	}

	p.lastActivity = day
	p.longestStreak = max(p.longestStreak, p.streak)
}

// CompleteLesson marks lessonID completed. Returns false if it already was.
func (p *UserProgress) CompleteLesson(lessonID string) bool {
	if p.completedSet[lessonID] {
		return false
	}
	p.completedSet[lessonID] = true
	p.completed = append(p.completed, lessonID)
	return true
}

// IsCompleted reports whether lessonID has been completed.
func (p *UserProgress) IsCompleted(lessonID string) bool {
	return p.completedSet[lessonID]
}

// CompletedLessons returns completed lesson IDs in completion order.
func (p *UserProgress) CompletedLessons() []string {
	return append([]string(nil), p.completed...)
}

// CompletedSet returns the completed lesson IDs as a set.
func (p *UserProgress) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.completedSet))
	for id := range p.completedSet {
		set[id] = true
	}
	return set
}
