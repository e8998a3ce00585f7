package session

import (
	"time"

	"github.com/abhisek/lingua/internal/achievements"
)

// Summary is a snapshot of the session for display at the end of a run.
type Summary struct {
	SessionID string
	UserID    string
	Duration  time.Duration

	TotalAnswers int
	TotalCorrect int
	Accuracy     float64

	XP            int
	Level         int
	XPToNextLevel int
	Streak        int
	LongestStreak int

	HighestCombo int
	Energy       int
	MaxEnergy    int

	CompletedLessons []string
	LessonResults    []LessonResult
	Achievements     []achievements.Achievement
}

// Summary builds a Summary from the current session state.
func (s *Session) Summary() *Summary {
	results := make([]LessonResult, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, *s.results[id])
	}

	var accuracy float64
	if s.totalAnswers > 0 {
		accuracy = float64(s.totalCorrect) / float64(s.totalAnswers)
	}

	return &Summary{
		SessionID:        s.ID,
		UserID:           s.progress.UserID,
		Duration:         s.now().Sub(s.startTime),
		TotalAnswers:     s.totalAnswers,
		TotalCorrect:     s.totalCorrect,
		Accuracy:         accuracy,
		XP:               s.progress.XP(),
		Level:            s.progress.Level(),
		XPToNextLevel:    s.progress.XPToNextLevel(),
		Streak:           s.progress.Streak(),
		LongestStreak:    s.progress.LongestStreak(),
		HighestCombo:     s.combo.Highest(),
		Energy:           s.energy.Current(),
		MaxEnergy:        s.energy.Max(),
		CompletedLessons: s.progress.CompletedLessons(),
		LessonResults:    results,
		Achievements:     s.achievements.Unlocked(),
	}
}
