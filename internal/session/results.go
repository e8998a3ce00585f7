package session

// LessonResult tracks answer statistics for one lesson within a session.
type LessonResult struct {
	LessonID      string
	TotalAttempts int
	CorrectCount  int
	Accuracy      float64 // CorrectCount / TotalAttempts (computed)
	Completed     bool
}

// Record adds a new answer result.
func (r *LessonResult) Record(correct bool) {
	r.TotalAttempts++
	if correct {
		r.CorrectCount++
	}
	r.Accuracy = float64(r.CorrectCount) / float64(r.TotalAttempts)
}
