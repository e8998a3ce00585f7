package lessons

import (
	"github.com/abhisek/lingua/internal/apperr"
	"github.com/abhisek/lingua/internal/questions"
)

// Vocabulary is a word introduced by a lesson.
type Vocabulary struct {
	Word         string
	Translation  string
	PartOfSpeech string // optional, e.g. "noun"
}

// Lesson is a fixed list of questions and the vocabulary they practice.
// It tracks which questions have been answered correctly.
type Lesson struct {
	ID    string
	Title string

	questions  []questions.Question
	vocabulary []Vocabulary
	correct    []bool
	completed  bool
}

// NewLesson creates a lesson. A lesson needs an ID and at least one question.
func NewLesson(id, title string, qs []questions.Question, vocab []Vocabulary) (*Lesson, error) {
	const op = "lessons.NewLesson"
	if id == "" {
		return nil, apperr.InvalidArgument(op, "lesson ID is empty")
	}
	if len(qs) == 0 {
		return nil, apperr.InvalidArgument(op, "lesson %q has no questions", id)
	}
	return &Lesson{
		ID:         id,
		Title:      title,
		questions:  append([]questions.Question(nil), qs...),
		vocabulary: append([]Vocabulary(nil), vocab...),
		correct:    make([]bool, len(qs)),
	}, nil
}

// Questions returns the lesson's questions in order.
func (l *Lesson) Questions() []questions.Question {
	return append([]questions.Question(nil), l.questions...)
}

// Len returns the number of questions.
func (l *Lesson) Len() int { return len(l.questions) }

// Question returns the question at index.
func (l *Lesson) Question(index int) (questions.Question, error) {
	if index < 0 || index >= len(l.questions) {
		return nil, apperr.NotFound("lessons.Question", "lesson %q has no question %d", l.ID, index)
	}
	return l.questions[index], nil
}

// Vocabulary returns the words introduced by the lesson.
func (l *Lesson) Vocabulary() []Vocabulary {
	return append([]Vocabulary(nil), l.vocabulary...)
}

// MarkAnswered records the result of answering question index. A question
// stays correct once it has been answered correctly.
func (l *Lesson) MarkAnswered(index int, correct bool) error {
	if index < 0 || index >= len(l.questions) {
		return apperr.NotFound("lessons.MarkAnswered", "lesson %q has no question %d", l.ID, index)
	}
	if correct {
		l.correct[index] = true
	}
	return nil
}

// IsAnsweredCorrectly reports whether question index has been answered correctly.
func (l *Lesson) IsAnsweredCorrectly(index int) bool {
	return index >= 0 && index < len(l.correct) && l.correct[index]
}

// AllCorrect reports whether every question has been answered correctly.
func (l *Lesson) AllCorrect() bool {
	for _, c := range l.correct {
		if !c {
			return false
		}
	}
	return true
}

// Progress returns the percentage (0-100) of questions answered correctly.
func (l *Lesson) Progress() float64 {
	done := 0
	for _, c := range l.correct {
		if c {
			done++
		}
	}
	return float64(done) / float64(len(l.correct)) * 100
}

// MarkCompleted flags the lesson as completed.
func (l *Lesson) MarkCompleted() { l.completed = true }

// Completed reports whether MarkCompleted was called.
func (l *Lesson) Completed() bool { return l.completed }

// Clone returns a copy of the lesson with its own answer state. Questions
// are immutable and shared.
func (l *Lesson) Clone() *Lesson {
	c := *l
	c.questions = append([]questions.Question(nil), l.questions...)
	c.vocabulary = append([]Vocabulary(nil), l.vocabulary...)
	c.correct = append([]bool(nil), l.correct...)
	return &c
}

// Reset clears answer flags and completion, for replaying a lesson.
func (l *Lesson) Reset() {
	for i := range l.correct {
		l.correct[i] = false
	}
	l.completed = false
}
